package gormrepo

import (
	"context"
	"time"

	"github.com/yoockh/jardam/internal/models"
	"gorm.io/gorm"
)

// SessionRepository is also implemented by the mongo session store.
type SessionRepository interface {
	Create(ctx context.Context, s *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
}

type sessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, s *models.Session) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	return translate(r.db.WithContext(ctx).Create(s).Error)
}

func (r *sessionRepo) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	var s models.Session
	if err := r.db.WithContext(ctx).Where("token = ?", token).Take(&s).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/yoockh/jardam/internal/models"
	"github.com/yoockh/jardam/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const SessionsCollection = "sessions"

type SessionRepository interface {
	Create(ctx context.Context, s *models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
}

type sessionDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    uint               `bson:"user_id"`
	Token     string             `bson:"token"`
	CreatedAt time.Time          `bson:"created_at"`
}

type sessionRepo struct {
	col *mongo.Collection
}

func NewSessionRepo(db *mongo.Database) SessionRepository {
	return &sessionRepo{col: db.Collection(SessionsCollection)}
}

func (r *sessionRepo) Create(ctx context.Context, s *models.Session) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, sessionDocument{
		UserID:    s.UserID,
		Token:     s.Token,
		CreatedAt: s.CreatedAt,
	})
	if mongo.IsDuplicateKeyError(err) {
		return errors.Join(utils.ErrDuplicate, err)
	}
	return err
}

func (r *sessionRepo) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	var doc sessionDocument
	err := r.col.FindOne(ctx, bson.M{"token": token}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &models.Session{
		UserID:    doc.UserID,
		Token:     doc.Token,
		CreatedAt: doc.CreatedAt,
	}, nil
}

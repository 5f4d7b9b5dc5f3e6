package gormrepo

import (
	"context"

	"github.com/yoockh/jardam/internal/models"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a *models.Application) error
	List(ctx context.Context) ([]models.Application, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Application, error)
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	Update(ctx context.Context, a *models.Application) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

// editableApplicationColumns matches what the legacy edit form could change.
var editableApplicationColumns = []string{"name", "contact", "category", "description", "datetime", "price"}

type applicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, a *models.Application) error {
	return translate(r.db.WithContext(ctx).Create(a).Error)
}

func (r *applicationRepo) List(ctx context.Context) ([]models.Application, error) {
	rows := []models.Application{}
	err := r.db.WithContext(ctx).Scopes(newestFirst).Find(&rows).Error
	return rows, translate(err)
}

func (r *applicationRepo) ListByUser(ctx context.Context, userID uint) ([]models.Application, error) {
	rows := []models.Application{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Scopes(newestFirst).
		Find(&rows).Error
	return rows, translate(err)
}

func (r *applicationRepo) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	var a models.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&a).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *applicationRepo) Update(ctx context.Context, a *models.Application) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", a.ID).
		Select(editableApplicationColumns).
		Updates(a)
	return res.RowsAffected, translate(res.Error)
}

func (r *applicationRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Application{}, id)
	return res.RowsAffected, translate(res.Error)
}

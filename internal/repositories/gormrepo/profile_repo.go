package gormrepo

import (
	"context"
	"strings"

	"github.com/yoockh/jardam/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(ctx context.Context, p *models.WorkerProfile) error
	GetByID(ctx context.Context, id uint) (*models.WorkerProfile, error)
	ListByUser(ctx context.Context, userID uint) ([]models.WorkerProfile, error)
	Search(ctx context.Context, f models.ProfileFilter) ([]models.WorkerProfile, error)
	Update(ctx context.Context, p *models.WorkerProfile) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

var editableProfileColumns = []string{
	"name", "phone", "categories", "headline", "availability", "pay_min", "pay_type", "city",
	"location_text", "about", "experience_level", "languages", "work_format", "contact_methods",
	"age", "tags", "search_text", "city_key", "location_key", "updated_at",
}

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Create(ctx context.Context, p *models.WorkerProfile) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *profileRepo) GetByID(ctx context.Context, id uint) (*models.WorkerProfile, error) {
	var p models.WorkerProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *profileRepo) ListByUser(ctx context.Context, userID uint) ([]models.WorkerProfile, error) {
	rows := []models.WorkerProfile{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Scopes(newestFirst).
		Find(&rows).Error
	return rows, translate(err)
}

func (r *profileRepo) Search(ctx context.Context, f models.ProfileFilter) ([]models.WorkerProfile, error) {
	q := r.db.WithContext(ctx).Model(&models.WorkerProfile{}).Scopes(
		foldedMatch(f.Query, "search_text"),
		containsAny("categories", f.Categories),
		containsAny("availability", f.Availability),
		containsAny("languages", f.Languages),
		containsAny("work_format", f.WorkFormat),
		atLeast("pay_min", f.PayMin),
		atMost("pay_min", f.PayMax),
		foldedMatch(f.Location, "location_key"),
	)
	if city := models.Fold(f.City); city != "" {
		q = q.Where("city_key = ?", city)
	}
	if lvl := strings.TrimSpace(f.ExperienceLevel); lvl != "" {
		q = q.Where("experience_level = ?", lvl)
	}

	rows := []models.WorkerProfile{}
	err := q.Scopes(newestFirst, paginate(f.Limit, f.Offset)).Find(&rows).Error
	return rows, translate(err)
}

func (r *profileRepo) Update(ctx context.Context, p *models.WorkerProfile) (int64, error) {
	p.RefreshSearchKeys()
	res := r.db.WithContext(ctx).
		Model(&models.WorkerProfile{}).
		Where("id = ?", p.ID).
		Select(editableProfileColumns).
		Updates(p)
	return res.RowsAffected, translate(res.Error)
}

func (r *profileRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.WorkerProfile{}, id)
	return res.RowsAffected, translate(res.Error)
}

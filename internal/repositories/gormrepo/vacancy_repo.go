package gormrepo

import (
	"context"

	"github.com/yoockh/jardam/internal/models"
	"gorm.io/gorm"
)

type VacancyRepository interface {
	Create(ctx context.Context, v *models.Vacancy) error
	GetByID(ctx context.Context, id uint) (*models.Vacancy, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Vacancy, error)
	Search(ctx context.Context, f models.VacancyFilter) ([]models.Vacancy, error)
	Update(ctx context.Context, v *models.Vacancy) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

var editableVacancyColumns = []string{
	"contact_name", "phone", "location_text", "category_ids", "title", "description",
	"date_time", "is_flexible_time", "schedule", "pay_amount", "pay_type", "tags", "search_text", "updated_at",
}

type vacancyRepo struct {
	db *gorm.DB
}

func NewVacancyRepo(db *gorm.DB) VacancyRepository {
	return &vacancyRepo{db: db}
}

func (r *vacancyRepo) Create(ctx context.Context, v *models.Vacancy) error {
	return translate(r.db.WithContext(ctx).Create(v).Error)
}

func (r *vacancyRepo) GetByID(ctx context.Context, id uint) (*models.Vacancy, error) {
	var v models.Vacancy
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&v).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *vacancyRepo) ListByUser(ctx context.Context, userID uint) ([]models.Vacancy, error) {
	rows := []models.Vacancy{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Scopes(newestFirst).
		Find(&rows).Error
	return rows, translate(err)
}

func (r *vacancyRepo) Search(ctx context.Context, f models.VacancyFilter) ([]models.Vacancy, error) {
	q := r.db.WithContext(ctx).Model(&models.Vacancy{}).Scopes(
		foldedMatch(f.Query, "search_text"),
		containsAny("category_ids", f.Categories),
		containsAny("schedule", f.Schedule),
		containsAny("tags", f.Tags),
		atLeast("pay_amount", f.PayMin),
		atMost("pay_amount", f.PayMax),
		sameDay("date_time", f.Date),
	)
	if f.FlexibleOnly {
		q = q.Where("is_flexible_time = ?", true)
	}

	rows := []models.Vacancy{}
	err := q.Scopes(newestFirst, paginate(f.Limit, f.Offset)).Find(&rows).Error
	return rows, translate(err)
}

// Update writes the editable columns only. Hooks run against the empty
// Model here, so the folded columns are refreshed on v directly.
func (r *vacancyRepo) Update(ctx context.Context, v *models.Vacancy) (int64, error) {
	v.RefreshSearchKeys()
	res := r.db.WithContext(ctx).
		Model(&models.Vacancy{}).
		Where("id = ?", v.ID).
		Select(editableVacancyColumns).
		Updates(v)
	return res.RowsAffected, translate(res.Error)
}

func (r *vacancyRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Vacancy{}, id)
	return res.RowsAffected, translate(res.Error)
}

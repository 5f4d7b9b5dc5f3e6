package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/yoockh/jardam/internal/models"
	"github.com/yoockh/jardam/internal/repositories/gormrepo"
	"github.com/yoockh/jardam/internal/utils"
)

const maxVacancyDescription = 1000

type VacancyService interface {
	Create(ctx context.Context, actor Actor, v *models.Vacancy) error
	Get(ctx context.Context, id uint) (*models.Vacancy, error)
	Search(ctx context.Context, f models.VacancyFilter) ([]models.Vacancy, error)
	ListMine(ctx context.Context, userID uint) ([]models.Vacancy, error)
	Update(ctx context.Context, actor Actor, id uint, v *models.Vacancy) error
	Delete(ctx context.Context, actor Actor, id uint) error
}

type vacancyService struct {
	vacancies gormrepo.VacancyRepository
}

func NewVacancyService(vacancies gormrepo.VacancyRepository) VacancyService {
	return &vacancyService{vacancies: vacancies}
}

func normalizeVacancy(v *models.Vacancy) {
	v.ContactName = strings.TrimSpace(v.ContactName)
	v.Phone = strings.TrimSpace(v.Phone)
	v.LocationText = strings.TrimSpace(v.LocationText)
	v.Title = strings.TrimSpace(v.Title)
	v.Description = strings.TrimSpace(v.Description)
	v.CategoryIDs = utils.CleanList(v.CategoryIDs)
	v.Schedule = utils.CleanList(v.Schedule)
	v.Tags = utils.CleanList(v.Tags)
	if v.IsFlexibleTime {
		v.DateTime = ""
	}
}

func validateVacancy(op string, v *models.Vacancy) error {
	if v.ContactName == "" || v.Phone == "" || v.Title == "" || v.Description == "" {
		return utils.E(utils.CodeInvalidArgument, op, "contactName, phone, title and description are required", nil)
	}
	if len(v.CategoryIDs) == 0 {
		return utils.E(utils.CodeInvalidArgument, op, "at least one category is required", nil)
	}
	if !utils.ValidPhone(v.Phone) {
		return utils.E(utils.CodeInvalidArgument, op, "invalid phone number", nil)
	}
	if utils.TooLong(v.Description, maxVacancyDescription) {
		return utils.E(utils.CodeInvalidArgument, op, "description is too long (max 1000 characters)", nil)
	}
	if !v.PayType.Valid() {
		return utils.E(utils.CodeInvalidArgument, op, "payType must be one of hour, shift, fixed", nil)
	}
	if v.PayAmount != nil && *v.PayAmount < 0 {
		return utils.E(utils.CodeInvalidArgument, op, "payAmount must not be negative", nil)
	}
	return nil
}

func (s *vacancyService) Create(ctx context.Context, actor Actor, v *models.Vacancy) error {
	const op = "VacancyService.Create"

	if v == nil {
		return utils.E(utils.CodeInvalidArgument, op, "vacancy is required", nil)
	}
	normalizeVacancy(v)
	if err := validateVacancy(op, v); err != nil {
		return err
	}

	now := time.Now().UTC()
	v.ID = 0
	v.UserID = actor.UserID
	v.CreatedAt = now
	v.UpdatedAt = now

	if err := s.vacancies.Create(ctx, v); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to create vacancy", err)
	}
	return nil
}

func (s *vacancyService) Get(ctx context.Context, id uint) (*models.Vacancy, error) {
	const op = "VacancyService.Get"

	v, err := s.vacancies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Vacancy not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get vacancy", err)
	}
	return v, nil
}

func (s *vacancyService) Search(ctx context.Context, f models.VacancyFilter) ([]models.Vacancy, error) {
	const op = "VacancyService.Search"

	rows, err := s.vacancies.Search(ctx, f)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to search vacancies", err)
	}
	return rows, nil
}

func (s *vacancyService) ListMine(ctx context.Context, userID uint) ([]models.Vacancy, error) {
	const op = "VacancyService.ListMine"

	rows, err := s.vacancies.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list vacancies", err)
	}
	return rows, nil
}

func (s *vacancyService) Update(ctx context.Context, actor Actor, id uint, v *models.Vacancy) error {
	const op = "VacancyService.Update"

	if v == nil {
		return utils.E(utils.CodeInvalidArgument, op, "vacancy is required", nil)
	}
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModify(existing.UserID) {
		return utils.E(utils.CodeForbidden, op, "Forbidden", nil)
	}

	normalizeVacancy(v)
	if err := validateVacancy(op, v); err != nil {
		return err
	}

	v.ID = existing.ID
	v.UserID = existing.UserID
	v.CreatedAt = existing.CreatedAt
	v.UpdatedAt = time.Now().UTC()

	n, err := s.vacancies.Update(ctx, v)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update vacancy", err)
	}
	if n == 0 {
		return utils.E(utils.CodeNotFound, op, "Vacancy not found", nil)
	}
	return nil
}

func (s *vacancyService) Delete(ctx context.Context, actor Actor, id uint) error {
	const op = "VacancyService.Delete"

	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModify(existing.UserID) {
		return utils.E(utils.CodeForbidden, op, "Forbidden", nil)
	}

	n, err := s.vacancies.Delete(ctx, id)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete vacancy", err)
	}
	if n == 0 {
		return utils.E(utils.CodeNotFound, op, "Vacancy not found", nil)
	}
	return nil
}

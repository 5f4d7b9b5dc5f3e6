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

const (
	maxProfileAbout = 800
	minWorkerAge    = 14
	maxWorkerAge    = 100
)

type ProfileService interface {
	Create(ctx context.Context, actor Actor, p *models.WorkerProfile) error
	Get(ctx context.Context, id uint) (*models.WorkerProfile, error)
	Search(ctx context.Context, f models.ProfileFilter) ([]models.WorkerProfile, error)
	ListMine(ctx context.Context, userID uint) ([]models.WorkerProfile, error)
	Update(ctx context.Context, actor Actor, id uint, p *models.WorkerProfile) error
	Delete(ctx context.Context, actor Actor, id uint) error
}

type profileService struct {
	profiles gormrepo.ProfileRepository
}

func NewProfileService(profiles gormrepo.ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

func normalizeProfile(p *models.WorkerProfile) {
	p.Name = strings.TrimSpace(p.Name)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Headline = strings.TrimSpace(p.Headline)
	p.City = strings.TrimSpace(p.City)
	p.LocationText = strings.TrimSpace(p.LocationText)
	p.About = strings.TrimSpace(p.About)
	p.ExperienceLevel = strings.TrimSpace(p.ExperienceLevel)
	p.Categories = utils.CleanList(p.Categories)
	p.Availability = utils.CleanList(p.Availability)
	p.Languages = utils.CleanList(p.Languages)
	p.WorkFormat = utils.CleanList(p.WorkFormat)
	p.ContactMethods = utils.CleanList(p.ContactMethods)
	p.Tags = utils.CleanList(p.Tags)
}

func validateProfile(op string, p *models.WorkerProfile) error {
	required := []struct {
		field string
		empty bool
	}{
		{"name", p.Name == ""},
		{"phone", p.Phone == ""},
		{"categories", len(p.Categories) == 0},
		{"headline", p.Headline == ""},
		{"availability", len(p.Availability) == 0},
		{"payType", p.PayType == ""},
		{"payMin", p.PayMin == nil},
		{"city", p.City == ""},
		{"locationText", p.LocationText == ""},
		{"about", p.About == ""},
	}
	var missing []string
	for _, r := range required {
		if r.empty {
			missing = append(missing, r.field)
		}
	}
	if len(missing) > 0 {
		return utils.E(utils.CodeInvalidArgument, op, "missing required fields: "+strings.Join(missing, ", "), nil)
	}
	if !utils.ValidPhone(p.Phone) {
		return utils.E(utils.CodeInvalidArgument, op, "invalid phone number", nil)
	}
	if utils.TooLong(p.About, maxProfileAbout) {
		return utils.E(utils.CodeInvalidArgument, op, "about is too long (max 800 characters)", nil)
	}
	if !p.PayType.Valid() {
		return utils.E(utils.CodeInvalidArgument, op, "payType must be one of hour, shift, fixed", nil)
	}
	if *p.PayMin < 0 {
		return utils.E(utils.CodeInvalidArgument, op, "payMin must not be negative", nil)
	}
	if p.Age != nil && (*p.Age < minWorkerAge || *p.Age > maxWorkerAge) {
		return utils.E(utils.CodeInvalidArgument, op, "age is out of range", nil)
	}
	return nil
}

func (s *profileService) Create(ctx context.Context, actor Actor, p *models.WorkerProfile) error {
	const op = "ProfileService.Create"

	if p == nil {
		return utils.E(utils.CodeInvalidArgument, op, "profile is required", nil)
	}
	normalizeProfile(p)
	if err := validateProfile(op, p); err != nil {
		return err
	}

	now := time.Now().UTC()
	p.ID = 0
	p.UserID = actor.UserID
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.profiles.Create(ctx, p); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to create profile", err)
	}
	return nil
}

func (s *profileService) Get(ctx context.Context, id uint) (*models.WorkerProfile, error) {
	const op = "ProfileService.Get"

	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	return p, nil
}

func (s *profileService) Search(ctx context.Context, f models.ProfileFilter) ([]models.WorkerProfile, error) {
	const op = "ProfileService.Search"

	rows, err := s.profiles.Search(ctx, f)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to search profiles", err)
	}
	return rows, nil
}

func (s *profileService) ListMine(ctx context.Context, userID uint) ([]models.WorkerProfile, error) {
	const op = "ProfileService.ListMine"

	rows, err := s.profiles.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list profiles", err)
	}
	return rows, nil
}

func (s *profileService) Update(ctx context.Context, actor Actor, id uint, p *models.WorkerProfile) error {
	const op = "ProfileService.Update"

	if p == nil {
		return utils.E(utils.CodeInvalidArgument, op, "profile is required", nil)
	}
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModify(existing.UserID) {
		return utils.E(utils.CodeForbidden, op, "Forbidden", nil)
	}

	normalizeProfile(p)
	if err := validateProfile(op, p); err != nil {
		return err
	}

	p.ID = existing.ID
	p.UserID = existing.UserID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	n, err := s.profiles.Update(ctx, p)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update profile", err)
	}
	if n == 0 {
		return utils.E(utils.CodeNotFound, op, "Profile not found", nil)
	}
	return nil
}

func (s *profileService) Delete(ctx context.Context, actor Actor, id uint) error {
	const op = "ProfileService.Delete"

	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModify(existing.UserID) {
		return utils.E(utils.CodeForbidden, op, "Forbidden", nil)
	}

	n, err := s.profiles.Delete(ctx, id)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete profile", err)
	}
	if n == 0 {
		return utils.E(utils.CodeNotFound, op, "Profile not found", nil)
	}
	return nil
}

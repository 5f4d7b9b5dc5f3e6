package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/jardam/internal/models"
	"github.com/yoockh/jardam/internal/repositories/gormrepo"
	"github.com/yoockh/jardam/internal/utils"
)

type ApplicationService interface {
	Create(ctx context.Context, actor Actor, a *models.Application) (uint, error)
	List(ctx context.Context) ([]models.Application, error)
	ListMine(ctx context.Context, userID uint) ([]models.Application, error)
	Get(ctx context.Context, id uint) (*models.Application, error)
	Update(ctx context.Context, actor Actor, id uint, a *models.Application) error
	Delete(ctx context.Context, actor Actor, id uint) error
}

type applicationService struct {
	apps gormrepo.ApplicationRepository
	log  logrus.FieldLogger
}

func NewApplicationService(apps gormrepo.ApplicationRepository, log logrus.FieldLogger) ApplicationService {
	return &applicationService{apps: apps, log: log}
}

// Create accepts blank fields; the legacy form never enforced any.
func (s *applicationService) Create(ctx context.Context, actor Actor, a *models.Application) (uint, error) {
	const op = "ApplicationService.Create"

	if a == nil {
		return 0, utils.E(utils.CodeInvalidArgument, op, "application is required", nil)
	}
	a.ID = 0
	a.UserID = actor.UserID
	a.CreatedAt = time.Now().UTC()

	if err := s.apps.Create(ctx, a); err != nil {
		return 0, utils.E(utils.CodeInternal, op, "failed to create application", err)
	}
	s.log.WithField("application_id", a.ID).Info("application created")
	return a.ID, nil
}

func (s *applicationService) List(ctx context.Context) ([]models.Application, error) {
	const op = "ApplicationService.List"

	rows, err := s.apps.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}
	return rows, nil
}

func (s *applicationService) ListMine(ctx context.Context, userID uint) ([]models.Application, error) {
	const op = "ApplicationService.ListMine"

	rows, err := s.apps.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}
	return rows, nil
}

func (s *applicationService) Get(ctx context.Context, id uint) (*models.Application, error) {
	const op = "ApplicationService.Get"

	a, err := s.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Application not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get application", err)
	}
	return a, nil
}

func (s *applicationService) Update(ctx context.Context, actor Actor, id uint, a *models.Application) error {
	const op = "ApplicationService.Update"

	if a == nil {
		return utils.E(utils.CodeInvalidArgument, op, "application is required", nil)
	}
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModify(existing.UserID) {
		return utils.E(utils.CodeForbidden, op, "Forbidden", nil)
	}

	a.ID = existing.ID
	n, err := s.apps.Update(ctx, a)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update application", err)
	}
	if n == 0 {
		return utils.E(utils.CodeNotFound, op, "Application not found", nil)
	}
	s.log.WithField("application_id", id).Info("application updated")
	return nil
}

func (s *applicationService) Delete(ctx context.Context, actor Actor, id uint) error {
	const op = "ApplicationService.Delete"

	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModify(existing.UserID) {
		return utils.E(utils.CodeForbidden, op, "Forbidden", nil)
	}

	n, err := s.apps.Delete(ctx, id)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to delete application", err)
	}
	if n == 0 {
		return utils.E(utils.CodeNotFound, op, "Application not found", nil)
	}
	s.log.WithField("application_id", id).Info("application deleted")
	return nil
}

package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/jardam/internal/models"
	"github.com/yoockh/jardam/internal/repositories/gormrepo"
	"github.com/yoockh/jardam/internal/utils"
)

type AuthResult struct {
	Token string
	User  models.PublicUser
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Me(ctx context.Context, userID uint) (*models.PublicUser, error)
}

type authService struct {
	users    gormrepo.UserRepository
	sessions SessionService
	log      logrus.FieldLogger
}

func NewAuthService(users gormrepo.UserRepository, sessions SessionService, log logrus.FieldLogger) AuthService {
	return &authService{users: users, sessions: sessions, log: log}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	const op = "AuthService.Register"

	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Missing fields", nil)
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}
	if existing != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Email already exists", nil)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	u := &models.User{Name: name, Email: email, PasswordHash: hash, CreatedAt: time.Now().UTC()}
	if err := s.users.Create(ctx, u); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, utils.E(utils.CodeInvalidArgument, op, "Email already exists", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}

	sess, err := s.sessions.Issue(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	s.log.WithField("user_id", u.ID).Info("user registered")
	return &AuthResult{Token: sess.Token, User: u.Public()}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	const op = "AuthService.Login"

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Missing fields", nil)
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeUnauthorized, op, "Invalid credentials", nil)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}
	if err := utils.CheckPassword(u.PasswordHash, password); err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "Invalid credentials", nil)
	}

	sess, err := s.sessions.Issue(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	s.log.WithField("user_id", u.ID).Info("user logged in")
	return &AuthResult{Token: sess.Token, User: u.Public()}, nil
}

func (s *authService) Me(ctx context.Context, userID uint) (*models.PublicUser, error) {
	const op = "AuthService.Me"

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeUnauthorized, op, "Unauthorized", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get user", err)
	}
	pub := u.Public()
	return &pub, nil
}

package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/jardam/internal/cache"
	"github.com/yoockh/jardam/internal/metrics"
	"github.com/yoockh/jardam/internal/models"
	"github.com/yoockh/jardam/internal/repositories/gormrepo"
	"github.com/yoockh/jardam/internal/utils"
)

type SessionService interface {
	Issue(ctx context.Context, userID uint) (*models.Session, error)
	// Resolve returns nil, nil for unknown tokens.
	Resolve(ctx context.Context, token string) (*models.Session, error)
}

type sessionService struct {
	sessions gormrepo.SessionRepository
	cache    cache.Cache
	ttl      time.Duration
	log      logrus.FieldLogger
}

// NewSessionService accepts a nil cache; lookups then always hit the store.
func NewSessionService(sessions gormrepo.SessionRepository, c cache.Cache, ttl time.Duration, log logrus.FieldLogger) SessionService {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &sessionService{sessions: sessions, cache: c, ttl: ttl, log: log}
}

func sessionKey(token string) string { return "session:" + token }

func (s *sessionService) Issue(ctx context.Context, userID uint) (*models.Session, error) {
	const op = "SessionService.Issue"

	token, err := utils.NewSessionToken()
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to generate token", err)
	}

	sess := &models.Session{UserID: userID, Token: token, CreatedAt: time.Now().UTC()}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create session", err)
	}
	s.remember(ctx, sess)
	return sess, nil
}

func (s *sessionService) Resolve(ctx context.Context, token string) (*models.Session, error) {
	const op = "SessionService.Resolve"

	if token == "" {
		return nil, nil
	}

	if s.cache != nil {
		var cached models.Session
		hit, err := s.cache.GetJSON(ctx, sessionKey(token), &cached)
		if err != nil {
			s.log.WithError(err).Warn("session cache read failed")
		}
		if hit {
			metrics.SessionCacheLookups.WithLabelValues("hit").Inc()
			return &cached, nil
		}
		metrics.SessionCacheLookups.WithLabelValues("miss").Inc()
	}

	sess, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, nil
		}
		return nil, utils.E(utils.CodeInternal, op, "session lookup failed", err)
	}
	s.remember(ctx, sess)
	return sess, nil
}

func (s *sessionService) remember(ctx context.Context, sess *models.Session) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, sessionKey(sess.Token), sess, s.ttl); err != nil {
		s.log.WithError(err).Warn("session cache write failed")
	}
}

package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/event"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
	"github.com/osse101/PromoAdmin_Go/internal/metrics"
)

// API is the upstream login endpoint
type API interface {
	Login(ctx context.Context, username, password string) (*domain.LoginResult, error)
}

// Service manages admin sessions
type Service interface {
	// Login authenticates against the API and opens a session. The returned session ID is the cookie value.
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	// Authenticate returns the live session for a cookie value
	Authenticate(ctx context.Context, sessionID string) (*domain.Session, error)
	// Logout closes the session. Unknown sessions are ignored.
	Logout(ctx context.Context, sessionID string) error
	// PurgeExpired deletes stored sessions that are past their expiry
	PurgeExpired(ctx context.Context) (int64, error)
	GetCacheStats() CacheStats
}

type service struct {
	api       API
	repo      Repository
	cache     *sessionCache
	ttl       time.Duration
	publisher *event.Publisher
	now       func() time.Time
}

// NewService creates the session service. ttl is how long a session lives after login.
func NewService(api API, repo Repository, ttl time.Duration, cacheCfg CacheConfig, publisher *event.Publisher) Service {
	return &service{
		api:       api,
		repo:      repo,
		cache:     newSessionCache(cacheCfg),
		ttl:       ttl,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *service) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	log := logger.FromContext(ctx)
	username = strings.TrimSpace(username)

	v := domain.NewValidationError()
	if username == "" {
		v.Add("username", MsgRequired)
	}
	if password == "" {
		v.Add("password", MsgRequired)
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	result, err := s.api.Login(ctx, username, password)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(metrics.OutcomeFailed).Inc()
		log.Warn(LogMsgLoginFailed, "username", username, "error", err)
		return nil, err
	}

	id, err := newSessionID()
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	session := &domain.Session{
		ID:        id,
		Token:     result.Token,
		User:      result.User,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if session.User.Username == "" {
		session.User.Username = username
	}

	stored := *session
	stored.ID = hashSessionID(id)
	if err := s.repo.SaveSession(ctx, &stored); err != nil {
		return nil, fmt.Errorf("%w: save session: %v", domain.ErrDatabaseError, err)
	}
	s.cache.Set(stored.ID, &stored)

	actor := session.User.Username
	s.publisher.Publish(domain.WithActor(ctx, actor), domain.EventTypeAdminLogin, actor, domain.EntitySession, session.User.ID, "signed in")
	log.Info(LogMsgLoginSucceeded, "username", actor)
	return session, nil
}

func (s *service) Authenticate(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, domain.ErrUnauthorized
	}
	key := hashSessionID(sessionID)

	session, ok := s.cache.Get(key)
	if !ok {
		var err error
		session, err = s.repo.GetSession(ctx, key)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrUnauthorized
			}
			return nil, fmt.Errorf("%w: load session: %v", domain.ErrDatabaseError, err)
		}
		s.cache.Set(key, session)
	}

	if session.Expired(s.now()) {
		s.cache.Invalidate(key)
		if err := s.repo.DeleteSession(ctx, key); err != nil {
			logger.FromContext(ctx).Warn(LogMsgSessionPurgeFail, "error", err)
		}
		logger.FromContext(ctx).Debug(LogMsgSessionExpired, "username", session.User.Username)
		return nil, domain.ErrSessionExpired
	}

	out := *session
	out.ID = sessionID
	return &out, nil
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	key := hashSessionID(sessionID)

	actor := domain.ActorFromContext(ctx)
	if session, ok := s.cache.Get(key); ok {
		actor = session.User.Username
	}

	s.cache.Invalidate(key)
	if err := s.repo.DeleteSession(ctx, key); err != nil {
		return fmt.Errorf("%w: delete session: %v", domain.ErrDatabaseError, err)
	}

	s.publisher.Publish(ctx, domain.EventTypeAdminLogout, actor, domain.EntitySession, "", "signed out")
	logger.FromContext(ctx).Info(LogMsgLoggedOut, "username", actor)
	return nil
}

func (s *service) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpiredSessions(ctx, s.now())
}

func (s *service) GetCacheStats() CacheStats {
	return s.cache.Stats()
}

func newSessionID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// hashSessionID is the storage key for a cookie value; raw ids are never stored
func hashSessionID(id string) string {
	sum := sha256.Sum256([]byte(id))
	return hex.EncodeToString(sum[:])
}

package auth

import (
	"context"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

// Repository stores server-side sessions. Sessions are keyed by the hash of the cookie value.
type Repository interface {
	// SaveSession inserts or replaces a session
	SaveSession(ctx context.Context, session *domain.Session) error

	// GetSession returns domain.ErrNotFound when no session has the id
	GetSession(ctx context.Context, id string) (*domain.Session, error)

	// DeleteSession is a no-op for unknown ids
	DeleteSession(ctx context.Context, id string) error

	// DeleteExpiredSessions removes every session expired at now and returns how many were removed
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

package auth

import (
	"context"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

type sessionKey struct{}

// WithSession stores the authenticated session in ctx
func WithSession(ctx context.Context, s *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session set by the middleware, if any
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*domain.Session)
	return s, ok && s != nil
}

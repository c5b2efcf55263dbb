package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PromoAdmin_Go/internal/auth"
	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

type sessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new PostgreSQL session repository
func NewSessionRepository(db *pgxpool.Pool) auth.Repository {
	return &sessionRepository{db: db}
}

// SaveSession inserts the session or replaces an existing one with the same id
func (r *sessionRepository) SaveSession(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO admin_sessions (id, token, user_id, username, role, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			token = EXCLUDED.token,
			user_id = EXCLUDED.user_id,
			username = EXCLUDED.username,
			role = EXCLUDED.role,
			expires_at = EXCLUDED.expires_at
	`
	_, err := r.db.Exec(ctx, query, s.ID, s.Token, s.User.ID, s.User.Username, s.User.Role, s.CreatedAt, s.ExpiresAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveSession, err)
	}
	return nil
}

// GetSession loads a session by id
func (r *sessionRepository) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	query := `
		SELECT id, token, user_id, username, role, created_at, expires_at
		FROM admin_sessions
		WHERE id = $1
	`
	var s domain.Session
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.Token,
		&s.User.ID,
		&s.User.Username,
		&s.User.Role,
		&s.CreatedAt,
		&s.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: session", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSession, err)
	}
	return &s, nil
}

// DeleteSession removes a session
func (r *sessionRepository) DeleteSession(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM admin_sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteSession, err)
	}
	return nil
}

// DeleteExpiredSessions removes every session whose expiry is at or before now
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM admin_sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToPurgeSessions, err)
	}
	return result.RowsAffected(), nil
}

package domain

import "time"

// AdminUser is the account returned by the login endpoint
type AdminUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResult is the login endpoint response
type LoginResult struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}

// Session is a server-side admin session
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"-"`
	User      AdminUser `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

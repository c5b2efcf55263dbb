package handler

import (
	"net/http"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/auth"
	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
)

// SessionResponse describes the logged-in admin
type SessionResponse struct {
	User      domain.AdminUser `json:"user"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// AuthHandler serves login, logout and the current-session endpoint
type AuthHandler struct {
	svc          auth.Service
	secureCookie bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(svc auth.Service, secureCookie bool) *AuthHandler {
	return &AuthHandler{svc: svc, secureCookie: secureCookie}
}

// HandleLogin exchanges credentials for a session cookie
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/admin/login [post]
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
		return
	}

	session, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(w, r, "Login", err)
		return
	}

	auth.SetSessionCookie(w, session, h.secureCookie)
	respondJSON(w, http.StatusOK, SessionResponse{User: session.User, ExpiresAt: session.ExpiresAt})
}

// HandleLogout ends the current session and clears the cookie
// @Summary Admin logout
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/logout [post]
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(auth.CookieName); err == nil && c.Value != "" {
		if err := h.svc.Logout(r.Context(), c.Value); err != nil {
			logger.FromContext(r.Context()).Warn("Logout failed", "error", err)
		}
	}
	auth.ClearSessionCookie(w, h.secureCookie)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLoggedOut})
}

// HandleMe returns the session attached by the auth middleware
// @Summary Current admin
// @Tags auth
// @Produce json
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/admin/me [get]
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.SessionFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgUnauthorizedError)
		return
	}
	respondJSON(w, http.StatusOK, SessionResponse{User: session.User, ExpiresAt: session.ExpiresAt})
}

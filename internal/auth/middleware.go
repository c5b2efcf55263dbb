package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/osse101/PromoAdmin_Go/internal/apiclient"
	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
)

// ResponseMode picks how unauthenticated requests are answered
type ResponseMode int

const (
	// ModeRedirect sends browsers to the login page
	ModeRedirect ResponseMode = iota
	// ModeJSON answers 401 with a JSON error body
	ModeJSON
)

// Middleware requires a live session. The session, its API token and the actor name are added to the request context.
func Middleware(svc Service, mode ResponseMode, secureCookie bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sessionID string
			if c, err := r.Cookie(CookieName); err == nil {
				sessionID = c.Value
			}

			session, err := svc.Authenticate(r.Context(), sessionID)
			if err != nil {
				logger.FromContext(r.Context()).Debug(LogMsgUnauthenticated, "path", r.URL.Path, "error", err)
				if errors.Is(err, domain.ErrSessionExpired) {
					ClearSessionCookie(w, secureCookie)
				}
				deny(w, r, mode, err)
				return
			}

			ctx := WithSession(r.Context(), session)
			ctx = apiclient.WithToken(ctx, session.Token)
			ctx = domain.WithActor(ctx, session.User.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func deny(w http.ResponseWriter, r *http.Request, mode ResponseMode, err error) {
	if mode == ModeJSON {
		msg := domain.ErrMsgUnauthorized
		if errors.Is(err, domain.ErrSessionExpired) {
			msg = domain.ErrMsgSessionExpired
		} else if !errors.Is(err, domain.ErrUnauthorized) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "session lookup failed"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
		return
	}

	target := DefaultLoginPath
	if r.Method == http.MethodGet {
		target += "?" + NextParam + "=" + url.QueryEscape(r.URL.RequestURI())
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// SetSessionCookie writes the session cookie
func SetSessionCookie(w http.ResponseWriter, s *domain.Session, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    s.ID,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie in the browser
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SafeNext returns next when it is a local absolute path, otherwise "/". Prevents open redirects after login.
func SafeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	if u, err := url.Parse(next); err != nil || u.Host != "" || u.Scheme != "" {
		return "/"
	}
	return next
}

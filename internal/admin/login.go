package admin

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/osse101/PromoAdmin_Go/internal/apiclient"
	"github.com/osse101/PromoAdmin_Go/internal/auth"
	"github.com/osse101/PromoAdmin_Go/internal/handler"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
)

type loginView struct {
	Username string
	Next     string
}

// HandleLoginPage shows the sign-in form
func (h *Handler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageLogin, &page{
		Title: "Sign in",
		Data:  loginView{Next: auth.SafeNext(r.URL.Query().Get(FieldNext))},
	})
}

// HandleLogin signs the admin in and returns to the page they asked for
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		h.redirect(w, r, PathLogin, FlashError, err.Error())
		return
	}
	username := r.PostFormValue("username")
	next := auth.SafeNext(r.PostFormValue(FieldNext))

	session, err := h.auth.Login(r.Context(), username, r.PostFormValue("password"))
	if err != nil {
		status, msg := errorMessage(err)
		h.render(w, r, status, pageLogin, &page{
			Title: "Sign in",
			Flash: &Flash{Kind: FlashError, Message: msg},
			Data:  loginView{Username: username, Next: next},
		})
		return
	}

	auth.SetSessionCookie(w, session, h.secureCookie)
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// HandleLogout closes the session and returns to the sign-in form
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(auth.CookieName); err == nil && c.Value != "" {
		if err := h.auth.Logout(r.Context(), c.Value); err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgLogoutFailed, "error", err)
		}
	}
	auth.ClearSessionCookie(w, h.secureCookie)
	h.redirect(w, r, PathLogin, FlashSuccess, MsgSignedOut)
}

// upstreamRejected reports whether the promo API refused the session's token.
// There is no token refresh, so the admin has to sign in again.
func upstreamRejected(err error) bool {
	var apiErr *apiclient.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// endRejectedSession closes the local session and sends the browser to the
// sign-in form. GET requests come back to the same page after signing in.
func (h *Handler) endRejectedSession(w http.ResponseWriter, r *http.Request) {
	logger.FromContext(r.Context()).Info(LogMsgTokenRejected, "path", r.URL.Path)
	if c, err := r.Cookie(auth.CookieName); err == nil && c.Value != "" {
		if err := h.auth.Logout(r.Context(), c.Value); err != nil {
			logger.FromContext(r.Context()).Warn(LogMsgLogoutFailed, "error", err)
		}
	}
	auth.ClearSessionCookie(w, h.secureCookie)

	target := PathLogin
	if r.Method == http.MethodGet {
		target += "?" + auth.NextParam + "=" + url.QueryEscape(r.URL.RequestURI())
	}
	h.redirect(w, r, target, FlashError, handler.ErrMsgSessionExpiredError)
}

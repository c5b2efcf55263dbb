package admin

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/handler"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
)

// Flash is a one-shot banner message carried across a redirect
type Flash struct {
	Kind    string `json:"k"`
	Message string `json:"m"`
}

// IsError reports whether the banner shows a failure
func (f *Flash) IsError() bool {
	return f != nil && f.Kind == FlashError
}

func (h *Handler) setFlash(w http.ResponseWriter, kind, message string) {
	data, err := json.Marshal(Flash{Kind: kind, Message: message})
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		MaxAge:   flashMaxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads the pending flash message and expires its cookie
func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(FlashCookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: FlashCookieName, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})

	data, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		logger.FromContext(r.Context()).Debug(LogMsgFlashMalformed, "error", err)
		return nil
	}
	var f Flash
	if err := json.Unmarshal(data, &f); err != nil || f.Message == "" {
		logger.FromContext(r.Context()).Debug(LogMsgFlashMalformed, "error", err)
		return nil
	}
	return &f
}

// redirect sends the browser to target with a flash message
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, target, kind, message string) {
	h.setFlash(w, kind, message)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// fail logs a failed action and redirects to target with the user-facing message
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, target, op string, err error) {
	if upstreamRejected(err) {
		h.endRejectedSession(w, r)
		return
	}
	status, msg := errorMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgActionFailed, "operation", op, "error", err)
	} else {
		log.Warn(LogMsgActionFailed, "operation", op, "error", err)
	}
	h.redirect(w, r, target, FlashError, msg)
}

// errorMessage maps a service error to a status and banner text. Validation
// failures list every field; schema violations carry their detail.
func errorMessage(err error) (int, string) {
	status, msg := handler.MapServiceError(err)

	var v *domain.ValidationError
	if errors.As(err, &v) && len(v.Fields) > 0 {
		return status, msg + ": " + joinFields(v.Fields)
	}
	if detail, ok := handler.InputErrorDetail(err); ok {
		return status, detail
	}
	return status, msg
}

// joinFields renders field errors in a stable order, e.g. "day 3: amount is required; name: is required"
func joinFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fields[k]))
	}
	return strings.Join(parts, "; ")
}

// validationFields returns the field map of a validation error, or nil
func validationFields(err error) map[string]string {
	var v *domain.ValidationError
	if errors.As(err, &v) {
		return v.Fields
	}
	return nil
}

package apiclient

import (
	"fmt"
	"net/http"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

// APIError is a non-2xx answer from the promo API.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap maps the status code onto the domain sentinel errors so callers can use errors.Is.
func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case e.StatusCode == http.StatusUnauthorized, e.StatusCode == http.StatusForbidden:
		return domain.ErrUnauthorized
	case e.StatusCode == http.StatusBadRequest, e.StatusCode == http.StatusUnprocessableEntity,
		e.StatusCode == http.StatusConflict:
		return domain.ErrInvalidInput
	case e.StatusCode >= 500:
		return domain.ErrUpstreamError
	default:
		return nil
	}
}

// UserMessage returns the upstream message when one was sent.
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.StatusCode)
}

// errorBody is the upstream error convention: {"error": "..."}
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

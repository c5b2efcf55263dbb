package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/PromoAdmin_Go/internal/apiclient"
	"github.com/osse101/PromoAdmin_Go/internal/domain"
	"github.com/osse101/PromoAdmin_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped error.
// Validation failures keep their per-field messages.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := MapServiceError(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		respondJSON(w, status, ValidationErrorResponse{Error: message, Fields: vErr.Fields})
		return
	}
	respondError(w, status, message)
}

// MapServiceError maps domain errors to an HTTP status and a message the
// admin can act on. Upstream 4xx answers keep the upstream message.
func MapServiceError(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	switch {
	case errors.Is(err, domain.ErrConfirmationRequired):
		return http.StatusPreconditionRequired, ErrMsgConfirmRequiredError
	case errors.Is(err, domain.ErrNothingSelected):
		return http.StatusBadRequest, ErrMsgNothingSelectedError
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrMsgInvalidCredentialsErr
	case errors.Is(err, domain.ErrSessionExpired):
		return http.StatusUnauthorized, ErrMsgSessionExpiredError
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrMsgUnauthorizedError
	case errors.Is(err, domain.ErrUnsupportedContentType):
		return http.StatusUnsupportedMediaType, ErrMsgUnsupportedTypeError
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, ErrMsgFileTooLargeError
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUpstreamUnavailableErr
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return http.StatusNotFound, ErrMsgNotFoundError
		case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
			return apiErr.StatusCode, apiErr.UserMessage()
		default:
			return http.StatusBadGateway, ErrMsgUpstreamErrorError
		}
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgNotFoundError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrUpstreamError):
		return http.StatusBadGateway, ErrMsgUpstreamErrorError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// InputErrorDetail returns the full text of a local input error, such as a
// schema violation, when it is safe to show. Validation and upstream errors
// are excluded.
func InputErrorDetail(err error) (string, bool) {
	if !errors.Is(err, domain.ErrInvalidInput) {
		return "", false
	}
	var vErr *domain.ValidationError
	var apiErr *apiclient.APIError
	if errors.As(err, &vErr) || errors.As(err, &apiErr) {
		return "", false
	}
	return err.Error(), true
}

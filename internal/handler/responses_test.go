package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/PromoAdmin_Go/internal/apiclient"
	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

func TestMapServiceError(t *testing.T) {
	validation := domain.NewValidationError()
	validation.Add("name", "name is required")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"validation", fmt.Errorf("create: %w", validation), http.StatusBadRequest, ErrMsgInvalidInputError},
		{"confirmation", domain.ErrConfirmationRequired, http.StatusPreconditionRequired, ErrMsgConfirmRequiredError},
		{"nothing selected", domain.ErrNothingSelected, http.StatusBadRequest, ErrMsgNothingSelectedError},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, ErrMsgInvalidCredentialsErr},
		{"expired", domain.ErrSessionExpired, http.StatusUnauthorized, ErrMsgSessionExpiredError},
		{"unsupported type", fmt.Errorf("%w: text/plain", domain.ErrUnsupportedContentType), http.StatusUnsupportedMediaType, ErrMsgUnsupportedTypeError},
		{"too large", domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, ErrMsgFileTooLargeError},
		{"unreachable", fmt.Errorf("list: %w", domain.ErrUpstreamUnavailable), http.StatusServiceUnavailable, ErrMsgUpstreamUnavailableErr},
		{"upstream 404", &apiclient.APIError{StatusCode: http.StatusNotFound}, http.StatusNotFound, ErrMsgNotFoundError},
		{"upstream 409 keeps message", &apiclient.APIError{StatusCode: http.StatusConflict, Message: "tier 2 already exists"}, http.StatusConflict, "tier 2 already exists"},
		{"upstream 500", fmt.Errorf("update: %w", &apiclient.APIError{StatusCode: http.StatusInternalServerError}), http.StatusBadGateway, ErrMsgUpstreamErrorError},
		{"upstream 401", &apiclient.APIError{StatusCode: http.StatusUnauthorized}, http.StatusUnauthorized, ErrMsgUnauthorizedError},
		{"local not found", fmt.Errorf("%w: tap reward r9", domain.ErrNotFound), http.StatusNotFound, ErrMsgNotFoundError},
		{"database", fmt.Errorf("%w: boom", domain.ErrDatabaseError), http.StatusInternalServerError, ErrMsgGenericServerError},
		{"unknown", errors.New("pq: relation does not exist"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := MapServiceError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestRespondServiceError_KeepsValidationFields(t *testing.T) {
	v := domain.NewValidationError()
	v.Add("day 3", "amount is required")
	v.Add("day 5", "reward type is required")

	w := httptest.NewRecorder()
	respondServiceError(w, httptest.NewRequest(http.MethodPost, "/", nil), "Create countdown event", v)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body ValidationErrorResponse
	decodeBody(t, w, &body)
	assert.Equal(t, "amount is required", body.Fields["day 3"])
	assert.Equal(t, "reward type is required", body.Fields["day 5"])
}

func TestInputErrorDetail(t *testing.T) {
	detail, ok := InputErrorDetail(fmt.Errorf("%w: schema validation failed: /name: required", domain.ErrInvalidInput))
	assert.True(t, ok)
	assert.Contains(t, detail, "/name: required")

	_, ok = InputErrorDetail(domain.NewValidationError())
	assert.False(t, ok, "validation errors are rendered per field")

	_, ok = InputErrorDetail(&apiclient.APIError{StatusCode: http.StatusBadRequest, Method: "POST", Path: "/countdown"})
	assert.False(t, ok, "upstream errors would leak paths")

	_, ok = InputErrorDetail(domain.ErrNotFound)
	assert.False(t, ok)
}

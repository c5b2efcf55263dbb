package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Entity errors
	ErrMsgNotFound = "not found"

	// Auth errors
	ErrMsgUnauthorized       = "unauthorized"
	ErrMsgInvalidCredentials = "invalid credentials"
	ErrMsgSessionExpired     = "session expired"

	// Input errors
	ErrMsgInvalidInput           = "invalid input"
	ErrMsgConfirmationRequired   = "confirmation required"
	ErrMsgNothingSelected        = "nothing selected"
	ErrMsgUnsupportedContentType = "unsupported content type"
	ErrMsgFileTooLarge           = "file too large"

	// Upstream errors
	ErrMsgUpstreamUnavailable = "upstream API unavailable"
	ErrMsgUpstreamError       = "upstream API error"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotFound = errors.New(ErrMsgNotFound)

	ErrUnauthorized       = errors.New(ErrMsgUnauthorized)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)
	ErrSessionExpired     = errors.New(ErrMsgSessionExpired)

	ErrInvalidInput           = errors.New(ErrMsgInvalidInput)
	ErrConfirmationRequired   = errors.New(ErrMsgConfirmationRequired)
	ErrNothingSelected        = errors.New(ErrMsgNothingSelected)
	ErrUnsupportedContentType = errors.New(ErrMsgUnsupportedContentType)
	ErrFileTooLarge           = errors.New(ErrMsgFileTooLarge)

	ErrUpstreamUnavailable = errors.New(ErrMsgUpstreamUnavailable)
	ErrUpstreamError       = errors.New(ErrMsgUpstreamError)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)

// ValidationError collects per-field problems found in a submitted form.
// It matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates an empty ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a problem for field. The first message for a field wins.
func (e *ValidationError) Add(field, message string) {
	if _, exists := e.Fields[field]; exists {
		return
	}
	e.Fields[field] = message
}

// HasErrors reports whether any field failed
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// OrNil returns nil when nothing was recorded so callers can `return v.OrNil()`
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrMsgInvalidInput, strings.Join(parts, "; "))
}

// Is makes errors.Is(err, ErrInvalidInput) true for validation failures
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

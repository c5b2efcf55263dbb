// Package formtime converts between API timestamps and the value format of
// HTML datetime-local inputs.
package formtime

import (
	"fmt"
	"strings"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

// Layouts accepted by datetime-local inputs.
const (
	InputLayout        = "2006-01-02T15:04"
	InputLayoutSeconds = "2006-01-02T15:04:05"
)

// ToInputValue formats t in loc for a datetime-local input. A zero time gives "".
func ToInputValue(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(InputLayout)
}

// FromInputValue parses a datetime-local value as wall time in loc and returns it in UTC.
// "" gives the zero time.
func FromInputValue(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range []string{InputLayout, InputLayoutSeconds} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a date and time", domain.ErrInvalidInput, s)
}

// ToISO formats t as RFC 3339 in UTC. A zero time gives "".
func ToISO(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// ParseISO parses an RFC 3339 timestamp with optional fractional seconds.
func ParseISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not an ISO timestamp", domain.ErrInvalidInput, s)
	}
	return t.UTC(), nil
}

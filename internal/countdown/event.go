package countdown

import (
	"strings"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

// Event status values shown in the list
const (
	StatusInactive  = "inactive"
	StatusScheduled = "scheduled"
	StatusRunning   = "running"
	StatusEnded     = "ended"
)

// ValidateEvent checks the event fields and its reward rows together.
func ValidateEvent(evt domain.CountdownEvent) error {
	v := domain.NewValidationError()

	if strings.TrimSpace(evt.Name) == "" {
		v.Add("name", "name is required")
	}
	switch {
	case evt.StartTime.IsZero():
		v.Add("start_time", "start time is required")
	case evt.EndTime.IsZero():
		v.Add("end_time", "end time is required")
	case !evt.EndTime.After(evt.StartTime):
		v.Add("end_time", "end time must be after start time")
	}

	validateRewardsInto(v, evt.Rewards)
	return v.OrNil()
}

// CurrentDay returns the 1-based day of the event at now, or 0 outside the window.
func CurrentDay(evt domain.CountdownEvent, now time.Time) int {
	if evt.StartTime.IsZero() || now.Before(evt.StartTime) || !now.Before(evt.EndTime) {
		return 0
	}
	day := int(now.Sub(evt.StartTime)/(24*time.Hour)) + 1
	if day > domain.CountdownDays {
		day = domain.CountdownDays
	}
	return day
}

// Status classifies the event at now.
func Status(evt domain.CountdownEvent, now time.Time) string {
	switch {
	case !evt.IsActive:
		return StatusInactive
	case now.Before(evt.StartTime):
		return StatusScheduled
	case now.Before(evt.EndTime):
		return StatusRunning
	default:
		return StatusEnded
	}
}

// prepare trims the name and orders the reward rows before submit.
func prepare(evt domain.CountdownEvent) domain.CountdownEvent {
	evt.Name = strings.TrimSpace(evt.Name)
	evt.Rewards = SortRewards(evt.Rewards)
	return evt
}

package audit

import (
	"context"
	"time"
)

// Entry is one recorded admin action
type Entry struct {
	ID         int64     `json:"id"`
	Action     string    `json:"action"`
	Actor      string    `json:"actor"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id,omitempty"`
	Summary    string    `json:"summary,omitempty"`
	RequestID  string    `json:"request_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Filter narrows audit queries. Zero values match everything.
type Filter struct {
	Actor      string
	Action     string
	EntityType string
	Since      *time.Time
	Until      *time.Time
	Limit      int
	Offset     int
}

// Repository defines the storage for audit entries
type Repository interface {
	// Record stores an entry. CreatedAt is set by the store when zero.
	Record(ctx context.Context, entry Entry) error

	// List returns matching entries, newest first
	List(ctx context.Context, filter Filter) ([]Entry, error)

	// Count returns the number of matching entries ignoring Limit and Offset
	Count(ctx context.Context, filter Filter) (int, error)

	// DeleteBefore removes entries created before cutoff
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

package audit

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepository keeps audit entries in process memory. Entries are lost on restart
// and only the newest maxEntries are kept.
type MemoryRepository struct {
	mu         sync.RWMutex
	entries    []Entry
	nextID     int64
	maxEntries int
	now        func() time.Time
}

// NewMemoryRepository creates an empty in-memory audit store
func NewMemoryRepository(maxEntries int) *MemoryRepository {
	if maxEntries <= 0 {
		maxEntries = DefaultMemoryEntries
	}
	return &MemoryRepository{maxEntries: maxEntries, now: time.Now}
}

func (r *MemoryRepository) Record(_ context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	entry.ID = r.nextID
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now().UTC()
	}
	r.entries = append(r.entries, entry)
	if over := len(r.entries) - r.maxEntries; over > 0 {
		r.entries = append([]Entry(nil), r.entries[over:]...)
	}
	return nil
}

func (r *MemoryRepository) List(_ context.Context, filter Filter) ([]Entry, error) {
	matched := r.match(filter)
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if filter.Offset >= len(matched) {
		return []Entry{}, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *MemoryRepository) Count(_ context.Context, filter Filter) (int, error) {
	return len(r.match(filter)), nil
}

func (r *MemoryRepository) DeleteBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.entries[:0]
	var removed int64
	for _, e := range r.entries {
		if e.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	r.entries = kept
	return removed, nil
}

func (r *MemoryRepository) match(filter Filter) []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		switch {
		case filter.Actor != "" && e.Actor != filter.Actor,
			filter.Action != "" && e.Action != filter.Action,
			filter.EntityType != "" && e.EntityType != filter.EntityType,
			filter.Since != nil && e.CreatedAt.Before(*filter.Since),
			filter.Until != nil && e.CreatedAt.After(*filter.Until):
			continue
		}
		out = append(out, e)
	}
	return out
}

package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

// MemoryRepository keeps sessions in process memory. Sessions are lost on restart.
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewMemoryRepository creates an empty in-memory session store
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{sessions: make(map[string]domain.Session)}
}

func (r *MemoryRepository) SaveSession(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = *session
	return nil
}

func (r *MemoryRepository) GetSession(_ context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: session", domain.ErrNotFound)
	}
	return &s, nil
}

func (r *MemoryRepository) DeleteSession(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *MemoryRepository) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

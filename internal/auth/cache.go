package auth

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/PromoAdmin_Go/internal/domain"
)

// CacheConfig sizes the session cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// CacheStats reports session cache effectiveness
type CacheStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"` // entries leaving the cache for any reason
	Size      int   `json:"size"`
}

// cachedSessionEntry wraps a session with version metadata for cache invalidation
type cachedSessionEntry struct {
	Version  string
	Session  domain.Session
	CachedAt time.Time
}

// sessionCache keeps recently authenticated sessions in memory so most requests skip the database.
type sessionCache struct {
	lru       *expirable.LRU[string, *cachedSessionEntry]
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

func newSessionCache(cfg CacheConfig) *sessionCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	c := &sessionCache{}
	c.lru = expirable.NewLRU[string, *cachedSessionEntry](cfg.Size, func(string, *cachedSessionEntry) {
		c.evictions.Add(1)
	}, cfg.TTL)
	return c
}

// Get returns a copy of the cached session. Entries with a stale schema version are dropped.
func (c *sessionCache) Get(id string) (*domain.Session, bool) {
	entry, found := c.lru.Get(id)
	if !found {
		c.misses.Add(1)
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	s := entry.Session
	return &s, true
}

func (c *sessionCache) Set(id string, session *domain.Session) {
	c.lru.Add(id, &cachedSessionEntry{
		Version:  CacheSchemaVersion,
		Session:  *session,
		CachedAt: time.Now(),
	})
}

func (c *sessionCache) Invalidate(id string) {
	c.lru.Remove(id)
}

func (c *sessionCache) Stats() CacheStats {
	return CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Size:      c.lru.Len(),
	}
}

package roundlog

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/WheelShow_Go/internal/domain"
)

// cachedRound wraps a record with version metadata for cache invalidation
type cachedRound struct {
	Version  string
	Record   domain.RoundRecord
	CachedAt time.Time
}

// roundCache keeps the most recent rounds in memory with time-based expiry
type roundCache struct {
	lru *expirable.LRU[uuid.UUID, *cachedRound]
}

func newRoundCache(size int, ttl time.Duration) *roundCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &roundCache{
		lru: expirable.NewLRU[uuid.UUID, *cachedRound](size, nil, ttl),
	}
}

// Get returns the cached record. Entries from an older schema are dropped.
func (c *roundCache) Get(id uuid.UUID) (domain.RoundRecord, bool) {
	entry, found := c.lru.Get(id)
	if !found {
		return domain.RoundRecord{}, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		return domain.RoundRecord{}, false
	}
	return entry.Record, true
}

func (c *roundCache) Set(rec domain.RoundRecord) {
	c.lru.Add(rec.RoundID, &cachedRound{
		Version:  CacheSchemaVersion,
		Record:   rec,
		CachedAt: time.Now(),
	})
}

func (c *roundCache) Len() int {
	return c.lru.Len()
}

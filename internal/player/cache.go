package player

import (
	"strings"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/PlayerLevels_Go/internal/domain"
	"github.com/osse101/PlayerLevels_Go/internal/metrics"
)

// recordCache is a bounded in-memory LRU of player records keyed by identity.
// Evicted entries are re-read from storage on the next lookup.
type recordCache struct {
	lru *lru.Cache[uuid.UUID, domain.PlayerRecord]
}

func newRecordCache(size int) (*recordCache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.NewWithEvict[uuid.UUID, domain.PlayerRecord](size, func(uuid.UUID, domain.PlayerRecord) {
		metrics.CachedPlayers.Dec()
	})
	if err != nil {
		return nil, err
	}
	return &recordCache{lru: c}, nil
}

// Get returns the cached record and counts the lookup
func (c *recordCache) Get(id uuid.UUID) (domain.PlayerRecord, bool) {
	rec, ok := c.lru.Get(id)
	metrics.RecordCacheLookup(ok)
	return rec, ok
}

// Set stores or replaces the record for its identity
func (c *recordCache) Set(rec domain.PlayerRecord) {
	if existed, _ := c.lru.ContainsOrAdd(rec.ID, rec); existed {
		c.lru.Add(rec.ID, rec)
		return
	}
	metrics.CachedPlayers.Inc()
}

// FindByName scans cached records for a case-insensitive name match
func (c *recordCache) FindByName(name string) (domain.PlayerRecord, bool) {
	for _, id := range c.lru.Keys() {
		if rec, ok := c.lru.Peek(id); ok && strings.EqualFold(rec.Name, name) {
			return rec, true
		}
	}
	return domain.PlayerRecord{}, false
}

// Snapshot returns every cached record without touching recency
func (c *recordCache) Snapshot() []domain.PlayerRecord {
	keys := c.lru.Keys()
	out := make([]domain.PlayerRecord, 0, len(keys))
	for _, id := range keys {
		if rec, ok := c.lru.Peek(id); ok {
			out = append(out, rec)
		}
	}
	return out
}

// Len returns the number of cached records
func (c *recordCache) Len() int {
	return c.lru.Len()
}

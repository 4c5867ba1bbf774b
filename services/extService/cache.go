package extService

import (
	"sync"
	"time"

	"betBookBot/models/external"
)

// Cache is the odds lookup cache. The client takes it as an interface so tests
// can drop in a fake and force hits or misses.
type Cache interface {
	Get(key string) ([]external.Game, bool)
	Set(key string, games []external.Game)
}

type cacheEntry struct {
	games     []external.Game
	expiresAt time.Time
}

type ttlCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewTTLCache returns an in-memory cache whose entries expire after ttl.
func NewTTLCache(ttl time.Duration) Cache {
	return &ttlCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *ttlCache) Get(key string) ([]external.Game, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.games, true
}

func (c *ttlCache) Set(key string, games []external.Game) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Opportunistic sweep keeps the map from growing across sport keys.
	now := c.now()
	for k, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, k)
		}
	}

	c.entries[key] = cacheEntry{games: games, expiresAt: now.Add(c.ttl)}
}

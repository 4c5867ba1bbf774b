package extService

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"betBookBot/models/external"
)

func TestTTLCache_ExpiresEntries(t *testing.T) {
	current := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	cache := &ttlCache{
		entries: make(map[string]cacheEntry),
		ttl:     5 * time.Minute,
		now:     func() time.Time { return current },
	}

	games := []external.Game{{ID: "evt1", HomeTeam: "Chiefs", AwayTeam: "Bills"}}
	cache.Set("americanfootball_nfl", games)

	got, ok := cache.Get("americanfootball_nfl")
	assert.True(t, ok)
	assert.Equal(t, games, got)

	current = current.Add(4 * time.Minute)
	_, ok = cache.Get("americanfootball_nfl")
	assert.True(t, ok, "entry should survive inside the TTL window")

	current = current.Add(2 * time.Minute)
	_, ok = cache.Get("americanfootball_nfl")
	assert.False(t, ok, "entry should expire after the TTL window")
}

func TestTTLCache_MissOnUnknownKey(t *testing.T) {
	cache := NewTTLCache(5 * time.Minute)
	_, ok := cache.Get("basketball_nba")
	assert.False(t, ok)
}

func TestTTLCache_SetSweepsExpired(t *testing.T) {
	current := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	cache := &ttlCache{
		entries: make(map[string]cacheEntry),
		ttl:     time.Minute,
		now:     func() time.Time { return current },
	}

	cache.Set("stale", []external.Game{{ID: "old"}})
	current = current.Add(2 * time.Minute)
	cache.Set("fresh", []external.Game{{ID: "new"}})

	assert.Len(t, cache.entries, 1)
	_, ok := cache.Get("fresh")
	assert.True(t, ok)
}

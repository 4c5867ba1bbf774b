package extService

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betBookBot/models/external"
)

type fakeCache struct {
	store map[string][]external.Game
	hits  int
	sets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]external.Game)}
}

func (c *fakeCache) Get(key string) ([]external.Game, bool) {
	games, ok := c.store[key]
	if ok {
		c.hits++
	}
	return games, ok
}

func (c *fakeCache) Set(key string, games []external.Game) {
	c.sets++
	c.store[key] = games
}

const oddsResponse = `[
  {
    "id": "evt1",
    "sport_key": "americanfootball_nfl",
    "sport_title": "NFL",
    "commence_time": "2026-01-11T18:00:00Z",
    "home_team": "Kansas City Chiefs",
    "away_team": "Buffalo Bills",
    "bookmakers": [
      {
        "key": "draftkings",
        "title": "DraftKings",
        "markets": [
          {
            "key": "h2h",
            "outcomes": [
              {"name": "Kansas City Chiefs", "price": -135},
              {"name": "Buffalo Bills", "price": 115}
            ]
          }
        ]
      }
    ]
  },
  {
    "id": "evt2",
    "sport_key": "americanfootball_nfl",
    "sport_title": "NFL",
    "commence_time": "2026-01-11T21:00:00Z",
    "home_team": "Detroit Lions",
    "away_team": "Green Bay Packers",
    "bookmakers": []
  }
]`

func newTestClient(t *testing.T, handler http.HandlerFunc, cache Cache) *OddsClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &OddsClient{
		apiKey:     "test-key",
		baseURL:    server.URL,
		httpClient: &http.Client{Timeout: time.Second},
		cache:      cache,
	}
}

func TestUpcomingGames_FlattensFirstBookmaker(t *testing.T) {
	var requested string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.String()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(oddsResponse))
	}, newFakeCache())

	games, err := client.UpcomingGames("nfl")
	require.NoError(t, err)

	assert.Contains(t, requested, "/sports/americanfootball_nfl/odds")
	assert.Contains(t, requested, "markets=h2h")
	assert.Contains(t, requested, "oddsFormat=american")

	// evt2 has no bookmaker prices and is dropped.
	require.Len(t, games, 1)
	assert.Equal(t, "Buffalo Bills @ Kansas City Chiefs", games[0].Label())
	require.Len(t, games[0].Outcomes, 2)
	assert.Equal(t, -135, games[0].Outcomes[0].Price)
	assert.Equal(t, 115, games[0].Outcomes[1].Price)
}

func TestUpcomingGames_ServedFromCache(t *testing.T) {
	requests := 0
	cache := newFakeCache()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(oddsResponse))
	}, cache)

	_, err := client.UpcomingGames("nfl")
	require.NoError(t, err)
	_, err = client.UpcomingGames("nfl")
	require.NoError(t, err)

	assert.Equal(t, 1, requests, "second lookup should not hit the API")
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, 1, cache.sets)
}

func TestUpcomingGames_UnknownSport(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an unknown sport")
	}, newFakeCache())

	_, err := client.UpcomingGames("cricket")
	assert.ErrorContains(t, err, "unknown sport")
}

func TestUpcomingGames_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, newFakeCache())

	_, err := client.UpcomingGames("nba")
	assert.ErrorContains(t, err, "odds API returned 401")
}

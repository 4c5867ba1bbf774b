package extService

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"betBookBot/metrics"
	"betBookBot/models/external"
	"betBookBot/services/common"
)

const oddsAPIBaseURL = "https://api.the-odds-api.com/v4"

// Sport keys supported by the list-games command, as The Odds API names them.
var sportKeys = map[string]string{
	"nfl": "americanfootball_nfl",
	"cfb": "americanfootball_ncaaf",
	"nba": "basketball_nba",
	"mlb": "baseball_mlb",
	"nhl": "icehockey_nhl",
}

// OddsClient fetches current moneyline odds, caching per sport.
type OddsClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      Cache
}

func NewOddsClient(apiKey string, cache Cache) *OddsClient {
	return &OddsClient{
		apiKey:     apiKey,
		baseURL:    oddsAPIBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cache:      cache,
	}
}

// UpcomingGames returns head-to-head prices for a sport, served from cache
// when a fresh entry exists.
func (c *OddsClient) UpcomingGames(sport string) ([]external.Game, error) {
	sportKey, ok := sportKeys[sport]
	if !ok {
		return nil, fmt.Errorf("unknown sport: %s", sport)
	}

	if games, ok := c.cache.Get(sportKey); ok {
		metrics.OddsCacheHits.Inc()
		return games, nil
	}

	games, err := c.fetchGames(sportKey)
	if err != nil {
		return nil, err
	}

	c.cache.Set(sportKey, games)
	return games, nil
}

func (c *OddsClient) fetchGames(sportKey string) ([]external.Game, error) {
	query := url.Values{}
	query.Set("apiKey", c.apiKey)
	query.Set("regions", "us")
	query.Set("markets", "h2h")
	query.Set("oddsFormat", "american")

	requestURL := fmt.Sprintf("%s/sports/%s/odds?%s", c.baseURL, sportKey, query.Encode())
	resp, err := c.httpClient.Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("fetching odds: %w", err)
	}
	defer resp.Body.Close()
	metrics.OddsFetches.Inc()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("odds API returned %d for %s", resp.StatusCode, sportKey)
	}

	var events []external.OddsAPI_Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("decoding odds response: %w", err)
	}

	return flattenEvents(events), nil
}

// flattenEvents reduces each event to its first bookmaker's h2h market.
// Events with no bookmaker prices are dropped.
func flattenEvents(events []external.OddsAPI_Event) []external.Game {
	var games []external.Game
	for _, event := range events {
		outcomes := firstH2HOutcomes(event.Bookmakers)
		if len(outcomes) == 0 {
			continue
		}
		games = append(games, external.Game{
			ID:           event.ID,
			Sport:        event.SportTitle,
			CommenceTime: event.CommenceTime,
			HomeTeam:     event.HomeTeam,
			AwayTeam:     event.AwayTeam,
			Outcomes:     outcomes,
		})
	}
	return games
}

func firstH2HOutcomes(bookmakers []external.OddsAPI_Bookmaker) []external.Outcome {
	for _, bookmaker := range bookmakers {
		for _, market := range bookmaker.Markets {
			if market.Key != "h2h" {
				continue
			}
			outcomes := make([]external.Outcome, 0, len(market.Outcomes))
			for _, o := range market.Outcomes {
				outcomes = append(outcomes, external.Outcome{Name: o.Name, Price: o.Price})
			}
			return outcomes
		}
	}
	return nil
}

// ListGames handles /list-games: upcoming moneylines for one sport, ready to
// copy into /log-bet.
func ListGames(s *discordgo.Session, i *discordgo.InteractionCreate, gdb *gorm.DB, client *OddsClient) {
	if client == nil {
		if err := common.RespondEphemeral(s, i, "Game listings are not configured on this bot."); err != nil {
			common.SendError(s, i, "extService.ListGames", err, gdb)
		}
		return
	}

	options := i.ApplicationCommandData().Options
	sport := "nfl"
	if len(options) > 0 {
		sport = options[0].StringValue()
	}

	games, err := client.UpcomingGames(sport)
	if err != nil {
		common.SendError(s, i, "extService.ListGames", err, gdb)
		return
	}

	if len(games) == 0 {
		if err := common.RespondEphemeral(s, i, fmt.Sprintf("No upcoming %s games with prices right now.", strings.ToUpper(sport))); err != nil {
			common.SendError(s, i, "extService.ListGames", err, gdb)
		}
		return
	}

	if len(games) > 15 {
		games = games[:15]
	}

	var response strings.Builder
	response.WriteString(fmt.Sprintf("Upcoming %s games:\n", strings.ToUpper(sport)))
	for _, game := range games {
		response.WriteString(fmt.Sprintf("* `%s` — %s\n", game.Label(), formatOutcomes(game.Outcomes)))
	}

	if err := common.RespondEphemeral(s, i, response.String()); err != nil {
		common.SendError(s, i, "extService.ListGames", err, gdb)
	}
}

func formatOutcomes(outcomes []external.Outcome) string {
	parts := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		parts = append(parts, fmt.Sprintf("%s %s", o.Name, common.FormatOdds(o.Price)))
	}
	return strings.Join(parts, " / ")
}

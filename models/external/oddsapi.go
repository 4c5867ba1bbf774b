package external

import "time"

// OddsAPI_Event mirrors one event from The Odds API v4
// /sports/{sport}/odds response (regions=us, markets=h2h, oddsFormat=american).
type OddsAPI_Event struct {
	ID           string               `json:"id"`
	SportKey     string               `json:"sport_key"`
	SportTitle   string               `json:"sport_title"`
	CommenceTime time.Time            `json:"commence_time"`
	HomeTeam     string               `json:"home_team"`
	AwayTeam     string               `json:"away_team"`
	Bookmakers   []OddsAPI_Bookmaker  `json:"bookmakers"`
}

type OddsAPI_Bookmaker struct {
	Key     string           `json:"key"`
	Title   string           `json:"title"`
	Markets []OddsAPI_Market `json:"markets"`
}

type OddsAPI_Market struct {
	Key      string            `json:"key"`
	Outcomes []OddsAPI_Outcome `json:"outcomes"`
}

type OddsAPI_Outcome struct {
	Name  string `json:"name"`
	Price int    `json:"price"` // American odds
}

// Game is the flattened shape the bot works with: one event reduced to its
// first bookmaker's head-to-head prices.
type Game struct {
	ID           string
	Sport        string
	CommenceTime time.Time
	HomeTeam     string
	AwayTeam     string
	Outcomes     []Outcome
}

type Outcome struct {
	Name  string
	Price int
}

// Label renders the game the way legs store it.
func (g Game) Label() string {
	return g.AwayTeam + " @ " + g.HomeTeam
}

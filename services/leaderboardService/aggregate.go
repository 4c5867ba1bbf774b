package leaderboardService

import (
	"fmt"
	"sort"

	"betBookBot/models"
)

// TopN is how many standings each leaderboard column shows.
const TopN = 5

// UserStanding is one user's record, derived fresh from graded wagers on every
// read. Nothing here is persisted, so the displayed record can never drift
// from the stored bets.
type UserStanding struct {
	UserID   string
	Username *string

	StraightWins   int
	StraightLosses int
	StraightPushes int

	ParlayWins   int
	ParlayLosses int
	ParlayPushes int

	TotalWins      int
	TotalLosses    int
	TotalPushes    int
	TotalDecisions int // wins + losses; pushes never count
	WinPct         float64
}

// DisplayName falls back when the snapshot carried no username.
func (u *UserStanding) DisplayName() string {
	if u.Username != nil && *u.Username != "" {
		return *u.Username
	}
	return "Unknown"
}

// Record renders the overall W-L-P line.
func (u *UserStanding) Record() string {
	return fmt.Sprintf("%d-%d-%d", u.TotalWins, u.TotalLosses, u.TotalPushes)
}

// Aggregate folds graded straight bets and parlays into per-user standings.
// Both inputs must already be filtered to terminal results. The returned slice
// is in first-seen order, and the first record seen for a user fixes that
// user's display identity. The fold is pure: same inputs, same output.
func Aggregate(bets []models.StraightBet, parlays []models.Parlay) []*UserStanding {
	byUser := make(map[string]*UserStanding)
	var order []*UserStanding

	getOrInit := func(userID string, username *string) *UserStanding {
		if standing, ok := byUser[userID]; ok {
			return standing
		}
		standing := &UserStanding{UserID: userID, Username: username}
		byUser[userID] = standing
		order = append(order, standing)
		return standing
	}

	for _, bet := range bets {
		if bet.UserID == "" || !bet.Result.Terminal() {
			continue
		}
		u := getOrInit(bet.UserID, bet.Username)
		switch bet.Result {
		case models.ResultWin:
			u.StraightWins++
		case models.ResultLoss:
			u.StraightLosses++
		case models.ResultPush:
			u.StraightPushes++
		}
	}

	for _, parlay := range parlays {
		if parlay.UserID == "" || !parlay.Result.Terminal() {
			continue
		}
		u := getOrInit(parlay.UserID, parlay.Username)
		switch parlay.Result {
		case models.ResultWin:
			u.ParlayWins++
		case models.ResultLoss:
			u.ParlayLosses++
		case models.ResultPush:
			u.ParlayPushes++
		}
	}

	for _, u := range order {
		u.TotalWins = u.StraightWins + u.ParlayWins
		u.TotalLosses = u.StraightLosses + u.ParlayLosses
		u.TotalPushes = u.StraightPushes + u.ParlayPushes
		u.TotalDecisions = u.TotalWins + u.TotalLosses
		if u.TotalDecisions > 0 {
			u.WinPct = float64(u.TotalWins) / float64(u.TotalDecisions)
		}
	}

	return order
}

// Rank filters standings to users with at least minDecisions decisions and
// returns the hot and cold lists. Hot is win percentage descending. Cold is
// win percentage ascending, then reversed, so cold[0] is the TopN-th worst and
// the single worst record sits at the bottom of the list. Ties keep the input
// order (stable sorts).
func Rank(standings []*UserStanding, minDecisions int) (hot, cold []*UserStanding) {
	var eligible []*UserStanding
	for _, u := range standings {
		if u.TotalDecisions >= minDecisions {
			eligible = append(eligible, u)
		}
	}

	hot = make([]*UserStanding, len(eligible))
	copy(hot, eligible)
	sort.SliceStable(hot, func(i, j int) bool { return hot[i].WinPct > hot[j].WinPct })
	if len(hot) > TopN {
		hot = hot[:TopN]
	}

	cold = make([]*UserStanding, len(eligible))
	copy(cold, eligible)
	sort.SliceStable(cold, func(i, j int) bool { return cold[i].WinPct < cold[j].WinPct })
	if len(cold) > TopN {
		cold = cold[:TopN]
	}
	for i, j := 0, len(cold)-1; i < j; i, j = i+1, j-1 {
		cold[i], cold[j] = cold[j], cold[i]
	}

	return hot, cold
}

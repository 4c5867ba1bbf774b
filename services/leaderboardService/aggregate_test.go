package leaderboardService

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betBookBot/models"
)

func strPtr(s string) *string { return &s }

func straightBets(userID, username string, wins, losses, pushes int) []models.StraightBet {
	var bets []models.StraightBet
	add := func(n int, result models.Result) {
		for i := 0; i < n; i++ {
			bets = append(bets, models.StraightBet{
				UserID:   userID,
				Username: strPtr(username),
				Result:   result,
			})
		}
	}
	add(wins, models.ResultWin)
	add(losses, models.ResultLoss)
	add(pushes, models.ResultPush)
	return bets
}

func TestAggregate_CountsStraightAndParlay(t *testing.T) {
	bets := straightBets("u1", "alice", 2, 1, 1)
	parlays := []models.Parlay{
		{UserID: "u1", Username: strPtr("alice"), Result: models.ResultWin},
		{UserID: "u1", Username: strPtr("alice"), Result: models.ResultLoss},
	}

	standings := Aggregate(bets, parlays)
	require.Len(t, standings, 1)

	u := standings[0]
	assert.Equal(t, 2, u.StraightWins)
	assert.Equal(t, 1, u.StraightLosses)
	assert.Equal(t, 1, u.StraightPushes)
	assert.Equal(t, 1, u.ParlayWins)
	assert.Equal(t, 1, u.ParlayLosses)
	assert.Equal(t, 3, u.TotalWins)
	assert.Equal(t, 2, u.TotalLosses)
	assert.Equal(t, 1, u.TotalPushes)
	assert.Equal(t, 5, u.TotalDecisions)
	assert.InDelta(t, 0.6, u.WinPct, 1e-9)
	assert.Equal(t, "3-2-1", u.Record())
}

func TestRank_MinDecisionsAndOrdering(t *testing.T) {
	var bets []models.StraightBet
	bets = append(bets, straightBets("a", "userA", 4, 1, 0)...) // 0.8 over 5 decisions
	bets = append(bets, straightBets("b", "userB", 1, 4, 0)...) // 0.2 over 5 decisions
	bets = append(bets, straightBets("c", "userC", 1, 1, 0)...) // only 2 decisions

	standings := Aggregate(bets, nil)
	require.Len(t, standings, 3)

	hot, cold := Rank(standings, 3)

	// C has too few decisions to appear anywhere.
	require.Len(t, hot, 2)
	require.Len(t, cold, 2)

	assert.Equal(t, "a", hot[0].UserID)
	assert.InDelta(t, 0.8, hot[0].WinPct, 1e-9)
	assert.Equal(t, "b", hot[1].UserID)

	// Cold is reversed for display: the single worst record sits last, and the
	// presentation numbers it bottom-up so B is still the #1 coldest.
	assert.Equal(t, "a", cold[0].UserID)
	assert.Equal(t, "b", cold[len(cold)-1].UserID)
	assert.InDelta(t, 0.2, cold[len(cold)-1].WinPct, 1e-9)
}

func TestRank_TruncatesToTopN(t *testing.T) {
	var bets []models.StraightBet
	for i := 0; i < 8; i++ {
		id := fmt.Sprintf("u%d", i)
		// i wins, 8-i losses: distinct win percentages across users
		bets = append(bets, straightBets(id, id, i, 8-i, 0)...)
	}

	standings := Aggregate(bets, nil)
	hot, cold := Rank(standings, 3)

	require.Len(t, hot, TopN)
	require.Len(t, cold, TopN)

	assert.Equal(t, "u7", hot[0].UserID) // 7-1, best
	assert.Equal(t, "u0", cold[len(cold)-1].UserID) // 0-8, worst, shown last
	assert.Equal(t, "u4", cold[0].UserID)           // 5th worst leads the cold list
}

func TestAggregate_PushesNeverTouchWinPct(t *testing.T) {
	withPushes := Aggregate(straightBets("p", "pushy", 2, 2, 10), nil)
	without := Aggregate(straightBets("q", "clean", 2, 2, 0), nil)

	require.Len(t, withPushes, 1)
	require.Len(t, without, 1)

	assert.Equal(t, 4, withPushes[0].TotalDecisions)
	assert.Equal(t, 4, without[0].TotalDecisions)
	assert.InDelta(t, 0.5, withPushes[0].WinPct, 1e-9)
	assert.Equal(t, without[0].WinPct, withPushes[0].WinPct)
}

func TestAggregate_OrderIndependentCounts(t *testing.T) {
	var bets []models.StraightBet
	bets = append(bets, straightBets("a", "userA", 3, 2, 1)...)
	bets = append(bets, straightBets("b", "userB", 1, 5, 0)...)
	parlays := []models.Parlay{
		{UserID: "a", Username: strPtr("userA"), Result: models.ResultWin},
		{UserID: "b", Username: strPtr("userB"), Result: models.ResultPush},
	}

	baseline := Aggregate(bets, parlays)
	byID := make(map[string]*UserStanding)
	for _, u := range baseline {
		byID[u.UserID] = u
	}

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 10; trial++ {
		shuffledBets := make([]models.StraightBet, len(bets))
		copy(shuffledBets, bets)
		rng.Shuffle(len(shuffledBets), func(i, j int) {
			shuffledBets[i], shuffledBets[j] = shuffledBets[j], shuffledBets[i]
		})

		for _, u := range Aggregate(shuffledBets, parlays) {
			want := byID[u.UserID]
			require.NotNil(t, want)
			assert.Equal(t, want.TotalWins, u.TotalWins)
			assert.Equal(t, want.TotalLosses, u.TotalLosses)
			assert.Equal(t, want.TotalPushes, u.TotalPushes)
			assert.Equal(t, want.WinPct, u.WinPct)
		}
	}
}

func TestAggregate_FirstSeenIdentityWins(t *testing.T) {
	bets := []models.StraightBet{
		{UserID: "u1", Username: strPtr("original-handle"), Result: models.ResultWin},
		{UserID: "u1", Username: strPtr("renamed-later"), Result: models.ResultLoss},
	}

	standings := Aggregate(bets, nil)
	require.Len(t, standings, 1)
	assert.Equal(t, "original-handle", standings[0].DisplayName())
}

func TestAggregate_SkipsPendingAndAnonymous(t *testing.T) {
	bets := []models.StraightBet{
		{UserID: "u1", Username: strPtr("alice"), Result: models.ResultPending},
		{UserID: "", Username: strPtr("ghost"), Result: models.ResultWin},
		{UserID: "u1", Username: strPtr("alice"), Result: models.ResultWin},
	}

	standings := Aggregate(bets, nil)
	require.Len(t, standings, 1)
	assert.Equal(t, 1, standings[0].TotalWins)
	assert.Equal(t, 1, standings[0].TotalDecisions)
}

func TestDisplayName_Fallback(t *testing.T) {
	assert.Equal(t, "Unknown", (&UserStanding{UserID: "u9"}).DisplayName())
	assert.Equal(t, "Unknown", (&UserStanding{UserID: "u9", Username: strPtr("")}).DisplayName())
}

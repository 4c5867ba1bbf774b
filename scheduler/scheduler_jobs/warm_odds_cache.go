package scheduler_jobs

import (
	"fmt"

	"go.uber.org/zap"

	"betBookBot/services/extService"
)

// Sports worth keeping warm; the long-tail ones can wait for an on-demand fetch.
var warmSports = []string{"nfl", "nba"}

// WarmOddsCache refreshes the odds cache for the popular sports so list-games
// usually answers without a round trip to the API.
func WarmOddsCache(client *extService.OddsClient) (err error) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("recovered in WarmOddsCache", zap.Any("panic", r), zap.Stack("stack"))
			err = fmt.Errorf("panic recovered in WarmOddsCache: %v", r)
		}
	}()

	for _, sport := range warmSports {
		if _, fetchErr := client.UpcomingGames(sport); fetchErr != nil {
			zap.L().Warn("refreshing odds cache failed",
				zap.String("sport", sport), zap.Error(fetchErr))
		}
	}

	return nil
}

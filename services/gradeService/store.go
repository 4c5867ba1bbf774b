package gradeService

import (
	"gorm.io/gorm"

	"betBookBot/models"
)

// GradeStraightBet transitions one straight bet from pending to decision. The
// WHERE clause on the current result makes the update conditional, so of two
// racing grading requests exactly one wins; the other sees ErrAlreadyGraded.
func GradeStraightBet(db *gorm.DB, guildID string, betID uint, decision models.Result) error {
	if !decision.Terminal() {
		return ErrInvalidDecision
	}

	result := db.Model(&models.StraightBet{}).
		Where("id = ? AND guild_id = ? AND result = ?", betID, guildID, models.ResultPending).
		Update("result", decision)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlreadyGraded
	}
	return nil
}

// GradeParlay transitions a parlay the same way. The parlay is the unit of
// grading; its legs carry no result of their own.
func GradeParlay(db *gorm.DB, guildID string, parlayID uint, decision models.Result) error {
	if !decision.Terminal() {
		return ErrInvalidDecision
	}

	result := db.Model(&models.Parlay{}).
		Where("id = ? AND guild_id = ? AND result = ?", parlayID, guildID, models.ResultPending).
		Update("result", decision)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlreadyGraded
	}
	return nil
}

// PendingStraightBets returns the guild's bets still awaiting grading, oldest first.
func PendingStraightBets(db *gorm.DB, guildID string, limit int) ([]models.StraightBet, error) {
	var bets []models.StraightBet
	err := db.Where("guild_id = ? AND result = ?", guildID, models.ResultPending).
		Order("created_at asc").Limit(limit).Find(&bets).Error
	return bets, err
}

// PendingParlays returns the guild's ungraded parlays with their legs, oldest first.
func PendingParlays(db *gorm.DB, guildID string, limit int) ([]models.Parlay, error) {
	var parlays []models.Parlay
	err := db.Preload("Legs").
		Where("guild_id = ? AND result = ?", guildID, models.ResultPending).
		Order("created_at asc").Limit(limit).Find(&parlays).Error
	return parlays, err
}

// GradedStraightBets returns the guild's bets holding a terminal result, the
// collection the leaderboard folds over. Pending rows never appear here.
func GradedStraightBets(db *gorm.DB, guildID string) ([]models.StraightBet, error) {
	var bets []models.StraightBet
	err := db.Where("guild_id = ? AND result IN ?", guildID, models.GradedResults).
		Order("created_at asc").Find(&bets).Error
	return bets, err
}

// GradedParlays is the parlay half of the leaderboard input.
func GradedParlays(db *gorm.DB, guildID string) ([]models.Parlay, error) {
	var parlays []models.Parlay
	err := db.Where("guild_id = ? AND result IN ?", guildID, models.GradedResults).
		Order("created_at asc").Find(&parlays).Error
	return parlays, err
}

package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StraightBet is a single-leg wager. The leg fields (Sport through Odds) are
// frozen at logging time; only Result changes afterwards, via grading.
type StraightBet struct {
	gorm.Model
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"size:64; index"`
	Username  *string
	GuildID   string `gorm:"size:64; index"`
	Sport     string
	Game      string // "{away} @ {home}"
	Team      string
	BetType   string // free text, e.g. "ML", "spread"
	Odds      int    // American, never zero
	Stake     decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	Note      string
	Result    Result `gorm:"size:16; default:pending"`
	MessageID *string
	ChannelID string
}

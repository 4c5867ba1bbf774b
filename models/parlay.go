package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Parlay struct {
	gorm.Model
	ID           uint   `gorm:"primaryKey"`
	UserID       string `gorm:"size:64; index"`
	Username     *string
	GuildID      string              `gorm:"size:64; index"`
	Stake        decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	CombinedOdds int                 // American, computed from the legs at submission
	Result       Result              `gorm:"size:16; default:pending"`
	Legs         []ParlayLeg         `gorm:"constraint:OnDelete:CASCADE"`
	MessageID    *string
	ChannelID    string
}

// ParlayLeg is one selection inside a parlay. Legs are owned by their parlay,
// ordered by insertion, and never graded individually.
type ParlayLeg struct {
	gorm.Model
	ID       uint `gorm:"primaryKey"`
	ParlayID uint `gorm:"index"`
	Sport    string
	Game     string
	Team     string
	BetType  string
	Odds     int
	Line     *float64
}

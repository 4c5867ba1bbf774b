package models

import "gorm.io/gorm"

// Feed item kinds. Reactions and comments reference a wager by kind + ID since
// straight bets and parlays live in separate tables.
const (
	FeedItemBet    = "bet"
	FeedItemParlay = "parlay"
)

type FeedReaction struct {
	gorm.Model
	ID           uint   `gorm:"primaryKey"`
	GuildID      string `gorm:"size:64"`
	ItemType     string `gorm:"size:16; uniqueIndex:reaction_item_user_idx"`
	ItemID       uint   `gorm:"uniqueIndex:reaction_item_user_idx"`
	UserID       string `gorm:"size:64; uniqueIndex:reaction_item_user_idx"`
	ReactionType string `gorm:"size:16"` // "tail", "up", "down"
}

type FeedComment struct {
	gorm.Model
	ID       uint   `gorm:"primaryKey"`
	GuildID  string `gorm:"size:64"`
	ItemType string `gorm:"size:16; index:comment_item_idx"`
	ItemID   uint   `gorm:"index:comment_item_idx"`
	UserID   string `gorm:"size:64"`
	Username *string
	Body     string
}

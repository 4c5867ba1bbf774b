package models

import "gorm.io/gorm"

type Guild struct {
	gorm.Model
	ID           uint `gorm:"primaryKey"`
	GuildID      string
	GuildName    string
	BetChannelID string
	MinDecisions int `gorm:"default:3"` // graded decisions required to appear on the leaderboard
}

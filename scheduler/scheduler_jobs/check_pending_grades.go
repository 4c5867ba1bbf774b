package scheduler_jobs

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"betBookBot/models"
)

// Wagers pending longer than this show up in the daily reminder.
const staleAfter = 48 * time.Hour

// CheckPendingGrades nudges each guild's bet channel about wagers that have
// sat ungraded for a while.
func CheckPendingGrades(s *discordgo.Session, db *gorm.DB) (err error) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("recovered in CheckPendingGrades", zap.Any("panic", r), zap.Stack("stack"))
			err = fmt.Errorf("panic recovered in CheckPendingGrades: %v", r)
		}
	}()

	var guilds []models.Guild
	result := db.Where("bet_channel_id <> ''").Find(&guilds)
	if result.Error != nil {
		return result.Error
	}

	cutoff := time.Now().Add(-staleAfter)
	for _, guild := range guilds {
		var staleBets int64
		db.Model(&models.StraightBet{}).
			Where("guild_id = ? AND result = ? AND created_at < ?", guild.GuildID, models.ResultPending, cutoff).
			Count(&staleBets)

		var staleParlays int64
		db.Model(&models.Parlay{}).
			Where("guild_id = ? AND result = ? AND created_at < ?", guild.GuildID, models.ResultPending, cutoff).
			Count(&staleParlays)

		total := staleBets + staleParlays
		if total == 0 {
			continue
		}

		msg := fmt.Sprintf("⏳ There are **%d** wagers waiting on a grade for over two days. An admin can settle them with `/grade`.", total)
		_, sendErr := s.ChannelMessageSend(guild.BetChannelID, msg)
		if sendErr != nil {
			zap.L().Warn("sending grade reminder failed",
				zap.String("guild_id", guild.GuildID), zap.Error(sendErr))
		}
	}

	return nil
}

package scheduler_jobs

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"betBookBot/models"
	"betBookBot/services"
)

// PostLeaderboards publishes the weekly standings to each guild's bet channel.
func PostLeaderboards(s *discordgo.Session, db *gorm.DB) (err error) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("recovered in PostLeaderboards", zap.Any("panic", r), zap.Stack("stack"))
			err = fmt.Errorf("panic recovered in PostLeaderboards: %v", r)
		}
	}()

	var guilds []models.Guild
	result := db.Where("bet_channel_id <> ''").Find(&guilds)
	if result.Error != nil {
		return result.Error
	}

	for _, guild := range guilds {
		embeds, buildErr := services.BuildLeaderboardEmbeds(s, db, guild.GuildID)
		if buildErr != nil {
			zap.L().Warn("building leaderboard embeds failed",
				zap.String("guild_id", guild.GuildID), zap.Error(buildErr))
			continue
		}

		_, sendErr := s.ChannelMessageSendComplex(guild.BetChannelID, &discordgo.MessageSend{
			Content: "📅 Weekly standings are in!",
			Embeds:  embeds,
		})
		if sendErr != nil {
			zap.L().Warn("posting weekly leaderboard failed",
				zap.String("guild_id", guild.GuildID), zap.Error(sendErr))
		}
	}

	return nil
}

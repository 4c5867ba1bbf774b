package services

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"betBookBot/metrics"
	"betBookBot/services/common"
	"betBookBot/services/gradeService"
	"betBookBot/services/guildService"
	"betBookBot/services/leaderboardService"
)

// ShowLeaderboard handles /leaderboard: hot and cold standings rebuilt from
// graded wagers on every call.
func ShowLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate, gdb *gorm.DB) {
	embeds, err := BuildLeaderboardEmbeds(s, gdb, i.GuildID)
	if err != nil {
		common.SendError(s, i, "services.ShowLeaderboard", err, gdb)
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: embeds,
		},
	})
	if err != nil {
		common.SendError(s, i, "services.ShowLeaderboard", err, gdb)
	}
}

// BuildLeaderboardEmbeds is shared between the slash command and the scheduled
// weekly post.
func BuildLeaderboardEmbeds(s *discordgo.Session, gdb *gorm.DB, guildID string) ([]*discordgo.MessageEmbed, error) {
	guild, err := guildService.GetGuildInfo(s, gdb, guildID, "")
	if err != nil {
		return nil, err
	}

	bets, err := gradeService.GradedStraightBets(gdb, guildID)
	if err != nil {
		return nil, err
	}
	parlays, err := gradeService.GradedParlays(gdb, guildID)
	if err != nil {
		return nil, err
	}

	standings := leaderboardService.Aggregate(bets, parlays)
	hot, cold := leaderboardService.Rank(standings, guild.MinDecisions)
	metrics.LeaderboardBuilds.Inc()

	if len(hot) == 0 && len(cold) == 0 {
		return []*discordgo.MessageEmbed{{
			Title: "🏆 Leaderboard",
			Description: fmt.Sprintf("Nobody has %d graded decisions yet. Get betting.",
				guild.MinDecisions),
			Color: 0x3498db,
		}}, nil
	}

	hotEmbed := &discordgo.MessageEmbed{
		Title:       "🔥 Hot Bettors",
		Description: formatStandings(hot, false),
		Color:       0x57F287,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Minimum %d decisions • pushes don't count", guild.MinDecisions),
		},
	}
	coldEmbed := &discordgo.MessageEmbed{
		Title:       "🧊 Ice Cold",
		Description: formatStandings(cold, true),
		Color:       0x5865F2,
	}

	return []*discordgo.MessageEmbed{hotEmbed, coldEmbed}, nil
}

// formatStandings numbers hot entries top-down. Cold entries are numbered
// bottom-up so the worst record reads as #1 at the bottom of the list.
func formatStandings(standings []*leaderboardService.UserStanding, bottomUp bool) string {
	if len(standings) == 0 {
		return "_No qualifying bettors._"
	}

	var description strings.Builder
	for idx, u := range standings {
		rank := idx + 1
		if bottomUp {
			rank = len(standings) - idx
		}
		description.WriteString(fmt.Sprintf("%d. **%s** — %s (%.1f%%)\n",
			rank, u.DisplayName(), u.Record(), u.WinPct*100))
	}
	return description.String()
}

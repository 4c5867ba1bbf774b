package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"betBookBot/metrics"
	"betBookBot/models"
	"betBookBot/services/common"
	"betBookBot/services/gradeService"
	"betBookBot/services/messageService"
)

// Discord caps a message at five action rows; two bets plus two parlays fits.
const gradeMenuLimit = 2

// ShowGradeMenu handles /grade: an admin-only ephemeral menu of the oldest
// pending wagers, each with win/loss/push buttons.
func ShowGradeMenu(s *discordgo.Session, i *discordgo.InteractionCreate, gdb *gorm.DB) {
	if !common.IsAdmin(s, i) {
		if err := common.RespondEphemeral(s, i, "You are not authorized to grade wagers."); err != nil {
			common.SendError(s, i, "services.ShowGradeMenu", err, gdb)
		}
		return
	}

	bets, err := gradeService.PendingStraightBets(gdb, i.GuildID, gradeMenuLimit)
	if err != nil {
		common.SendError(s, i, "services.ShowGradeMenu", err, gdb)
		return
	}
	parlays, err := gradeService.PendingParlays(gdb, i.GuildID, gradeMenuLimit)
	if err != nil {
		common.SendError(s, i, "services.ShowGradeMenu", err, gdb)
		return
	}

	if len(bets) == 0 && len(parlays) == 0 {
		if err := common.RespondEphemeral(s, i, "Nothing to grade. All wagers are settled."); err != nil {
			common.SendError(s, i, "services.ShowGradeMenu", err, gdb)
		}
		return
	}

	var description strings.Builder
	var rows []discordgo.MessageComponent
	for _, bet := range bets {
		owner := "Unknown User"
		if bet.Username != nil && *bet.Username != "" {
			owner = *bet.Username
		}
		description.WriteString(fmt.Sprintf("**Bet #%d** — %s: %s %s (%s), %s\n",
			bet.ID, owner, bet.Team, bet.BetType, common.FormatOdds(bet.Odds), bet.Game))
		rows = append(rows, messageService.GradeButtons(models.FeedItemBet, bet.ID, fmt.Sprintf("Bet #%d", bet.ID)))
	}
	for _, parlay := range parlays {
		owner := "Unknown User"
		if parlay.Username != nil && *parlay.Username != "" {
			owner = *parlay.Username
		}
		description.WriteString(fmt.Sprintf("**Parlay #%d** — %s: %d legs (%s)\n",
			parlay.ID, owner, len(parlay.Legs), common.FormatOdds(parlay.CombinedOdds)))
		rows = append(rows, messageService.GradeButtons(models.FeedItemParlay, parlay.ID, fmt.Sprintf("Parlay #%d", parlay.ID)))
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{{
				Title:       "⚖️ Grade Wagers",
				Description: description.String(),
				Color:       0x3498db,
			}},
			Components: rows,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		common.SendError(s, i, "services.ShowGradeMenu", err, gdb)
	}
}

// HandleGradeButton settles one wager. Custom ID format:
// grade_{bet|parlay}_{id}_{win|loss|push}.
func HandleGradeButton(s *discordgo.Session, i *discordgo.InteractionCreate, gdb *gorm.DB) {
	if !common.IsAdmin(s, i) {
		if err := common.RespondEphemeral(s, i, "You are not authorized to grade wagers."); err != nil {
			common.SendError(s, i, "services.HandleGradeButton", err, gdb)
		}
		return
	}

	itemType, itemID, decision, err := parseGradeID(i.MessageComponentData().CustomID)
	if err != nil {
		common.SendError(s, i, "services.HandleGradeButton", err, gdb)
		return
	}

	switch itemType {
	case models.FeedItemBet:
		err = gradeService.GradeStraightBet(gdb, i.GuildID, itemID, decision)
	case models.FeedItemParlay:
		err = gradeService.GradeParlay(gdb, i.GuildID, itemID, decision)
	}

	if errors.Is(err, gradeService.ErrAlreadyGraded) {
		metrics.GradingConflicts.Inc()
		if err := common.RespondEphemeral(s, i, fmt.Sprintf("%s #%d was already graded, nothing changed.", titleCase(itemType), itemID)); err != nil {
			common.SendError(s, i, "services.HandleGradeButton", err, gdb)
		}
		return
	}
	if err != nil {
		common.SendError(s, i, "services.HandleGradeButton", err, gdb)
		return
	}

	metrics.Gradings.WithLabelValues(string(decision)).Inc()
	updatePostedWagerFooter(s, gdb, i.GuildID, itemType, itemID, decision)

	if err := common.RespondEphemeral(s, i, fmt.Sprintf("%s #%d graded as **%s**.", titleCase(itemType), itemID, decision)); err != nil {
		common.SendError(s, i, "services.HandleGradeButton", err, gdb)
	}
}

// updatePostedWagerFooter rewrites the bet-channel post so the feed shows the
// settled result. Best effort; a deleted message is not an error worth surfacing.
func updatePostedWagerFooter(s *discordgo.Session, gdb *gorm.DB, guildID, itemType string, itemID uint, decision models.Result) {
	var messageID *string
	var channelID string

	switch itemType {
	case models.FeedItemBet:
		var bet models.StraightBet
		if err := gdb.First(&bet, "id = ? AND guild_id = ?", itemID, guildID).Error; err != nil {
			return
		}
		messageID, channelID = bet.MessageID, bet.ChannelID
	case models.FeedItemParlay:
		var parlay models.Parlay
		if err := gdb.First(&parlay, "id = ? AND guild_id = ?", itemID, guildID).Error; err != nil {
			return
		}
		messageID, channelID = parlay.MessageID, parlay.ChannelID
	}

	if messageID == nil || channelID == "" {
		return
	}

	msg, err := s.ChannelMessage(channelID, *messageID)
	if err != nil || len(msg.Embeds) == 0 {
		return
	}

	embed := msg.Embeds[0]
	if embed.Footer != nil {
		embed.Footer.Text = strings.Replace(embed.Footer.Text, "pending", string(decision), 1)
	}
	switch decision {
	case models.ResultWin:
		embed.Color = 0x57F287
	case models.ResultLoss:
		embed.Color = 0xED4245
	}

	_, err = s.ChannelMessageEditEmbed(channelID, *messageID, embed)
	if err != nil {
		return
	}
}

func parseGradeID(customID string) (itemType string, itemID uint, decision models.Result, err error) {
	parts := strings.Split(strings.TrimPrefix(customID, "grade_"), "_")
	if len(parts) != 3 {
		return "", 0, "", fmt.Errorf("malformed grade id: %s", customID)
	}
	itemType = parts[0]
	if itemType != models.FeedItemBet && itemType != models.FeedItemParlay {
		return "", 0, "", fmt.Errorf("unknown item type: %s", itemType)
	}
	id, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return "", 0, "", fmt.Errorf("malformed item id: %s", parts[1])
	}
	decision = models.Result(parts[2])
	if !decision.Terminal() {
		return "", 0, "", fmt.Errorf("unknown decision: %s", parts[2])
	}
	return itemType, uint(id), decision, nil
}

func titleCase(itemType string) string {
	if itemType == models.FeedItemParlay {
		return "Parlay"
	}
	return "Bet"
}

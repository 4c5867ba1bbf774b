package messageService

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"betBookBot/models"
	"betBookBot/services/common"
)

const (
	colorInfo = 0x3498db
	colorWin  = 0x57F287
	colorLoss = 0xED4245
	colorCold = 0x5865F2
)

// StraightBetEmbed renders a logged single bet. potentialProfit is
// pre-formatted by the caller; empty means no stake was given.
func StraightBetEmbed(bet models.StraightBet, potentialProfit string) *discordgo.MessageEmbed {
	owner := "Unknown User"
	if bet.Username != nil && *bet.Username != "" {
		owner = *bet.Username
	}

	var description strings.Builder
	description.WriteString(fmt.Sprintf("**%s %s** (%s)\n", bet.Team, bet.BetType, common.FormatOdds(bet.Odds)))
	description.WriteString(fmt.Sprintf("%s\n", bet.Game))
	if bet.Stake.Valid {
		description.WriteString(fmt.Sprintf("\n**Stake:** $%s\n", bet.Stake.Decimal.StringFixed(2)))
	}
	if potentialProfit != "" {
		description.WriteString(fmt.Sprintf("**To Win:** $%s\n", potentialProfit))
	}
	if bet.Note != "" {
		description.WriteString(fmt.Sprintf("\n_%s_\n", bet.Note))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎟️ %s logged a bet", owner),
		Description: description.String(),
		Color:       colorInfo,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Bet #%d • %s • pending", bet.ID, bet.Sport),
		},
	}
}

// ParlayEmbed renders a submitted parlay with all its legs.
func ParlayEmbed(parlay models.Parlay, potentialProfit string) *discordgo.MessageEmbed {
	owner := "Unknown User"
	if parlay.Username != nil && *parlay.Username != "" {
		owner = *parlay.Username
	}

	var description strings.Builder
	for idx, leg := range parlay.Legs {
		description.WriteString(fmt.Sprintf("%d. **%s %s** (%s) — %s\n",
			idx+1, leg.Team, leg.BetType, common.FormatOdds(leg.Odds), leg.Game))
	}
	description.WriteString(fmt.Sprintf("\n**Combined Odds:** %s\n", common.FormatOdds(parlay.CombinedOdds)))
	if parlay.Stake.Valid {
		description.WriteString(fmt.Sprintf("**Stake:** $%s\n", parlay.Stake.Decimal.StringFixed(2)))
	}
	if potentialProfit != "" {
		description.WriteString(fmt.Sprintf("**To Win:** $%s\n", potentialProfit))
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎰 %s logged a %d-leg parlay", owner, len(parlay.Legs)),
		Description: description.String(),
		Color:       colorInfo,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Parlay #%d • pending", parlay.ID),
		},
	}
}

// ReactionButtons are attached to every wager posted to the bet channel.
func ReactionButtons(itemType string, itemID uint) discordgo.ActionsRow {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Tail",
				Style:    discordgo.SuccessButton,
				CustomID: fmt.Sprintf("react_%s_%d_tail", itemType, itemID),
				Emoji:    &discordgo.ComponentEmoji{Name: "🏃"},
			},
			discordgo.Button{
				Label:    "Like",
				Style:    discordgo.SecondaryButton,
				CustomID: fmt.Sprintf("react_%s_%d_up", itemType, itemID),
				Emoji:    &discordgo.ComponentEmoji{Name: "👍"},
			},
			discordgo.Button{
				Label:    "Fade",
				Style:    discordgo.SecondaryButton,
				CustomID: fmt.Sprintf("react_%s_%d_down", itemType, itemID),
				Emoji:    &discordgo.ComponentEmoji{Name: "👎"},
			},
			discordgo.Button{
				Label:    "Comment",
				Style:    discordgo.PrimaryButton,
				CustomID: fmt.Sprintf("comment_%s_%d", itemType, itemID),
				Emoji:    &discordgo.ComponentEmoji{Name: "💬"},
			},
		},
	}
}

// GradeButtons is one action row of win/loss/push buttons for a single record
// on the admin grading menu.
func GradeButtons(itemType string, itemID uint, label string) discordgo.ActionsRow {
	if len(label) > 60 {
		label = label[:57] + "..."
	}
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    fmt.Sprintf("%s — Win", label),
				Style:    discordgo.SuccessButton,
				CustomID: fmt.Sprintf("grade_%s_%d_win", itemType, itemID),
			},
			discordgo.Button{
				Label:    "Loss",
				Style:    discordgo.DangerButton,
				CustomID: fmt.Sprintf("grade_%s_%d_loss", itemType, itemID),
			},
			discordgo.Button{
				Label:    "Push",
				Style:    discordgo.SecondaryButton,
				CustomID: fmt.Sprintf("grade_%s_%d_push", itemType, itemID),
			},
		},
	}
}

// ResultBadge renders a graded state for feed lines.
func ResultBadge(result models.Result) string {
	switch result {
	case models.ResultWin:
		return "✅ Won"
	case models.ResultLoss:
		return "❌ Lost"
	case models.ResultPush:
		return "➖ Push"
	default:
		return "⏳ Pending"
	}
}

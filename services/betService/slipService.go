package betService

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"betBookBot/metrics"
	"betBookBot/models"
	"betBookBot/services/common"
	"betBookBot/services/messageService"
	"betBookBot/services/oddsService"
)

// MinParlayLegs is enforced at submission; the slip itself previews fine with
// fewer legs.
const MinParlayLegs = 2

// SlipSession stores the current state of a parlay being built
type SlipSession struct {
	UserID  string
	GuildID string
	Legs    []models.ParlayLeg
}

var (
	slipSessionsMap = make(map[string]*SlipSession)
	slipSessionsMu  sync.RWMutex
)

// GetSlip retrieves the slip for a given session ID
func GetSlip(sessionID string) (*SlipSession, bool) {
	slipSessionsMu.RLock()
	defer slipSessionsMu.RUnlock()
	session, exists := slipSessionsMap[sessionID]
	return session, exists
}

// StoreSlip stores the slip for a given session ID
func StoreSlip(sessionID string, session *SlipSession) {
	slipSessionsMu.Lock()
	defer slipSessionsMu.Unlock()
	slipSessionsMap[sessionID] = session
}

// CleanupSlip removes the slip for a given session ID
func CleanupSlip(sessionID string) {
	slipSessionsMu.Lock()
	defer slipSessionsMu.Unlock()
	delete(slipSessionsMap, sessionID)
}

// LegOdds flattens a slip's legs into the odds list the calculator takes.
func LegOdds(legs []models.ParlayLeg) []int {
	odds := make([]int, 0, len(legs))
	for _, leg := range legs {
		odds = append(odds, leg.Odds)
	}
	return odds
}

// StartParlaySlip handles /log-parlay: opens an empty ephemeral slip.
func StartParlaySlip(s *discordgo.Session, i *discordgo.InteractionCreate, gdb *gorm.DB) {
	user, err := common.EnsureUser(gdb, i)
	if err != nil {
		common.SendError(s, i, "betService.StartParlaySlip", err, gdb)
		return
	}

	sessionID := i.Interaction.ID
	StoreSlip(sessionID, &SlipSession{UserID: user.DiscordID, GuildID: i.GuildID})

	embed, components := BuildSlipPreview(sessionID, nil)
	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		common.SendError(s, i, "betService.StartParlaySlip", err, gdb)
	}
}

// BuildSlipPreview renders the slip as it stands: legs so far, live combined
// odds, and buttons. Submit stays disabled until the slip has enough legs.
func BuildSlipPreview(sessionID string, legs []models.ParlayLeg) (*discordgo.MessageEmbed, []discordgo.MessageComponent) {
	var description strings.Builder
	if len(legs) == 0 {
		description.WriteString("No legs yet. Add at least 2 to submit.\n")
	}
	for idx, leg := range legs {
		description.WriteString(fmt.Sprintf("%d. **%s %s** (%s) — %s\n",
			idx+1, leg.Team, leg.BetType, common.FormatOdds(leg.Odds), leg.Game))
	}

	if combined, ok := oddsService.CombinedDecimalOdds(LegOdds(legs)); ok {
		description.WriteString(fmt.Sprintf("\n**Combined Odds:** %.2fx", combined))
		if american, ok := oddsService.CombinedAmericanOdds(LegOdds(legs)); ok {
			description.WriteString(fmt.Sprintf(" (%s)", common.FormatOdds(american)))
		}
		description.WriteString("\n")
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🎰 Parlay Slip",
		Description: description.String(),
		Color:       0x5865F2,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d leg(s) • minimum %d to submit", len(legs), MinParlayLegs),
		},
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Add Leg",
					Style:    discordgo.PrimaryButton,
					CustomID: fmt.Sprintf("slip_addleg_%s", sessionID),
				},
				discordgo.Button{
					Label:    "Submit Parlay",
					Style:    discordgo.SuccessButton,
					CustomID: fmt.Sprintf("slip_submit_%s", sessionID),
					Disabled: len(legs) < MinParlayLegs,
				},
				discordgo.Button{
					Label:    "Cancel",
					Style:    discordgo.DangerButton,
					CustomID: fmt.Sprintf("slip_cancel_%s", sessionID),
				},
			},
		},
	}

	return embed, components
}

// HandleSlipAddLeg opens the leg entry modal.
func HandleSlipAddLeg(s *discordgo.Session, i *discordgo.InteractionCreate, gdb *gorm.DB, customID string) error {
	sessionID := strings.TrimPrefix(customID, "slip_addleg_")
	if _, exists := GetSlip(sessionID); !exists {
		return common.RespondEphemeral(s, i, "Slip session expired. Please start over with /log-parlay.")
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			Title:    "Add Parlay Leg",
			CustomID: fmt.Sprintf("slip_leg_%s", sessionID),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "leg_sport",
						Label:       "Sport",
						Style:       discordgo.TextInputShort,
						Placeholder: "NFL, NBA, MLB...",
						Required:    true,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "leg_game",
						Label:       "Game (Away @ Home)",
						Style:       discordgo.TextInputShort,
						Placeholder: "Jets @ Bills",
						Required:    true,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID: "leg_team",
						Label:    "Team / Selection",
						Style:    discordgo.TextInputShort,
						Required: true,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "leg_bet_type",
						Label:       "Bet Type",
						Style:       discordgo.TextInputShort,
						Placeholder: "ML",
						Required:    false,
					},
				}},
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "leg_odds",
						Label:       "American Odds",
						Style:       discordgo.TextInputShort,
						Placeholder: "-110 or +150",
						Required:    true,
					},
				}},
			},
		},
	})
}

// HandleSlipLegModal appends the entered leg and re-renders the preview.
func HandleSlipLegModal(s *discordgo.Session, i *discordgo.InteractionCreate, gdb *gorm.DB, customID string) error {
	sessionID := strings.TrimPrefix(customID, "slip_leg_")
	session, exists := GetSlip(sessionID)
	if !exists {
		return common.RespondEphemeral(s, i, "Slip session expired. Please start over with /log-parlay.")
	}

	values := modalValues(i)
	oddsStr := strings.TrimPrefix(values["leg_odds"], "+")
	odds, err := strconv.Atoi(oddsStr)
	if err != nil || odds == 0 {
		return common.RespondEphemeral(s, i, "Invalid odds. Use American odds like -110 or +150.")
	}

	betType := values["leg_bet_type"]
	if betType == "" {
		betType = "ML"
	}

	session.Legs = append(session.Legs, models.ParlayLeg{
		Sport:   values["leg_sport"],
		Game:    values["leg_game"],
		Team:    values["leg_team"],
		BetType: betType,
		Odds:    odds,
	})
	StoreSlip(sessionID, session)

	embed, components := BuildSlipPreview(sessionID, session.Legs)
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

// HandleSlipSubmit asks for the stake once the slip is big enough.
func HandleSlipSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, gdb *gorm.DB, customID string) error {
	sessionID := strings.TrimPrefix(customID, "slip_submit_")
	session, exists := GetSlip(sessionID)
	if !exists {
		return common.RespondEphemeral(s, i, "Slip session expired. Please start over with /log-parlay.")
	}

	if len(session.Legs) < MinParlayLegs {
		return common.RespondEphemeral(s, i,
			fmt.Sprintf("A parlay needs at least %d legs; this slip has %d.", MinParlayLegs, len(session.Legs)))
	}

	combined, ok := oddsService.CombinedDecimalOdds(LegOdds(session.Legs))
	if !ok {
		return common.RespondEphemeral(s, i, "This slip contains an invalid leg. Cancel and start over.")
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			Title:    fmt.Sprintf("Submit Parlay (Odds: %.2fx)", combined),
			CustomID: fmt.Sprintf("slip_stake_%s", sessionID),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "slip_stake_input",
						Label:       "Stake in dollars (optional)",
						Style:       discordgo.TextInputShort,
						Placeholder: "25",
						Required:    false,
					},
				}},
			},
		},
	})
}

// HandleSlipStakeModal finalizes the parlay: combined odds are computed once
// here and frozen on the record.
func HandleSlipStakeModal(s *discordgo.Session, i *discordgo.InteractionCreate, gdb *gorm.DB, customID string) error {
	sessionID := strings.TrimPrefix(customID, "slip_stake_")
	session, exists := GetSlip(sessionID)
	if !exists {
		return common.RespondEphemeral(s, i, "Slip session expired. Please start over with /log-parlay.")
	}

	var stake decimal.NullDecimal
	if raw := strings.TrimSpace(modalValues(i)["slip_stake_input"]); raw != "" {
		value, err := decimal.NewFromString(strings.TrimPrefix(raw, "$"))
		if err != nil || value.IsNegative() {
			return common.RespondEphemeral(s, i, "Invalid stake. Enter a non-negative amount like 25 or 12.50.")
		}
		stake = decimal.NewNullDecimal(value)
	}

	combinedAmerican, ok := oddsService.CombinedAmericanOdds(LegOdds(session.Legs))
	if !ok {
		return common.RespondEphemeral(s, i, "This slip contains an invalid leg. Cancel and start over.")
	}

	user, err := common.EnsureUser(gdb, i)
	if err != nil {
		return err
	}

	parlay := models.Parlay{
		UserID:       user.DiscordID,
		Username:     user.Username,
		GuildID:      session.GuildID,
		Stake:        stake,
		CombinedOdds: combinedAmerican,
		Legs:         session.Legs,
	}
	if result := gdb.Create(&parlay); result.Error != nil {
		return result.Error
	}
	metrics.ParlaysLogged.Inc()
	CleanupSlip(sessionID)

	profit := ""
	if amount, ok := oddsService.PotentialProfit(LegOdds(parlay.Legs), parlay.Stake); ok {
		profit = amount.StringFixed(2)
	}

	embed := messageService.ParlayEmbed(parlay, profit)
	postWagerToBetChannel(s, gdb, i, nil, &parlay, embed)

	confirmation := fmt.Sprintf("Parlay logged: %d legs at %s", len(parlay.Legs), common.FormatOdds(parlay.CombinedOdds))
	if profit != "" {
		confirmation += fmt.Sprintf(" — to win $%s", profit)
	}
	return common.RespondEphemeral(s, i, confirmation)
}

// HandleSlipCancel throws the slip away.
func HandleSlipCancel(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) error {
	sessionID := strings.TrimPrefix(customID, "slip_cancel_")
	CleanupSlip(sessionID)

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    "❌ Parlay slip discarded.",
			Embeds:     []*discordgo.MessageEmbed{},
			Components: []discordgo.MessageComponent{},
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

func modalValues(i *discordgo.InteractionCreate) map[string]string {
	values := make(map[string]string)
	for _, row := range i.ModalSubmitData().Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, component := range actionsRow.Components {
			if input, ok := component.(*discordgo.TextInput); ok {
				values[input.CustomID] = input.Value
			}
		}
	}
	return values
}

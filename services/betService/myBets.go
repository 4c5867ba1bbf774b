package betService

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"betBookBot/models"
	"betBookBot/services/common"
	"betBookBot/services/oddsService"
)

// MyOpenBets shows the caller's wagers still awaiting grading.
func MyOpenBets(s *discordgo.Session, i *discordgo.InteractionCreate, gdb *gorm.DB) {
	user, err := common.EnsureUser(gdb, i)
	if err != nil {
		common.SendError(s, i, "betService.MyOpenBets", err, gdb)
		return
	}

	var bets []models.StraightBet
	if err := gdb.Where("user_id = ? AND guild_id = ? AND result = ?",
		user.DiscordID, i.GuildID, models.ResultPending).
		Order("created_at asc").Find(&bets).Error; err != nil {
		common.SendError(s, i, "betService.MyOpenBets", err, gdb)
		return
	}

	var parlays []models.Parlay
	if err := gdb.Preload("Legs").
		Where("user_id = ? AND guild_id = ? AND result = ?",
			user.DiscordID, i.GuildID, models.ResultPending).
		Order("created_at asc").Find(&parlays).Error; err != nil {
		common.SendError(s, i, "betService.MyOpenBets", err, gdb)
		return
	}

	if len(bets) == 0 && len(parlays) == 0 {
		if err := common.RespondEphemeral(s, i, "You have no open bets."); err != nil {
			common.SendError(s, i, "betService.MyOpenBets", err, gdb)
		}
		return
	}

	var response strings.Builder
	if len(bets) > 0 {
		response.WriteString(fmt.Sprintf("**Open bets (%d):**\n", len(bets)))
		for idx, bet := range bets {
			response.WriteString(fmt.Sprintf("%d. %s %s (%s) — %s",
				idx+1, bet.Team, bet.BetType, common.FormatOdds(bet.Odds), bet.Game))
			if profit, ok := oddsService.PotentialProfit([]int{bet.Odds}, bet.Stake); ok {
				response.WriteString(fmt.Sprintf(" — to win $%s", profit.StringFixed(2)))
			}
			response.WriteString("\n")
		}
	}

	if len(parlays) > 0 {
		response.WriteString(fmt.Sprintf("\n**Open parlays (%d):**\n", len(parlays)))
		for idx, parlay := range parlays {
			response.WriteString(fmt.Sprintf("%d. %d legs at %s\n",
				idx+1, len(parlay.Legs), common.FormatOdds(parlay.CombinedOdds)))
			for legIdx, leg := range parlay.Legs {
				response.WriteString(fmt.Sprintf("  %d. %s %s (%s) — %s\n",
					legIdx+1, leg.Team, leg.BetType, common.FormatOdds(leg.Odds), leg.Game))
			}
			if profit, ok := oddsService.PotentialProfit(LegOdds(parlay.Legs), parlay.Stake); ok {
				response.WriteString(fmt.Sprintf("  To win: $%s\n", profit.StringFixed(2)))
			}
		}
	}

	if err := common.RespondEphemeral(s, i, response.String()); err != nil {
		common.SendError(s, i, "betService.MyOpenBets", err, gdb)
	}
}

package betService

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"betBookBot/metrics"
	"betBookBot/models"
	"betBookBot/services/common"
	"betBookBot/services/guildService"
	"betBookBot/services/messageService"
	"betBookBot/services/oddsService"
)

// LogStraightBet handles the /log-bet command: validates the leg, stores a
// pending StraightBet, and posts it to the guild's bet channel.
func LogStraightBet(s *discordgo.Session, i *discordgo.InteractionCreate, gdb *gorm.DB) {
	options := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	for _, opt := range i.ApplicationCommandData().Options {
		options[opt.Name] = opt
	}

	odds := int(options["odds"].IntValue())
	if _, err := oddsService.AmericanToDecimal(odds); err != nil {
		if err := common.RespondEphemeral(s, i, "Odds cannot be zero. Use American odds like -110 or +150."); err != nil {
			common.SendError(s, i, "betService.LogStraightBet", err, gdb)
		}
		return
	}

	betType := "ML"
	if opt, ok := options["bet-type"]; ok && opt.StringValue() != "" {
		betType = opt.StringValue()
	}

	var stake decimal.NullDecimal
	if opt, ok := options["stake"]; ok {
		value := decimal.NewFromFloat(opt.FloatValue())
		if value.IsNegative() {
			if err := common.RespondEphemeral(s, i, "Stake cannot be negative."); err != nil {
				common.SendError(s, i, "betService.LogStraightBet", err, gdb)
			}
			return
		}
		stake = decimal.NewNullDecimal(value)
	}

	note := ""
	if opt, ok := options["note"]; ok {
		note = opt.StringValue()
	}

	user, err := common.EnsureUser(gdb, i)
	if err != nil {
		common.SendError(s, i, "betService.LogStraightBet", err, gdb)
		return
	}

	bet := models.StraightBet{
		UserID:   user.DiscordID,
		Username: user.Username,
		GuildID:  i.GuildID,
		Sport:    options["sport"].StringValue(),
		Game:     options["game"].StringValue(),
		Team:     options["team"].StringValue(),
		BetType:  betType,
		Odds:     odds,
		Stake:    stake,
		Note:     note,
	}
	if result := gdb.Create(&bet); result.Error != nil {
		common.SendError(s, i, "betService.LogStraightBet", result.Error, gdb)
		return
	}
	metrics.BetsLogged.Inc()

	profit := ""
	if amount, ok := oddsService.PotentialProfit([]int{bet.Odds}, bet.Stake); ok {
		profit = amount.StringFixed(2)
	}

	embed := messageService.StraightBetEmbed(bet, profit)
	postWagerToBetChannel(s, gdb, i, &bet, nil, embed)

	confirmation := fmt.Sprintf("Bet logged: **%s %s** (%s)", bet.Team, bet.BetType, common.FormatOdds(bet.Odds))
	if profit != "" {
		confirmation += fmt.Sprintf(" — to win $%s", profit)
	}
	if err := common.RespondEphemeral(s, i, confirmation); err != nil {
		common.SendError(s, i, "betService.LogStraightBet", err, gdb)
	}
}

// postWagerToBetChannel publishes a wager embed with reaction buttons and
// records where it landed. Exactly one of bet or parlay is non-nil.
func postWagerToBetChannel(s *discordgo.Session, gdb *gorm.DB, i *discordgo.InteractionCreate, bet *models.StraightBet, parlay *models.Parlay, embed *discordgo.MessageEmbed) {
	guild, err := guildService.GetGuildInfo(s, gdb, i.GuildID, i.ChannelID)
	if err != nil {
		common.SendError(s, nil, "betService.postWagerToBetChannel", err, gdb)
		return
	}

	channelID := guild.BetChannelID
	if channelID == "" {
		channelID = i.ChannelID
	}

	itemType := models.FeedItemBet
	var itemID uint
	if parlay != nil {
		itemType = models.FeedItemParlay
		itemID = parlay.ID
	} else {
		itemID = bet.ID
	}

	msg, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{messageService.ReactionButtons(itemType, itemID)},
	})
	if err != nil {
		common.SendError(s, nil, "betService.postWagerToBetChannel", err, gdb)
		return
	}

	if parlay != nil {
		parlay.MessageID = &msg.ID
		parlay.ChannelID = channelID
		gdb.Save(parlay)
	} else {
		bet.MessageID = &msg.ID
		bet.ChannelID = channelID
		gdb.Save(bet)
	}
}

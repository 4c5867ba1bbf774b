package services

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"betBookBot/services/betService"
	"betBookBot/services/extService"
	"betBookBot/services/feedService"
	"betBookBot/services/guildService"
)

// HandleSlashCommand routes a slash command to its handler. oddsClient is nil
// when no API key is configured; list-games degrades gracefully.
func HandleSlashCommand(s *discordgo.Session, i *discordgo.InteractionCreate, gdb *gorm.DB, oddsClient *extService.OddsClient) {
	switch i.ApplicationCommandData().Name {
	case "log-bet":
		betService.LogStraightBet(s, i, gdb)
	case "log-parlay":
		betService.StartParlaySlip(s, i, gdb)
	case "my-bets":
		betService.MyOpenBets(s, i, gdb)
	case "feed":
		feedService.ShowFeed(s, i, gdb)
	case "leaderboard":
		ShowLeaderboard(s, i, gdb)
	case "grade":
		ShowGradeMenu(s, i, gdb)
	case "list-games":
		extService.ListGames(s, i, gdb, oddsClient)
	case "set-bet-channel":
		guildService.SetBettingChannel(s, i, gdb)
	case "set-min-decisions":
		guildService.SetMinDecisions(s, i, gdb)
	}
}

func RegisterCommands(s *discordgo.Session) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "log-bet",
			Description: "Log a straight bet you placed",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "sport",
					Description: "Sport (e.g., NFL, NBA)",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
				{
					Name:        "game",
					Description: "Matchup, e.g. Bills @ Chiefs",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
				{
					Name:        "team",
					Description: "Team or side you bet on",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
				{
					Name:        "odds",
					Description: "American odds (e.g., +150 or -110)",
					Type:        discordgo.ApplicationCommandOptionInteger,
					Required:    true,
				},
				{
					Name:        "bet-type",
					Description: "ML, spread, over, under... // *Optional: Default ML",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    false,
				},
				{
					Name:        "stake",
					Description: "Dollar amount wagered // *Optional",
					Type:        discordgo.ApplicationCommandOptionNumber,
					Required:    false,
				},
				{
					Name:        "note",
					Description: "A note for the feed // *Optional",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    false,
				},
			},
		},
		{
			Name:        "log-parlay",
			Description: "Build a parlay slip leg by leg",
		},
		{
			Name:        "my-bets",
			Description: "Show your pending bets and parlays",
		},
		{
			Name:        "feed",
			Description: "Show the most recent wagers in this server",
		},
		{
			Name:        "leaderboard",
			Description: "Show the hot and cold bettors",
		},
		{
			Name:        "grade",
			Description: "🛡 Grade pending wagers as win, loss, or push - ADMIN ONLY",
		},
		{
			Name:        "list-games",
			Description: "List upcoming games and their current moneylines",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "sport",
					Description: "Which sport to list // *Optional: Default NFL",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    false,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "NFL", Value: "nfl"},
						{Name: "College Football", Value: "cfb"},
						{Name: "NBA", Value: "nba"},
						{Name: "MLB", Value: "mlb"},
						{Name: "NHL", Value: "nhl"},
					},
				},
			},
		},
		{
			Name:        "set-bet-channel",
			Description: "🛡 Sets the current channel as the feed for logged wagers - ADMIN ONLY",
		},
		{
			Name:        "set-min-decisions",
			Description: "🛡 Sets how many graded decisions the leaderboard requires - ADMIN ONLY",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "minimum",
					Description: "Graded decisions needed to rank (default 3)",
					Type:        discordgo.ApplicationCommandOptionInteger,
					Required:    true,
				},
			},
		},
	}

	registeredCommands := make([]*discordgo.ApplicationCommand, len(commands))

	for i, cmd := range commands {
		rcmd, err := s.ApplicationCommandCreate(s.State.User.ID, "", cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%v' command: %v", cmd.Name, err)
		}
		registeredCommands[i] = rcmd
	}

	return nil
}

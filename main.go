package main

import (
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"betBookBot/config"
	"betBookBot/db"
	"betBookBot/logger"
	"betBookBot/metrics"
	"betBookBot/scheduler"
	"betBookBot/services"
	"betBookBot/services/extService"
)

var (
	gdb        *gorm.DB
	oddsClient *extService.OddsClient
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()
	zap.ReplaceGlobals(zlog)

	gdb, err = db.Setup(cfg.DatabaseURL, cfg.Debug)
	if err != nil {
		zlog.Fatal("connecting to database failed", zap.Error(err))
	}
	if err := db.Migrate(gdb); err != nil {
		zlog.Fatal("migrating database failed", zap.Error(err))
	}

	if cfg.OddsAPIKey != "" {
		cache := extService.NewTTLCache(time.Duration(cfg.OddsCacheTTLMinutes) * time.Minute)
		oddsClient = extService.NewOddsClient(cfg.OddsAPIKey, cache)
	} else {
		zlog.Warn("ODDS_API_KEY not set, list-games is disabled")
	}

	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		zlog.Fatal("creating Discord session failed", zap.Error(err))
	}

	dg.AddHandler(interactionCreate)
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		err := s.UpdateGameStatus(0, "Tracking Bets!")
		if err != nil {
			return
		}
	})

	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	err = dg.Open()
	if err != nil {
		zlog.Fatal("opening Discord session failed", zap.Error(err))
	}
	defer func(dg *discordgo.Session) {
		err := dg.Close()
		if err != nil {

		}
	}(dg)

	err = services.RegisterCommands(dg)
	if err != nil {
		zlog.Fatal("registering commands failed", zap.Error(err))
	}

	scheduler.SetupCron(dg, gdb, oddsClient)

	if cfg.MetricsAddr != "" {
		go metrics.Serve(cfg.MetricsAddr, zlog)
	}

	zlog.Info("bot is running, press CTRL+C to exit")
	select {}
}

func interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		services.HandleSlashCommand(s, i, gdb, oddsClient)
	case discordgo.InteractionMessageComponent:
		services.HandleComponentInteraction(s, i, gdb)
	case discordgo.InteractionModalSubmit:
		services.HandleModalSubmit(s, i, gdb)
	}
}

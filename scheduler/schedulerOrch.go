package scheduler

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"betBookBot/models"
	"betBookBot/scheduler/scheduler_jobs"
	"betBookBot/services/extService"
)

func SetupCron(s *discordgo.Session, db *gorm.DB, oddsClient *extService.OddsClient) {
	cronService := cron.New(cron.WithSeconds())

	_, err := cronService.AddFunc("0 0 10 * * *", func() {
		// Every day at 10am
		err := scheduler_jobs.CheckPendingGrades(s, db)
		if err != nil {
			fmt.Println(err)
		}
	})

	_, err = cronService.AddFunc("0 0 12 * * 0", func() {
		// Sundays at noon
		err := scheduler_jobs.PostLeaderboards(s, db)
		if err != nil {
			fmt.Println(err)
		}
	})

	if oddsClient != nil {
		_, err = cronService.AddFunc("0 */30 * * * *", func() {
			// Every 30 minutes
			err := scheduler_jobs.WarmOddsCache(oddsClient)
			if err != nil {
				fmt.Println(err)
			}
		})
	}

	if err != nil {
		errLog := models.ErrorLog{
			GuildID: "CRON ERR",
			Message: fmt.Sprintf("%v", err),
		}
		db.Create(&errLog)
	}

	cronService.Start()
}

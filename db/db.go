package db

import (
	"fmt"
	"strings"

	"github.com/xo/dburl"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"betBookBot/models"
)

// Setup parses databaseURL and opens the matching gorm dialector. MySQL is the
// primary target; sqlserver:// URLs are accepted for deployments that already
// run on SQL Server.
func Setup(databaseURL string, debug bool) (*gorm.DB, error) {
	u, err := dburl.Parse(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing DATABASE_URL: %w", err)
	}

	logLevel := gormlogger.Warn
	if debug {
		logLevel = gormlogger.Info
	}
	gormCfg := &gorm.Config{Logger: gormlogger.Default.LogMode(logLevel)}

	var gdb *gorm.DB
	switch u.Driver {
	case "mysql":
		gdb, err = gorm.Open(mysql.Open(withMySQLOptions(u.DSN)), gormCfg)
	case "sqlserver":
		gdb, err = gorm.Open(sqlserver.Open(u.DSN), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", u.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return gdb, nil
}

// Migrate creates or updates every table the bot uses.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Guild{},
		&models.StraightBet{},
		&models.Parlay{},
		&models.ParlayLeg{},
		&models.FeedReaction{},
		&models.FeedComment{},
		&models.ErrorLog{},
	)
}

// withMySQLOptions appends the driver options gorm needs; parseTime in
// particular, since the models carry time columns.
func withMySQLOptions(dsn string) string {
	const opts = "charset=utf8mb4&parseTime=True&loc=Local"
	if strings.Contains(dsn, "?") {
		return dsn + "&" + opts
	}
	return dsn + "?" + opts
}

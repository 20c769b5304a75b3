package repo

import (
	"ers-service/internal/config"
	"ers-service/internal/model"
	"ers-service/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the match-history database. With no driver configured the
// server runs fine; history endpoints just return empty results.
func InitDB() {
	conf := config.GlobalConfig.Database
	if conf.Driver == "" || conf.DSN == "" {
		logger.Log.Info("no database configured, match history disabled")
		return
	}

	var dialector gorm.Dialector
	switch conf.Driver {
	case "postgres":
		dialector = postgres.Open(conf.DSN)
	case "sqlite":
		dialector = sqlite.Open(conf.DSN)
	default:
		logger.Log.Fatal("unsupported database driver", zap.String("driver", conf.Driver))
		return
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := DB.AutoMigrate(&model.MatchRecord{}); err != nil {
		logger.Log.Fatal("Failed to migrate database", zap.Error(err))
	}
}

package service

import (
	"context"

	"ers-service/internal/config"
	"ers-service/internal/service/history"
	"ers-service/internal/service/room"
	"ers-service/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Container struct {
	Rooms   *room.Service
	History *history.Service
}

// NewContainer wires the services. A nil db disables the history ledger;
// everything else is unaffected.
func NewContainer(cfg *config.Config, db *gorm.DB) *Container {
	c := &Container{}

	if db != nil {
		c.History = history.NewService(db)
	}

	c.Rooms = room.NewService(cfg.Game, func(summary room.MatchSummary) {
		logger.Log.Info("match finished",
			zap.String("roomCode", summary.RoomCode),
			zap.String("winner", summary.WinnerName),
			zap.Int("plays", summary.Plays),
		)
		if c.History == nil {
			return
		}
		if _, err := c.History.Record(context.Background(), summary); err != nil {
			logger.Log.Warn("failed to record match",
				zap.String("roomCode", summary.RoomCode),
				zap.Error(err),
			)
		}
	})
	return c
}

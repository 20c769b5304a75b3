package history

import (
	"context"

	"ers-service/internal/model"
	"ers-service/internal/service/room"

	"gorm.io/gorm"
)

// Service keeps the finished-match ledger. It is write-once per match; the
// engine never reads history back.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Record(ctx context.Context, summary room.MatchSummary) (model.MatchRecord, error) {
	record := model.MatchRecord{
		RoomCode:   summary.RoomCode,
		WinnerName: summary.WinnerName,
		LoserName:  summary.LoserName,
		Plays:      summary.Plays,
		StartedAt:  summary.StartedAt,
		EndedAt:    summary.EndedAt,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return model.MatchRecord{}, err
	}
	return record, nil
}

type ListResult struct {
	Total int64               `json:"total"`
	Items []model.MatchRecord `json:"items"`
}

func (s *Service) List(ctx context.Context, page, pageSize int) (ListResult, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	var result ListResult
	if err := s.db.WithContext(ctx).
		Model(&model.MatchRecord{}).
		Count(&result.Total).Error; err != nil {
		return ListResult{}, err
	}

	if result.Total > 0 {
		err := s.db.WithContext(ctx).
			Order("ended_at DESC").
			Offset((page - 1) * pageSize).
			Limit(pageSize).
			Find(&result.Items).Error
		if err != nil {
			return ListResult{}, err
		}
	}
	return result, nil
}

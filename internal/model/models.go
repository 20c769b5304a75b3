package model

import "time"

// MatchRecord is written once when a match finishes. Live match state is
// never persisted.
type MatchRecord struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomCode   string    `gorm:"index;not null" json:"roomCode"`
	WinnerName string    `gorm:"not null" json:"winnerName"`
	LoserName  string    `gorm:"not null" json:"loserName"`
	Plays      int       `json:"plays"`
	StartedAt  time.Time `json:"startedAt"`
	EndedAt    time.Time `json:"endedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// TournamentStatus is the lifecycle state of a tournament.
type TournamentStatus string

const (
	TournamentScheduled TournamentStatus = "scheduled"
	TournamentActive    TournamentStatus = "active"
	TournamentCompleted TournamentStatus = "completed"
	TournamentCancelled TournamentStatus = "cancelled"
)

// Tournament represents a scheduled competition with an entry fee and a
// structured prize pool.
type Tournament struct {
	ID                  string           `gorm:"primaryKey;type:uuid" json:"id"`
	Name                string           `gorm:"not null" json:"name"`
	Type                string           `gorm:"not null" json:"type"`
	EntryFee            int              `gorm:"default:0" json:"entryFee"`
	EntryFeeCurrency    CurrencyType     `gorm:"type:varchar(8);default:'coins'" json:"entryFeeCurrency"`
	MaxParticipants     int              `gorm:"not null" json:"maxParticipants"`
	CurrentParticipants int              `gorm:"default:0" json:"currentParticipants"`
	PrizePool           datatypes.JSON   `gorm:"not null" json:"prizePool"`
	Status              TournamentStatus `gorm:"type:varchar(16);default:'scheduled';index" json:"status"`
	StartTime           time.Time        `gorm:"not null" json:"startTime"`
	EndTime             *time.Time       `json:"endTime,omitempty"`
	Duration            int              `gorm:"not null" json:"duration"` // minutes
	Winner              string           `json:"winner,omitempty"`
	CreatedAt           time.Time        `gorm:"autoCreateTime" json:"createdAt"`
}

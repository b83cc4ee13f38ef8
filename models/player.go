package models

import (
	"time"
)

// PlayerStatus is the lifecycle state of a player account.
type PlayerStatus string

const (
	PlayerStatusActive    PlayerStatus = "active"
	PlayerStatusBanned    PlayerStatus = "banned"
	PlayerStatusSuspended PlayerStatus = "suspended"
)

// Player is the canonical player record: source of truth for balances, XP,
// ranked points and account status.
//
// Tier is stored redundantly next to RankedPoints. Every write path that
// changes RankedPoints must recompute Tier through the classifier; nothing
// else is allowed to set it.
type Player struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"not null" json:"email"`

	// Progression
	Level int `gorm:"default:1" json:"level"`
	XP    int `gorm:"default:0" json:"xp"`

	// Balances (mutated only through the currency ledger)
	Coins int `gorm:"default:0" json:"coins"`
	Gems  int `gorm:"default:0" json:"gems"`

	// Ranking
	RankedPoints int    `gorm:"default:0;index" json:"rankedPoints"`
	Tier         string `gorm:"default:'Bronze'" json:"tier"`

	// Combat record
	TotalWins   int `gorm:"default:0" json:"totalWins"`
	TotalLosses int `gorm:"default:0" json:"totalLosses"`

	Status PlayerStatus `gorm:"type:varchar(16);default:'active';index" json:"status"`

	// Link to the Unity game server identity
	UnityPlayerID     string `json:"unityPlayerId,omitempty"`
	MinLevelForRanked int    `gorm:"default:5" json:"minLevelForRanked"`

	LastActive time.Time `gorm:"autoCreateTime" json:"lastActive"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// SeasonConfig describes a ranked season. At most one season is active at a
// time; activation is enforced by the season service, not the schema.
type SeasonConfig struct {
	ID        string         `gorm:"primaryKey;type:uuid" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	StartDate time.Time      `gorm:"not null" json:"startDate"`
	EndDate   time.Time      `gorm:"not null" json:"endDate"`
	IsActive  bool           `gorm:"default:false;index" json:"isActive"`
	Rewards   datatypes.JSON `gorm:"not null" json:"rewards"` // per-tier reward table
}

// LevelReward is granted once when a player reaches Level.
type LevelReward struct {
	ID         string `gorm:"primaryKey;type:uuid" json:"id"`
	Level      int    `gorm:"uniqueIndex;not null" json:"level"`
	XPRequired int    `gorm:"not null" json:"xpRequired"`
	CoinReward int    `gorm:"default:0" json:"coinReward"`
	GemReward  int    `gorm:"default:0" json:"gemReward"`
	ItemUnlock string `json:"itemUnlock,omitempty"`
}

// DailyReward is the login streak table, keyed by day number.
type DailyReward struct {
	ID         string `gorm:"primaryKey;type:uuid" json:"id"`
	Day        int    `gorm:"uniqueIndex;not null" json:"day"`
	CoinReward int    `gorm:"default:0" json:"coinReward"`
	GemReward  int    `gorm:"default:0" json:"gemReward"`
	ItemReward string `json:"itemReward,omitempty"`
}

// Event is a time-boxed live-ops boost (xp multiplier, bonus coins, ...).
type Event struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Type        string    `gorm:"not null" json:"type"` // multiplier_xp, bonus_coins, free_gems, special_reward
	Multiplier  int       `gorm:"default:1" json:"multiplier"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `gorm:"not null" json:"startTime"`
	EndTime     time.Time `gorm:"not null" json:"endTime"`
	IsActive    bool      `gorm:"default:false;index" json:"isActive"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

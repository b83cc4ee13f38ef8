package models

import (
	"time"

	"gorm.io/datatypes"
)

// GameRoom is a joinable room configuration shown in the mobile client.
type GameRoom struct {
	ID               string       `gorm:"primaryKey;type:uuid" json:"id"`
	Name             string       `gorm:"not null" json:"name"`
	Type             string       `gorm:"not null" json:"type"` // training_single, training_double, ranked, tournament, pairing
	Description      string       `json:"description,omitempty"`
	MinLevel         int          `gorm:"default:1" json:"minLevel"`
	EntryFee         int          `gorm:"default:0" json:"entryFee"`
	EntryFeeCurrency CurrencyType `gorm:"type:varchar(8);default:'coins'" json:"entryFeeCurrency"`
	MaxPlayers       int          `gorm:"default:2" json:"maxPlayers"`
	IsActive         bool         `gorm:"default:true" json:"isActive"`
	CreatedAt        time.Time    `gorm:"autoCreateTime" json:"createdAt"`
}

// News is an announcement shown in the in-game slider, ordered by priority.
type News struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Slug      string    `gorm:"index" json:"slug"`
	Content   string    `gorm:"not null" json:"content"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Priority  int       `gorm:"default:0" json:"priority"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// XpBooster is a purchased XP multiplier. ExpiresAt is computed from Duration
// at purchase time; the expiry worker deactivates boosters past it.
type XpBooster struct {
	ID          string     `gorm:"primaryKey;type:uuid" json:"id"`
	PlayerID    string     `gorm:"not null;index" json:"playerId"`
	Multiplier  int        `gorm:"default:2" json:"multiplier"`
	Duration    int        `gorm:"default:7" json:"duration"`     // days
	Price       int        `gorm:"default:10000" json:"price"`    // rupiah
	IsActive    bool       `gorm:"default:true;index" json:"isActive"`
	PurchasedAt time.Time  `gorm:"autoCreateTime" json:"purchasedAt"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

// PairingService is a licensed matchmaking partner listing.
type PairingService struct {
	ID          string         `gorm:"primaryKey;type:uuid" json:"id"`
	ServiceName string         `gorm:"not null" json:"serviceName"`
	Description string         `json:"description,omitempty"`
	LicenseCert string         `json:"licenseCert,omitempty"`
	IsVerified  bool           `gorm:"default:false" json:"isVerified"`
	ContactInfo datatypes.JSON `json:"contactInfo,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}

package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IDs are generated application-side so the same models work on any
// database backend.

func assignID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func (m *Player) BeforeCreate(*gorm.DB) error              { assignID(&m.ID); return nil }
func (m *CurrencyTransaction) BeforeCreate(*gorm.DB) error { assignID(&m.ID); return nil }
func (m *PaymentTransaction) BeforeCreate(*gorm.DB) error  { assignID(&m.ID); return nil }
func (m *AntiCheatLog) BeforeCreate(*gorm.DB) error        { assignID(&m.ID); return nil }
func (m *Tournament) BeforeCreate(*gorm.DB) error          { assignID(&m.ID); return nil }
func (m *SeasonConfig) BeforeCreate(*gorm.DB) error        { assignID(&m.ID); return nil }
func (m *LevelReward) BeforeCreate(*gorm.DB) error         { assignID(&m.ID); return nil }
func (m *DailyReward) BeforeCreate(*gorm.DB) error         { assignID(&m.ID); return nil }
func (m *Event) BeforeCreate(*gorm.DB) error               { assignID(&m.ID); return nil }
func (m *GameRoom) BeforeCreate(*gorm.DB) error            { assignID(&m.ID); return nil }
func (m *News) BeforeCreate(*gorm.DB) error                { assignID(&m.ID); return nil }
func (m *XpBooster) BeforeCreate(*gorm.DB) error           { assignID(&m.ID); return nil }
func (m *PairingService) BeforeCreate(*gorm.DB) error      { assignID(&m.ID); return nil }

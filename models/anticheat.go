package models

import (
	"time"

	"gorm.io/datatypes"
)

// Detection types produced by the game server's anti-cheat pipeline.
type DetectionType string

const (
	DetectionAFK               DetectionType = "afk"
	DetectionSuspiciousPattern DetectionType = "suspicious_pattern"
	DetectionTeamAbuse         DetectionType = "team_abuse"
	DetectionManualReview      DetectionType = "manual_review"
)

// RiskLevel grades how severe a detection is.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// AntiCheatStatus is the review lifecycle of a log entry.
// under_review is the only non-terminal state.
type AntiCheatStatus string

const (
	AntiCheatUnderReview AntiCheatStatus = "under_review"
	AntiCheatResolved    AntiCheatStatus = "resolved"
	AntiCheatIgnored     AntiCheatStatus = "ignored"
)

// Actions an admin can record when closing a review.
type AntiCheatAction string

const (
	ActionWarning  AntiCheatAction = "warning"
	ActionBanned   AntiCheatAction = "banned"
	ActionReviewed AntiCheatAction = "reviewed"
)

// AntiCheatLog is one detection awaiting (or past) admin review.
type AntiCheatLog struct {
	ID            string           `gorm:"primaryKey;type:uuid" json:"id"`
	PlayerID      string           `gorm:"not null;index" json:"playerId"`
	DetectionType DetectionType    `gorm:"type:varchar(32);not null" json:"detectionType"`
	RiskLevel     RiskLevel        `gorm:"type:varchar(8);not null" json:"riskLevel"`
	Status        AntiCheatStatus  `gorm:"type:varchar(16);default:'under_review';index" json:"status"`
	Action        *AntiCheatAction `gorm:"type:varchar(16)" json:"action,omitempty"`
	Details       datatypes.JSON   `json:"details,omitempty"`
	CreatedAt     time.Time        `gorm:"autoCreateTime;index" json:"createdAt"`
}

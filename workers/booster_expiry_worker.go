package workers

import (
	"context"
	"time"

	"domino-admin-system/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PollBoosterExpiry periodically deactivates XP boosters whose expiry has
// passed. Runs until the context is cancelled.
func PollBoosterExpiry(ctx context.Context, db *gorm.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.WithField("interval", interval).Info("booster expiry worker started")

	for {
		select {
		case <-ctx.Done():
			log.Info("booster expiry worker stopped")
			return
		case <-ticker.C:
			expireBoosters(db)
		}
	}
}

func expireBoosters(db *gorm.DB) {
	res := db.Model(&models.XpBooster{}).
		Where("is_active = ? AND expires_at IS NOT NULL AND expires_at <= ?", true, time.Now()).
		Update("is_active", false)
	if res.Error != nil {
		log.WithError(res.Error).Error("failed to expire boosters")
		return
	}
	if res.RowsAffected > 0 {
		log.WithField("count", res.RowsAffected).Info("expired xp boosters")
	}
}

package services

import (
	"testing"

	"domino-admin-system/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema. Each test
// gets its own so tests stay independent.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.Player{},
		&models.CurrencyTransaction{},
		&models.PaymentTransaction{},
		&models.AntiCheatLog{},
		&models.Tournament{},
		&models.SeasonConfig{},
		&models.LevelReward{},
		&models.DailyReward{},
		&models.Event{},
		&models.GameRoom{},
		&models.News{},
		&models.XpBooster{},
		&models.PairingService{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// seedPlayer creates a player through the production create path and then
// force-sets the balance and points fields directly, bypassing the ledger.
func seedPlayer(t *testing.T, db *gorm.DB, username string, coins, gems, rankedPoints int) *models.Player {
	t.Helper()

	players := NewPlayerService(db)
	p, err := players.CreatePlayer(CreatePlayerInput{
		Username: username,
		Email:    username + "@example.com",
	})
	if err != nil {
		t.Fatalf("seed player %s: %v", username, err)
	}

	p.Coins = coins
	p.Gems = gems
	p.RankedPoints = rankedPoints
	p.Tier = ClassifyTier(rankedPoints)
	if err := db.Save(p).Error; err != nil {
		t.Fatalf("seed player %s: %v", username, err)
	}
	return p
}

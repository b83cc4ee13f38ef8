package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"domino-admin-system/config"
	"domino-admin-system/handlers"
	"domino-admin-system/middleware"
	"domino-admin-system/models"
	"domino-admin-system/services"
	"domino-admin-system/utils"
	"domino-admin-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, reading environment variables directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	if level, err := log.ParseLevel(cfg.AppLogLevel); err == nil {
		log.SetLevel(level)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	if err := db.AutoMigrate(
		&models.Player{},
		&models.CurrencyTransaction{},
		&models.Tournament{},
		&models.AntiCheatLog{},
		&models.PaymentTransaction{},
		&models.SeasonConfig{},
		&models.LevelReward{},
		&models.DailyReward{},
		&models.Event{},
		&models.GameRoom{},
		&models.News{},
		&models.XpBooster{},
		&models.PairingService{},
	); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	if cfg.R2Enabled() {
		if err := utils.InitR2(cfg.CloudflareAccountID, cfg.R2AccessKeyID, cfg.R2AccessKeySecret, cfg.R2BucketName, cfg.CDNBaseURL); err != nil {
			log.WithError(err).Fatal("failed to initialize R2 client")
		}
		log.Info("✅ R2 object storage configured")
	} else {
		if err := utils.EnsureUploadDir(); err != nil {
			log.WithError(err).Fatal("failed to ensure upload dir")
		}
		log.Info("R2 not configured, uploads go to local ./uploads")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 32 * 1024 * 1024, // 32MB, enough for payment proofs and news images
	})

	allowedOrigins := make([]string, 0)
	for _, origin := range strings.Split(cfg.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			allowedOrigins = append(allowedOrigins, origin)
		}
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(allowedOrigins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Admin-ID",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	app.Use(middleware.AdminContextMiddleware(cfg.DefaultAdminID))

	currencyService := services.NewCurrencyService(db, cfg.AllowOverdraft)
	playerService := services.NewPlayerService(db)
	paymentService := services.NewPaymentService(db, currencyService)
	tournamentService := services.NewTournamentService(db, currencyService)
	moderationService := services.NewModerationService(db)
	seasonService := services.NewSeasonService(db)
	contentService := services.NewContentService(db)
	statsService := services.NewStatsService(db, cfg.CleanGamesPercentage, cfg.AvgResponseTime)

	handlers.SetupPlayerRoutes(app, playerService)
	handlers.SetupCurrencyRoutes(app, currencyService)
	handlers.SetupDashboardRoutes(app, statsService, cfg.LeaderboardLimit)
	handlers.SetupTournamentRoutes(app, tournamentService)
	handlers.SetupModerationRoutes(app, moderationService)
	handlers.SetupPaymentRoutes(app, paymentService)
	handlers.SetupSeasonRoutes(app, seasonService)
	handlers.SetupContentRoutes(app, contentService)

	app.Static("/uploads", "./uploads")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tournamentService.StartLifecycleScheduler(seasonService)
	go workers.PollBoosterExpiry(ctx, db, 1*time.Minute)

	if cfg.GameServerURL != "" {
		syncClient := workers.NewPlayerSyncClient(db, cfg.GameServerURL, cfg.GameServerToken)
		go workers.PollPlayers(ctx, syncClient, time.Duration(cfg.SyncIntervalSec)*time.Second)
		log.Info("✅ Player sync worker running")
	}

	go func() {
		if err := app.Listen(cfg.Addr()); err != nil {
			log.WithError(err).Error("server error")
		}
	}()

	log.Infof("✅ Server running on http://%s", cfg.Addr())
	log.Infof("✅ CORS configured for origins: %s", strings.Join(allowedOrigins, ","))
	log.Infof("✅ Overdraft policy: allow=%t", cfg.AllowOverdraft)

	<-ctx.Done()
	log.Info("shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
}

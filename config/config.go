// Package config loads the admin backend configuration from environment
// variables via envconfig. godotenv is loaded by main before Load runs.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting of the service.
type Config struct {
	// --- Server ---
	Host           string `envconfig:"HOST" default:"127.0.0.1"`
	Port           int    `envconfig:"PORT" default:"5300"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	AppLogLevel    string `envconfig:"APP_LOG_LEVEL" default:"info"`

	// --- Database ---
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// --- Admin (auth is handled upstream, this is only a fallback identity) ---
	DefaultAdminID string `envconfig:"DEFAULT_ADMIN_ID" default:"admin"`

	// --- Economy ---
	// When false, a currency debit that would drive a balance below zero is
	// rejected instead of producing an overdraft.
	AllowOverdraft bool `envconfig:"ALLOW_OVERDRAFT" default:"false"`

	// --- Leaderboard ---
	LeaderboardLimit int `envconfig:"LEADERBOARD_LIMIT" default:"100"`

	// --- Monitoring placeholders fed by the external metrics pipeline ---
	CleanGamesPercentage float64 `envconfig:"CLEAN_GAMES_PERCENTAGE" default:"99.2"`
	AvgResponseTime      string  `envconfig:"AVG_RESPONSE_TIME" default:"0.3s"`

	// --- Object storage (R2). Uploads fall back to ./uploads when unset. ---
	CloudflareAccountID string `envconfig:"CLOUDFLARE_ACCOUNT_ID"`
	R2AccessKeyID       string `envconfig:"R2_ACCESS_KEY_ID"`
	R2AccessKeySecret   string `envconfig:"R2_ACCESS_KEY_SECRET"`
	R2BucketName        string `envconfig:"R2_BUCKET_NAME"`
	CDNBaseURL          string `envconfig:"CDN_BASE_URL"`

	// --- Game server sync (worker disabled when URL is empty) ---
	GameServerURL   string `envconfig:"GAME_SERVER_URL"`
	GameServerToken string `envconfig:"GAME_SERVER_TOKEN"`
	SyncIntervalSec int    `envconfig:"SYNC_INTERVAL_SECONDS" default:"60"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}

// Addr returns the host:port pair the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// R2Enabled reports whether object storage credentials are configured.
func (c *Config) R2Enabled() bool {
	return c.CloudflareAccountID != "" && c.R2AccessKeyID != "" &&
		c.R2AccessKeySecret != "" && c.R2BucketName != ""
}

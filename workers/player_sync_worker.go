package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"domino-admin-system/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PlayerSyncClient pulls activity snapshots (last seen, win/loss counters)
// from the Unity game server and folds them into local player records.
type PlayerSyncClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	DB         *gorm.DB
}

// playerSnapshot mirrors the game server's activity feed payload.
type playerSnapshot struct {
	UnityPlayerID string    `json:"unity_player_id"`
	LastActive    time.Time `json:"last_active"`
	TotalWins     int       `json:"total_wins"`
	TotalLosses   int       `json:"total_losses"`
}

func NewPlayerSyncClient(db *gorm.DB, baseURL, token string) *PlayerSyncClient {
	return &PlayerSyncClient{
		BaseURL: baseURL,
		Token:   token,
		DB:      db,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetChangedPlayers fetches snapshots for players active since the given
// time.
func (c *PlayerSyncClient) GetChangedPlayers(ctx context.Context, since time.Time) ([]playerSnapshot, error) {
	u, err := url.Parse(fmt.Sprintf("%s/api/v1/players/activity", c.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("since", since.UTC().Format(time.RFC3339))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Service-Token", c.Token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call game server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("game server returned status %d: %s", resp.StatusCode, string(body))
	}

	var response struct {
		Players []playerSnapshot `json:"players"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode game server response: %w", err)
	}
	return response.Players, nil
}

// PollPlayers runs the sync loop until the context is cancelled.
func PollPlayers(ctx context.Context, client *PlayerSyncClient, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.WithField("interval", interval).Info("player sync worker started")
	lastSync := time.Now().Add(-interval)

	for {
		select {
		case <-ctx.Done():
			log.Info("player sync worker stopped")
			return
		case <-ticker.C:
			since := lastSync
			lastSync = time.Now()

			snapshots, err := client.GetChangedPlayers(ctx, since)
			if err != nil {
				log.WithError(err).Warn("player sync fetch failed")
				continue
			}
			if len(snapshots) == 0 {
				continue
			}
			client.apply(snapshots)
		}
	}
}

func (c *PlayerSyncClient) apply(snapshots []playerSnapshot) {
	synced := 0
	for _, snap := range snapshots {
		if snap.UnityPlayerID == "" {
			continue
		}
		res := c.DB.Model(&models.Player{}).
			Where("unity_player_id = ?", snap.UnityPlayerID).
			Updates(map[string]any{
				"last_active":  snap.LastActive,
				"total_wins":   snap.TotalWins,
				"total_losses": snap.TotalLosses,
			})
		if res.Error != nil {
			log.WithError(res.Error).WithField("unity_player_id", snap.UnityPlayerID).
				Error("failed to apply player snapshot")
			continue
		}
		synced += int(res.RowsAffected)
	}
	if synced > 0 {
		log.WithField("count", synced).Info("player snapshots applied")
	}
}

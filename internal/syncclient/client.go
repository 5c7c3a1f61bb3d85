// Package syncclient talks to the remote stats endpoint. All calls are
// best-effort: the reading experience never depends on the network.
package syncclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mrlokans/quran-companion/internal/entities"
	"github.com/mrlokans/quran-companion/internal/stats"
)

const defaultTimeout = 10 * time.Second

// Client pushes and pulls stats snapshots for one device.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a sync client for the given endpoint base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// pushPayload is the flat wire format the endpoint expects.
type pushPayload struct {
	DeviceID        string `json:"device_id"`
	TotalVersesRead int    `json:"total_verses_read"`
	SurahsVisited   int    `json:"surahs_visited"`
	FavoritesCount  int    `json:"favorites_count"`
	ReadingStreak   int    `json:"reading_streak"`
	TodayVersesRead int    `json:"today_verses_read"`
	WeekVersesRead  int    `json:"week_verses_read"`
	ProgressPercent int    `json:"progress_percent"`
	LastReadSurah   *uint  `json:"last_read_surah"`
	LastReadVerse   *int   `json:"last_read_verse"`
}

type pushResponse struct {
	Success bool `json:"success"`
}

type pullResponse struct {
	Found bool                  `json:"found"`
	Stats *entities.DeviceStats `json:"stats"`
}

// Push uploads the snapshot for the device. lastRead may carry nil fields
// when no reading position was saved yet.
func (c *Client) Push(ctx context.Context, deviceID string, snap stats.Snapshot, lastReadSurah *uint, lastReadVerse *int) error {
	payload := pushPayload{
		DeviceID:        deviceID,
		TotalVersesRead: snap.TotalVersesRead,
		SurahsVisited:   snap.SurahsVisited,
		FavoritesCount:  snap.FavoritesCount,
		ReadingStreak:   snap.ReadingStreak,
		TodayVersesRead: snap.TodayVersesRead,
		WeekVersesRead:  snap.WeekVersesRead,
		ProgressPercent: snap.ProgressPercent,
		LastReadSurah:   lastReadSurah,
		LastReadVerse:   lastReadVerse,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode sync payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sync", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sync request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sync request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sync endpoint returned %d: %s", resp.StatusCode, raw)
	}

	var result pushResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode sync response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("sync endpoint rejected the payload")
	}
	return nil
}

// Pull fetches the remote snapshot for the device. A device the endpoint has
// never seen returns (nil, nil).
func (c *Client) Pull(ctx context.Context, deviceID string) (*entities.DeviceStats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stats/"+deviceID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build stats request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stats request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats endpoint returned %d", resp.StatusCode)
	}

	var result pullResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode stats response: %w", err)
	}
	if !result.Found {
		return nil, nil
	}
	return result.Stats, nil
}

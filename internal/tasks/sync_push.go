package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/quran-companion/internal/settingsstore"
	"github.com/mrlokans/quran-companion/internal/stats"
	"github.com/mrlokans/quran-companion/internal/syncclient"
)

// SyncPushTask uploads the current stats snapshot to the remote endpoint.
// At most one attempt per enqueue: a failed push is logged and dropped, the
// next app-background transition enqueues a fresh one.
type SyncPushTask struct {
	Reason string `json:"reason"`
}

// Config returns the queue configuration for sync push tasks.
func (t SyncPushTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "sync_push",
		MaxAttempts: 1,
		Timeout:     30 * time.Second,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// SyncPushProcessor creates a processor function for SyncPushTask.
func SyncPushProcessor(engine *stats.Engine, store *settingsstore.SettingsStore, client *syncclient.Client) backlite.QueueProcessor[SyncPushTask] {
	return func(ctx context.Context, task SyncPushTask) error {
		if client == nil {
			return fmt.Errorf("sync client not configured")
		}

		deviceID, err := store.EnsureDeviceID()
		if err != nil {
			return fmt.Errorf("device id: %w", err)
		}

		snap := engine.Snapshot()

		var lastSurah *uint
		var lastVerse *int
		if pos, err := store.GetLastRead(); err == nil && pos != nil {
			lastSurah = &pos.SurahID
			lastVerse = &pos.VerseNumber
		}

		if err := client.Push(ctx, deviceID, snap, lastSurah, lastVerse); err != nil {
			return fmt.Errorf("push (%s): %w", task.Reason, err)
		}

		if err := store.SetSyncLastAt(time.Now()); err != nil {
			log.Printf("[TASK] Sync push succeeded but recording timestamp failed: %v", err)
		}

		log.Printf("[TASK] Synced stats for device %s (%s): %d verses read, streak %d",
			deviceID, task.Reason, snap.TotalVersesRead, snap.ReadingStreak)
		return nil
	}
}

// NewSyncPushQueue creates a backlite queue for sync push tasks.
func NewSyncPushQueue(engine *stats.Engine, store *settingsstore.SettingsStore, client *syncclient.Client) backlite.Queue {
	return backlite.NewQueue(SyncPushProcessor(engine, store, client))
}

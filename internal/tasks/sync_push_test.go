package tasks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/quran-companion/internal/database"
	favoritesdb "github.com/mrlokans/quran-companion/internal/database/favorites"
	"github.com/mrlokans/quran-companion/internal/database/history"
	"github.com/mrlokans/quran-companion/internal/database/settings"
	"github.com/mrlokans/quran-companion/internal/settingsstore"
	"github.com/mrlokans/quran-companion/internal/stats"
	"github.com/mrlokans/quran-companion/internal/syncclient"
)

func TestNewClient(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(dbPath, cfg)
	require.NoError(t, err)
	require.NotNil(t, client)

	// The queue lives in a sidecar database next to the main one
	tasksDBPath := filepath.Join(tmpDir, "test-tasks.db")
	_, err = os.Stat(tasksDBPath)
	assert.NoError(t, err, "tasks database should be created")

	err = client.Close()
	assert.NoError(t, err)
}

func TestClientStartStop(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(dbPath, cfg)
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go client.Start(ctx)
	time.Sleep(50 * time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()

	success := client.Stop(stopCtx)
	assert.True(t, success, "stop should succeed gracefully")
}

func TestSyncPushTaskConfig(t *testing.T) {
	cfg := SyncPushTask{Reason: "background"}.Config()

	assert.Equal(t, "sync_push", cfg.Name)
	assert.Equal(t, 1, cfg.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	require.NotNil(t, cfg.Retention)
	assert.Equal(t, 24*time.Hour, cfg.Retention.Duration)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 15*time.Minute, cfg.ReleaseAfter)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
	assert.Equal(t, 24*time.Hour, cfg.RetentionDuration)
}

func TestSyncPushTask_PushesCurrentSnapshot(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "app.db")

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	historyRepo := history.NewRepository(db.DB)
	store := settingsstore.New(settings.NewRepository(db.DB))
	engine := stats.NewEngine(historyRepo, favoritesdb.NewRepository(db.DB))

	require.NoError(t, historyRepo.Record(2, 255))
	require.NoError(t, store.SetLastRead(settingsstore.ReadingPosition{
		SurahID:     2,
		VerseNumber: 255,
		Timestamp:   time.Now().UnixMilli(),
	}))

	received := make(chan map[string]any, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		received <- body
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	cfg := DefaultConfig()
	cfg.Workers = 1

	taskClient, err := NewClient(dbPath, cfg)
	require.NoError(t, err)
	defer taskClient.Close()

	taskClient.Register(NewSyncPushQueue(engine, store, syncclient.NewClient(server.URL, 5*time.Second)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go taskClient.Start(ctx)

	ids, err := taskClient.Add(SyncPushTask{Reason: "background"}).Save()
	require.NoError(t, err)
	require.Len(t, ids, 1)

	select {
	case body := <-received:
		assert.NotEmpty(t, body["device_id"])
		assert.Equal(t, float64(1), body["total_verses_read"])
		assert.Equal(t, float64(1), body["today_verses_read"])
		assert.Equal(t, float64(1), body["reading_streak"])
		assert.Equal(t, float64(2), body["last_read_surah"])
		assert.Equal(t, float64(255), body["last_read_verse"])
	case <-time.After(5 * time.Second):
		t.Fatal("push was not received within timeout")
	}

	// The processor records the push timestamp after the upload succeeds
	assert.Eventually(t, func() bool {
		return store.GetSyncLastAt() != nil
	}, 2*time.Second, 25*time.Millisecond)
}

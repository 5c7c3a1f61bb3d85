package remote

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/quran-companion/internal/entities"
)

func setupServer(t *testing.T) (*gin.Engine, *Repository, func()) {
	gin.SetMode(gin.TestMode)

	dbPath := "./test_remote_" + t.Name() + ".db"
	db, err := OpenDatabase(dbPath)
	require.NoError(t, err)

	repo := NewRepository(db)
	router := NewRouter(repo)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}

	return router, repo, cleanup
}

func postSync(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sync", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSync_UpsertRoundTrip(t *testing.T) {
	router, _, cleanup := setupServer(t)
	defer cleanup()

	w := postSync(router, `{"device_id":"dev-1","total_verses_read":50,"reading_streak":3,"last_read_surah":2,"last_read_verse":255}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stats/dev-1", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Found bool `json:"found"`
		Stats struct {
			DeviceID        string `json:"device_id"`
			TotalVersesRead int    `json:"total_verses_read"`
			LastReadSurah   *uint  `json:"last_read_surah"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Found)
	assert.Equal(t, "dev-1", resp.Stats.DeviceID)
	assert.Equal(t, 50, resp.Stats.TotalVersesRead)
	require.NotNil(t, resp.Stats.LastReadSurah)
	assert.Equal(t, uint(2), *resp.Stats.LastReadSurah)
}

func TestSync_SecondPushReplacesRow(t *testing.T) {
	router, repo, cleanup := setupServer(t)
	defer cleanup()

	postSync(router, `{"device_id":"dev-1","total_verses_read":10}`)
	postSync(router, `{"device_id":"dev-1","total_verses_read":25}`)

	stats, err := repo.Get("dev-1")
	require.NoError(t, err)
	assert.Equal(t, 25, stats.TotalVersesRead)

	count, err := repo.DeviceCount()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSync_MissingDeviceID(t *testing.T) {
	router, repo, cleanup := setupServer(t)
	defer cleanup()

	w := postSync(router, `{"total_verses_read":10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "device_id required")

	count, err := repo.DeviceCount()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestSync_InvalidJSON(t *testing.T) {
	router, _, cleanup := setupServer(t)
	defer cleanup()

	w := postSync(router, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStats_UnknownDevice(t *testing.T) {
	router, _, cleanup := setupServer(t)
	defer cleanup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stats/never-seen", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"found":false}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	router, _, cleanup := setupServer(t)
	defer cleanup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	router, _, cleanup := setupServer(t)
	defer cleanup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPruneStale(t *testing.T) {
	_, repo, cleanup := setupServer(t)
	defer cleanup()

	require.NoError(t, repo.Upsert(&entities.DeviceStats{DeviceID: "old"}))
	require.NoError(t, repo.Upsert(&entities.DeviceStats{DeviceID: "fresh"}))

	// Backdate one row
	err := repo.db.Model(&entities.DeviceStats{}).
		Where("device_id = ?", "old").
		Update("last_sync", time.Now().AddDate(0, 0, -100)).Error
	require.NoError(t, err)

	removed, err := repo.PruneStale(time.Now().AddDate(0, 0, -90))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.Get("old")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = repo.Get("fresh")
	assert.NoError(t, err)
}

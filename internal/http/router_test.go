package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/quran-companion/internal/config"
	"github.com/mrlokans/quran-companion/internal/database"
	"github.com/mrlokans/quran-companion/internal/database/corpus"
	favoritesdb "github.com/mrlokans/quran-companion/internal/database/favorites"
	"github.com/mrlokans/quran-companion/internal/database/history"
	"github.com/mrlokans/quran-companion/internal/database/settings"
	"github.com/mrlokans/quran-companion/internal/dataset"
	"github.com/mrlokans/quran-companion/internal/favorites"
	"github.com/mrlokans/quran-companion/internal/settingsstore"
	"github.com/mrlokans/quran-companion/internal/stats"
	"github.com/mrlokans/quran-companion/internal/tasks"
)

func setupRouter(t *testing.T) (*gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	demo := dataset.Demo()
	require.NoError(t, db.EnsureCorpus(demo))

	favService := favorites.NewService(favoritesdb.NewRepository(db.DB))
	store := settingsstore.New(settings.NewRepository(db.DB))
	historyRepo := history.NewRepository(db.DB)

	router := NewRouter(RouterConfig{
		Database:          db,
		Dataset:           demo,
		SettingsStore:     store,
		CorpusStore:       corpus.NewRepository(db.DB),
		ReadingLog:        historyRepo,
		FavouritesService: favService,
		FavouritesLister:  favoritesdb.NewRepository(db.DB),
		FavouritesReload:  favService,
		StatsEngine:       stats.NewEngine(historyRepo, favoritesdb.NewRepository(db.DB)),
		DefaultReciter:    config.DefaultReciterID,
		Version:           "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}

	return router, cleanup
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func TestListSurahs(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	w := doJSON(router, http.MethodGet, "/api/surahs", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total  int `json:"total"`
		Surahs []struct {
			ID           uint   `json:"id"`
			NamePhonetic string `json:"name_phonetic"`
		} `json:"surahs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, uint(1), resp.Surahs[0].ID)
}

func TestGetSurah_WithAnnotatedVerses(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	w := doJSON(router, http.MethodGet, "/api/surahs/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Verses []struct {
			VerseNumber int  `json:"verse_number"`
			Juz         int  `json:"juz"`
			Hizb        int  `json:"hizb"`
			Favorite    bool `json:"favorite"`
		} `json:"verses"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Verses, 7)
	assert.Equal(t, 1, resp.Verses[0].Juz)
	assert.Equal(t, 1, resp.Verses[0].Hizb)
	assert.False(t, resp.Verses[0].Favorite)
}

func TestGetSurah_NotFound(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	w := doJSON(router, http.MethodGet, "/api/surahs/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecordRead_AdvancesLastRead(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	w := doJSON(router, http.MethodPost, "/api/reading", `{"surah_id":1,"verse_number":3}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/reading/last", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Found    bool `json:"found"`
		Juz      int  `json:"juz"`
		LastRead struct {
			SurahID     uint `json:"surahId"`
			VerseNumber int  `json:"verseNumber"`
		} `json:"last_read"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Found)
	assert.Equal(t, uint(1), resp.LastRead.SurahID)
	assert.Equal(t, 3, resp.LastRead.VerseNumber)
	assert.Equal(t, 1, resp.Juz)
}

func TestGetLastRead_EmptyDatabase(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	w := doJSON(router, http.MethodGet, "/api/reading/last", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"found":false}`, w.Body.String())
}

func TestRecordRead_Validation(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	w := doJSON(router, http.MethodPost, "/api/reading", `{"verse_number":3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/reading", `{"surah_id":115,"verse_number":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecentHistory(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	doJSON(router, http.MethodPost, "/api/reading", `{"surah_id":1,"verse_number":1}`)
	doJSON(router, http.MethodPost, "/api/reading", `{"surah_id":1,"verse_number":2}`)

	w := doJSON(router, http.MethodGet, "/api/reading/recent", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Total   int64 `json:"total"`
		Entries []struct {
			SurahID     uint   `json:"surah_id"`
			VerseNumber int    `json:"verse_number"`
			SurahNameFr string `json:"surah_name_fr"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Total)
	require.Len(t, resp.Entries, 2)
	assert.NotEmpty(t, resp.Entries[0].SurahNameFr)
}

func TestToggleFavourite_RoundTrip(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	w := doJSON(router, http.MethodPost, "/api/verses/1/favourite", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"favorite":true,"rolled_back":false}`, w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/favourites/count", "")
	assert.JSONEq(t, `{"count":1}`, w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/favourites", "")
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Equal(t, 1, listResp.Total)

	w = doJSON(router, http.MethodPost, "/api/verses/1/favourite", "")
	assert.JSONEq(t, `{"favorite":false,"rolled_back":false}`, w.Body.String())
}

func TestStats_ReflectsActivity(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	doJSON(router, http.MethodPost, "/api/reading", `{"surah_id":1,"verse_number":1}`)
	doJSON(router, http.MethodPost, "/api/reading", `{"surah_id":1,"verse_number":1}`)
	doJSON(router, http.MethodPost, "/api/reading", `{"surah_id":1,"verse_number":2}`)
	doJSON(router, http.MethodPost, "/api/verses/3/favourite", "")

	w := doJSON(router, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Stats struct {
			TotalVersesRead int `json:"total_verses_read"`
			TodayVersesRead int `json:"today_verses_read"`
			SurahsVisited   int `json:"surahs_visited"`
			FavoritesCount  int `json:"favorites_count"`
			ReadingStreak   int `json:"reading_streak"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Stats.TotalVersesRead)
	assert.Equal(t, 2, resp.Stats.TodayVersesRead)
	assert.Equal(t, 1, resp.Stats.SurahsVisited)
	assert.Equal(t, 1, resp.Stats.FavoritesCount)
	assert.Equal(t, 1, resp.Stats.ReadingStreak)
}

func TestDisplaySettings_RoundTrip(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	w := doJSON(router, http.MethodGet, "/api/settings/display", "")
	require.Equal(t, http.StatusOK, w.Code)
	var ds settingsstore.DisplaySettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ds))
	assert.True(t, ds.ShowArabic)
	assert.Equal(t, config.DefaultReciterID, ds.ReciterID)

	w = doJSON(router, http.MethodPut, "/api/settings/display",
		`{"show_arabic":true,"show_phonetic":false,"show_translation":true,"theme":"sepia","reciter_id":"ar.husary"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/settings/display", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ds))
	assert.False(t, ds.ShowPhonetic)
	assert.Equal(t, "sepia", ds.Theme)
	assert.Equal(t, "ar.husary", ds.ReciterID)
}

func TestDisplaySettings_RejectsUnknownReciter(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	w := doJSON(router, http.MethodPut, "/api/settings/display", `{"reciter_id":"ar.nobody"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerseAudio_UsesStoredPreference(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	w := doJSON(router, http.MethodGet, "/api/audio/2/255", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alafasy_128kbps/002255.mp3")

	w = doJSON(router, http.MethodGet, "/api/audio/2/255?reciter=ar.husary", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Husary_128kbps/002255.mp3")

	w = doJSON(router, http.MethodGet, "/api/audio/2/255?reciter=ar.nobody", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLifecycleBackground_SyncDisabled(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	w := doJSON(router, http.MethodPost, "/api/lifecycle/background", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sync disabled")

	w = doJSON(router, http.MethodGet, "/api/lifecycle/tasks/abc", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLifecycleBackground_EnqueuesOnePushPerTransition(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := tasks.DefaultConfig()
	cfg.Workers = 1
	taskClient, err := tasks.NewClient(filepath.Join(t.TempDir(), "app.db"), cfg)
	require.NoError(t, err)
	defer taskClient.Close()

	lc := NewLifecycleController(taskClient, taskClient)
	router := gin.New()
	router.POST("/api/lifecycle/background", lc.Background)
	router.GET("/api/lifecycle/tasks/:id", lc.GetTaskStatus)

	enqueue := func() string {
		w := doJSON(router, http.MethodPost, "/api/lifecycle/background", "")
		require.Equal(t, http.StatusAccepted, w.Code)

		var resp struct {
			Data struct {
				TaskIDs []string `json:"task_ids"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data.TaskIDs, 1)
		return resp.Data.TaskIDs[0]
	}

	first := enqueue()

	// The queue was never started, so the task sits pending
	w := doJSON(router, http.MethodGet, "/api/lifecycle/tasks/"+first, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)

	w = doJSON(router, http.MethodGet, "/api/lifecycle/tasks/never-saved", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"not_found"`)

	// Each transition queues exactly one push
	second := enqueue()
	assert.NotEqual(t, first, second)
}

func TestAdminReset_WipesUserData(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	doJSON(router, http.MethodPost, "/api/verses/1/favourite", "")
	doJSON(router, http.MethodPost, "/api/reading", `{"surah_id":1,"verse_number":1}`)

	w := doJSON(router, http.MethodPost, "/api/admin/reset", `{"wipe_user_data":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/favourites/count", "")
	assert.JSONEq(t, `{"count":0}`, w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/surahs", "")
	var resp struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Total)
}

func TestHealth(t *testing.T) {
	router, cleanup := setupRouter(t)
	defer cleanup()

	w := doJSON(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "ok", resp.Checks["database"])
	assert.Equal(t, "ok", resp.Checks["corpus"])
}

package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quran-companion/internal/settingsstore"
)

// reciterPreference adapts the settings store to the audio controller.
type reciterPreference struct {
	store    *settingsstore.SettingsStore
	fallback string
}

func (p reciterPreference) ReciterID() string {
	return p.store.GetDisplaySettings(p.fallback).ReciterID
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	healthController := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", healthController.Status)

	corpusController := NewCorpusController(cfg.CorpusStore, cfg.FavouritesService)
	readingController := NewReadingController(cfg.ReadingLog, cfg.SettingsStore)
	favouritesController := NewFavouritesController(cfg.FavouritesService, cfg.FavouritesLister)
	statsController := NewStatsController(cfg.StatsEngine, cfg.RemotePuller, cfg.SettingsStore)
	audioController := NewAudioController(reciterPreference{store: cfg.SettingsStore, fallback: cfg.DefaultReciter})
	settingsController := NewSettingsController(cfg.SettingsStore, cfg.DefaultReciter)
	adminController := NewAdminController(cfg.Database, cfg.Dataset, cfg.FavouritesReload)

	var enqueuer TaskEnqueuer
	var statusReader TaskStatusReader
	if cfg.TaskClient != nil {
		enqueuer = cfg.TaskClient
		statusReader = cfg.TaskClient
	}
	lifecycleController := NewLifecycleController(enqueuer, statusReader)

	api := router.Group("/api")
	{
		api.GET("/surahs", corpusController.ListSurahs)
		api.GET("/surahs/:id", corpusController.GetSurah)
		api.GET("/surahs/:id/verses/:number", corpusController.GetVerse)

		api.POST("/reading", readingController.RecordRead)
		api.GET("/reading/recent", readingController.RecentHistory)
		api.GET("/reading/last", readingController.GetLastRead)
		api.PUT("/reading/last", readingController.SetLastRead)

		api.POST("/verses/:id/favourite", favouritesController.ToggleFavourite)
		api.GET("/favourites", favouritesController.ListFavourites)
		api.GET("/favourites/count", favouritesController.GetFavouriteCount)

		api.GET("/stats", statsController.GetStats)
		api.GET("/stats/remote", statsController.GetRemoteStats)

		api.GET("/audio/reciters", audioController.ListReciters)
		api.GET("/audio/:surahId/:verseNumber", audioController.GetVerseAudio)

		api.GET("/settings/display", settingsController.GetDisplaySettings)
		api.PUT("/settings/display", settingsController.UpdateDisplaySettings)

		api.POST("/lifecycle/background", lifecycleController.Background)
		api.GET("/lifecycle/tasks/:id", lifecycleController.GetTaskStatus)

		api.POST("/admin/reset", adminController.ResetCorpus)
	}

	return router
}

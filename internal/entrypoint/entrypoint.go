package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quran-companion/internal/config"
	"github.com/mrlokans/quran-companion/internal/database"
	"github.com/mrlokans/quran-companion/internal/database/corpus"
	favoritesdb "github.com/mrlokans/quran-companion/internal/database/favorites"
	"github.com/mrlokans/quran-companion/internal/database/history"
	"github.com/mrlokans/quran-companion/internal/database/settings"
	"github.com/mrlokans/quran-companion/internal/dataset"
	"github.com/mrlokans/quran-companion/internal/favorites"
	http_controllers "github.com/mrlokans/quran-companion/internal/http"
	"github.com/mrlokans/quran-companion/internal/remote"
	"github.com/mrlokans/quran-companion/internal/scheduler"
	"github.com/mrlokans/quran-companion/internal/settingsstore"
	"github.com/mrlokans/quran-companion/internal/stats"
	"github.com/mrlokans/quran-companion/internal/syncclient"
	"github.com/mrlokans/quran-companion/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run starts the reader API server.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting Quran Companion v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Load the corpus dataset and seed if the marker or counts disagree
	ds, err := dataset.LoadOrDemo(cfg.Corpus.DatasetPath)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	if err := db.EnsureCorpus(ds); err != nil {
		log.Fatalf("Failed to seed corpus: %v", err)
	}
	if surahs, verses, err := db.CorpusCounts(); err == nil {
		log.Printf("Corpus ready: %d surahs, %d verses (%s)", surahs, verses, ds.Version())
	}

	// Repositories and services
	corpusRepo := corpus.NewRepository(db.DB)
	historyRepo := history.NewRepository(db.DB)
	favoritesRepo := favoritesdb.NewRepository(db.DB)
	settingsRepo := settings.NewRepository(db.DB)

	store := settingsstore.New(settingsRepo)
	favService := favorites.NewService(favoritesRepo)
	engine := stats.NewEngine(historyRepo, favoritesRepo)

	// Sync client when an endpoint is configured
	var sync *syncclient.Client
	if cfg.Sync.Enabled && cfg.Sync.APIURL != "" {
		sync = syncclient.NewClient(cfg.Sync.APIURL, cfg.Sync.Timeout)
		if deviceID, err := store.EnsureDeviceID(); err == nil {
			log.Printf("Sync enabled for device %s against %s", deviceID, cfg.Sync.APIURL)
		}
	} else {
		log.Printf("Sync disabled (set SYNC_API_URL to enable)")
	}

	// Task queue drives the fire-and-forget stats pushes
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled && sync != nil {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewSyncPushQueue(engine, store, sync),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	routerCfg := http_controllers.RouterConfig{
		Database:          db,
		Dataset:           ds,
		SettingsStore:     store,
		CorpusStore:       corpusRepo,
		ReadingLog:        historyRepo,
		FavouritesService: favService,
		FavouritesLister:  favoritesRepo,
		FavouritesReload:  favService,
		StatsEngine:       engine,
		TaskClient:        taskClient,
		DefaultReciter:    cfg.Audio.DefaultReciter,
		Version:           version,
	}
	if sync != nil {
		routerCfg.RemotePuller = sync
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}

// RunSyncServer starts the remote stats endpoint.
func RunSyncServer(cfg *config.Config, version string) {
	log.Printf("Starting Quran Companion sync server v%s", version)

	db, err := remote.OpenDatabase(cfg.Remote.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize stats database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	repo := remote.NewRepository(db)
	if count, err := repo.DeviceCount(); err == nil {
		log.Printf("Stats store ready: %d devices", count)
	}

	retention := scheduler.NewRetentionScheduler(repo, scheduler.RetentionConfig{
		Enabled:  cfg.Remote.RetentionEnabled,
		Schedule: cfg.Remote.RetentionSchedule,
		Days:     cfg.Remote.RetentionDays,
	})
	if err := retention.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start retention scheduler: %v", err)
	}

	router := remote.NewRouter(repo)

	onShutdown := func(ctx context.Context) {
		retention.Stop()
	}

	Serve(router, cfg, onShutdown)
}

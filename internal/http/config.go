package http

import (
	"github.com/mrlokans/quran-companion/internal/database"
	"github.com/mrlokans/quran-companion/internal/dataset"
	"github.com/mrlokans/quran-companion/internal/settingsstore"
	"github.com/mrlokans/quran-companion/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces a long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Database      *database.Database
	Dataset       *dataset.Dataset
	SettingsStore *settingsstore.SettingsStore

	// Corpus reads
	CorpusStore CorpusStore

	// Reading history
	ReadingLog ReadingLog

	// Favourites
	FavouritesService FavouritesToggler
	FavouritesLister  FavouritesLister
	FavouritesReload  FavouritesReloader

	// Statistics
	StatsEngine SnapshotSource

	// Sync (optional; nil when sync is disabled)
	RemotePuller RemotePuller
	TaskClient   *tasks.Client

	// Audio
	DefaultReciter string

	// Application info
	Version string
}

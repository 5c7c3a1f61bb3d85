package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mrlokans/quran-companion/internal/config"
	"github.com/mrlokans/quran-companion/internal/database"
	favoritesdb "github.com/mrlokans/quran-companion/internal/database/favorites"
	"github.com/mrlokans/quran-companion/internal/database/history"
	"github.com/mrlokans/quran-companion/internal/database/settings"
	"github.com/mrlokans/quran-companion/internal/settingsstore"
	"github.com/mrlokans/quran-companion/internal/stats"
	"github.com/mrlokans/quran-companion/internal/syncclient"
)

// SyncNowCommand pushes the current statistics snapshot to the sync endpoint.
type SyncNowCommand struct {
	DatabasePath string
	APIURL       string
	Timeout      time.Duration
	Verbose      bool
}

func NewSyncNowCommand() *SyncNowCommand {
	return &SyncNowCommand{}
}

func (cmd *SyncNowCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("sync-now", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.StringVar(&cmd.APIURL, "api-url", os.Getenv("SYNC_API_URL"), "Base URL of the sync endpoint (required)")
	fs.DurationVar(&cmd.Timeout, "timeout", 10*time.Second, "HTTP timeout for the push")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Print the full snapshot before pushing")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s sync-now -api-url <url> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Push the current reading statistics to the sync endpoint.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s sync-now -api-url https://stats.example.com\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.APIURL == "" {
		return fmt.Errorf("required flag -api-url not provided (or set SYNC_API_URL)")
	}

	return nil
}

func (cmd *SyncNowCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	store := settingsstore.New(settings.NewRepository(db.DB))
	engine := stats.NewEngine(history.NewRepository(db.DB), favoritesdb.NewRepository(db.DB))
	client := syncclient.NewClient(cmd.APIURL, cmd.Timeout)

	deviceID, err := store.EnsureDeviceID()
	if err != nil {
		return fmt.Errorf("failed to resolve device id: %w", err)
	}

	snap := engine.Snapshot()

	if cmd.Verbose {
		fmt.Printf("Device:           %s\n", deviceID)
		fmt.Printf("Verses read:      %d (%d%% of the Quran)\n", snap.TotalVersesRead, snap.ProgressPercent)
		fmt.Printf("Surahs visited:   %d\n", snap.SurahsVisited)
		fmt.Printf("Favourites:       %d\n", snap.FavoritesCount)
		fmt.Printf("Reading streak:   %d days\n", snap.ReadingStreak)
		fmt.Println()
	}

	var lastSurah *uint
	var lastVerse *int
	if pos, err := store.GetLastRead(); err == nil && pos != nil {
		lastSurah = &pos.SurahID
		lastVerse = &pos.VerseNumber
	}

	ctx, cancel := context.WithTimeout(context.Background(), cmd.Timeout)
	defer cancel()

	fmt.Printf("Pushing snapshot to %s...\n", cmd.APIURL)
	if err := client.Push(ctx, deviceID, snap, lastSurah, lastVerse); err != nil {
		return fmt.Errorf("push failed: %w", err)
	}

	if err := store.SetSyncLastAt(time.Now()); err != nil {
		fmt.Printf("Warning: push succeeded but recording the timestamp failed: %v\n", err)
	}

	fmt.Println("Sync complete!")
	return nil
}

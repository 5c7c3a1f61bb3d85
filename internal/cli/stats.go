package cli

import (
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
)

// StatsCommand prints the current reading statistics snapshot.
type StatsCommand struct {
	DatabasePath string
}

func NewStatsCommand() *StatsCommand {
	return &StatsCommand{}
}

func (cmd *StatsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s stats [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print the current reading statistics snapshot.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *StatsCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	historyRepo := history.NewRepository(db.DB)
	engine := stats.NewEngine(historyRepo, favoritesdb.NewRepository(db.DB))
	store := settingsstore.New(settings.NewRepository(db.DB))

	snap := engine.Snapshot()

	fmt.Println("Reading Statistics")
	fmt.Println("==================")
	fmt.Printf("Verses read:      %d (%d%% of the Quran)\n", snap.TotalVersesRead, snap.ProgressPercent)
	fmt.Printf("Surahs visited:   %d\n", snap.SurahsVisited)
	fmt.Printf("Favourites:       %d\n", snap.FavoritesCount)
	fmt.Printf("Reading streak:   %d days\n", snap.ReadingStreak)
	fmt.Printf("Read today:       %d verses\n", snap.TodayVersesRead)
	fmt.Printf("Read this week:   %d verses\n", snap.WeekVersesRead)

	if pos, err := store.GetLastRead(); err == nil && pos != nil {
		fmt.Printf("Last position:    surah %d, verse %d\n", pos.SurahID, pos.VerseNumber)
	}
	if last := store.GetSyncLastAt(); last != nil {
		fmt.Printf("Last sync:        %s\n", last.Format(time.RFC3339))
	} else {
		fmt.Println("Last sync:        never")
	}

	return nil
}

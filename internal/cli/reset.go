package cli

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mrlokans/quran-companion/internal/config"
	"github.com/mrlokans/quran-companion/internal/database"
	"github.com/mrlokans/quran-companion/internal/dataset"
)

// ResetCommand drops and reseeds the local Quran database.
type ResetCommand struct {
	DatabasePath string
	DatasetPath  string
	WipeUserData bool
	Yes          bool
}

func NewResetCommand() *ResetCommand {
	return &ResetCommand{}
}

func (cmd *ResetCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("reset", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.StringVar(&cmd.DatasetPath, "dataset", config.DefaultDatasetPath, "Path to the Quran dataset JSON")
	fs.BoolVar(&cmd.WipeUserData, "wipe-user-data", false, "Also delete reading history and favourites")
	fs.BoolVar(&cmd.Yes, "yes", false, "Skip the confirmation prompt")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s reset [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Drop and reseed the verse corpus from the dataset.\n")
		fmt.Fprintf(os.Stderr, "Reading history and favourites are kept unless -wipe-user-data is given.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ResetCommand) Run() error {
	if cmd.WipeUserData && !cmd.Yes {
		fmt.Print("This will DELETE all reading history and favourites. Continue? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	ds, err := dataset.LoadOrDemo(cmd.DatasetPath)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	fmt.Printf("Reseeding corpus from %s...\n", ds.Version())
	if err := db.Reset(ds, cmd.WipeUserData); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}

	surahs, verses, err := db.CorpusCounts()
	if err != nil {
		return fmt.Errorf("failed to read corpus counts: %w", err)
	}

	fmt.Printf("Corpus ready: %d surahs, %d verses\n", surahs, verses)
	if cmd.WipeUserData {
		fmt.Println("Reading history and favourites wiped.")
	}
	return nil
}

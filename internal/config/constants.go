package config

// Default paths for databases and bundled data
const (
	// DefaultDatabasePath is the default path for the local Quran database
	DefaultDatabasePath = "./quran.db"

	// DefaultRemoteDatabasePath is the default path for the sync server database
	DefaultRemoteDatabasePath = "./quran-stats.db"

	// DefaultDatasetPath is where the full corpus dataset is expected
	DefaultDatasetPath = "./data/quran_full.json"

	// DefaultReciterID identifies the default recitation used for audio URLs
	DefaultReciterID = "ar.alafasy"
)

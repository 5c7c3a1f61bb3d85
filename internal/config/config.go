package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Corpus
		Sync
		Remote
		Tasks
		Audio
	}

	HTTP struct {
		Port int32
		Host string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}

	Database struct {
		Path string
	}

	Corpus struct {
		DatasetPath string // Path to the full Quran dataset JSON; falls back to the bundled demo subset
	}

	Sync struct {
		Enabled bool
		APIURL  string        // Base URL of the remote stats endpoint
		Timeout time.Duration // HTTP client timeout for push/pull calls
	}

	Remote struct {
		DatabasePath      string
		RetentionEnabled  bool
		RetentionSchedule string // Cron format: "0 3 * * *" = daily at 03:00
		RetentionDays     int    // Prune device rows not synced for this many days
	}

	Tasks struct {
		Enabled           bool
		Workers           int
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}

	Audio struct {
		DefaultReciter string // Reciter identifier used when no setting is stored
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("corpus_dataset_path", DefaultDatasetPath)

	// Sync client defaults
	v.SetDefault("sync_enabled", true)
	v.SetDefault("sync_api_url", "")
	v.SetDefault("sync_timeout", "10s")

	// Sync server defaults
	v.SetDefault("remote_database_path", DefaultRemoteDatabasePath)
	v.SetDefault("remote_retention_enabled", false)
	v.SetDefault("remote_retention_schedule", "0 3 * * *")
	v.SetDefault("remote_retention_days", 365)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	// Audio defaults
	v.SetDefault("audio_default_reciter", DefaultReciterID)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Corpus: Corpus{
			DatasetPath: v.GetString("CORPUS_DATASET_PATH"),
		},
		Sync: Sync{
			Enabled: v.GetBool("SYNC_ENABLED"),
			APIURL:  v.GetString("SYNC_API_URL"),
			Timeout: v.GetDuration("SYNC_TIMEOUT"),
		},
		Remote: Remote{
			DatabasePath:      v.GetString("REMOTE_DATABASE_PATH"),
			RetentionEnabled:  v.GetBool("REMOTE_RETENTION_ENABLED"),
			RetentionSchedule: v.GetString("REMOTE_RETENTION_SCHEDULE"),
			RetentionDays:     v.GetInt("REMOTE_RETENTION_DAYS"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			Workers:           v.GetInt("TASK_WORKERS"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
		Audio: Audio{
			DefaultReciter: v.GetString("AUDIO_DEFAULT_RECITER"),
		},
	}
}

package entities

import (
	"time"
)

type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys
const (
	// Corpus seeding marker: version string of the dataset last seeded
	SettingKeyCorpusVersion = "corpus_version"

	// Sync identity and state
	SettingKeyDeviceID   = "device_id"
	SettingKeySyncLastAt = "sync_last_at"

	// Reading position
	SettingKeyLastRead = "last_read"

	// Display settings
	SettingKeyShowArabic      = "show_arabic"
	SettingKeyShowPhonetic    = "show_phonetic"
	SettingKeyShowTranslation = "show_translation"
	SettingKeyTheme           = "theme"
	SettingKeyReciter         = "reciter_id"
)

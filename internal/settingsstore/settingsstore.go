// Package settingsstore exposes typed accessors over the key-value settings
// table: device identity, reading position, display preferences and sync
// bookkeeping.
package settingsstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mrlokans/quran-companion/internal/entities"
)

// SettingsRepository is the key-value persistence the store reads and writes.
type SettingsRepository interface {
	GetSetting(key string) (*entities.Setting, error)
	SetSetting(key, value string) error
	DeleteSetting(key string) error
}

// Priority: database > default
type SettingsStore struct {
	repo SettingsRepository
}

func New(repo SettingsRepository) *SettingsStore {
	return &SettingsStore{repo: repo}
}

// --- Device identity ---

// EnsureDeviceID returns the stored device identifier, minting and persisting
// a UUIDv4 on first call. The identifier is stable for the lifetime of the
// database file.
func (s *SettingsStore) EnsureDeviceID() (string, error) {
	setting, err := s.repo.GetSetting(entities.SettingKeyDeviceID)
	if err == nil && setting.Value != "" {
		return setting.Value, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to read device id: %w", err)
	}

	id := uuid.NewString()
	if err := s.repo.SetSetting(entities.SettingKeyDeviceID, id); err != nil {
		return "", fmt.Errorf("failed to persist device id: %w", err)
	}
	return id, nil
}

// --- Reading position ---

// ReadingPosition is the last verse the reader was on.
type ReadingPosition struct {
	SurahID     uint  `json:"surahId"`
	VerseNumber int   `json:"verseNumber"`
	Timestamp   int64 `json:"timestamp"`
}

// GetLastRead returns the stored reading position, or nil when none was
// saved yet.
func (s *SettingsStore) GetLastRead() (*ReadingPosition, error) {
	setting, err := s.repo.GetSetting(entities.SettingKeyLastRead)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var pos ReadingPosition
	if err := json.Unmarshal([]byte(setting.Value), &pos); err != nil {
		// A corrupt value is treated as absent rather than poisoning reads.
		return nil, nil
	}
	return &pos, nil
}

func (s *SettingsStore) SetLastRead(pos ReadingPosition) error {
	raw, err := json.Marshal(pos)
	if err != nil {
		return err
	}
	return s.repo.SetSetting(entities.SettingKeyLastRead, string(raw))
}

// --- Sync bookkeeping ---

// GetSyncLastAt returns the timestamp of the last successful push, or nil.
func (s *SettingsStore) GetSyncLastAt() *time.Time {
	setting, err := s.repo.GetSetting(entities.SettingKeySyncLastAt)
	if err != nil || setting.Value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, setting.Value)
	if err != nil {
		return nil
	}
	return &t
}

func (s *SettingsStore) SetSyncLastAt(t time.Time) error {
	return s.repo.SetSetting(entities.SettingKeySyncLastAt, t.Format(time.RFC3339))
}

// --- Display preferences ---

// DisplaySettings groups the reader presentation toggles.
type DisplaySettings struct {
	ShowArabic      bool   `json:"show_arabic"`
	ShowPhonetic    bool   `json:"show_phonetic"`
	ShowTranslation bool   `json:"show_translation"`
	Theme           string `json:"theme"`
	ReciterID       string `json:"reciter_id"`
}

// DefaultDisplaySettings has every text layer visible.
func DefaultDisplaySettings(defaultReciter string) DisplaySettings {
	return DisplaySettings{
		ShowArabic:      true,
		ShowPhonetic:    true,
		ShowTranslation: true,
		Theme:           "light",
		ReciterID:       defaultReciter,
	}
}

// GetDisplaySettings returns the stored preferences, filling unset keys from
// the defaults.
func (s *SettingsStore) GetDisplaySettings(defaultReciter string) DisplaySettings {
	ds := DefaultDisplaySettings(defaultReciter)

	ds.ShowArabic = s.getBool(entities.SettingKeyShowArabic, ds.ShowArabic)
	ds.ShowPhonetic = s.getBool(entities.SettingKeyShowPhonetic, ds.ShowPhonetic)
	ds.ShowTranslation = s.getBool(entities.SettingKeyShowTranslation, ds.ShowTranslation)

	if setting, err := s.repo.GetSetting(entities.SettingKeyTheme); err == nil && setting.Value != "" {
		ds.Theme = setting.Value
	}
	if setting, err := s.repo.GetSetting(entities.SettingKeyReciter); err == nil && setting.Value != "" {
		ds.ReciterID = setting.Value
	}
	return ds
}

// SetDisplaySettings persists all preference keys.
func (s *SettingsStore) SetDisplaySettings(ds DisplaySettings) error {
	pairs := map[string]string{
		entities.SettingKeyShowArabic:      boolValue(ds.ShowArabic),
		entities.SettingKeyShowPhonetic:    boolValue(ds.ShowPhonetic),
		entities.SettingKeyShowTranslation: boolValue(ds.ShowTranslation),
		entities.SettingKeyTheme:           ds.Theme,
		entities.SettingKeyReciter:         ds.ReciterID,
	}
	for key, value := range pairs {
		if err := s.repo.SetSetting(key, value); err != nil {
			return fmt.Errorf("failed to persist %s: %w", key, err)
		}
	}
	return nil
}

func (s *SettingsStore) getBool(key string, fallback bool) bool {
	setting, err := s.repo.GetSetting(key)
	if err != nil || setting.Value == "" {
		return fallback
	}
	return setting.Value == "true"
}

func boolValue(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// Package history provides database operations for the append-only reading
// event log.
//
// This package implements the ReadingLog interface defined in internal/http
// and the EventLog interface used by the statistics engine.
//
// # Usage
//
//	repo := history.NewRepository(db)
//	err := repo.Record(2, 255)
package history

import (
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/quran-companion/internal/entities"
)

// Entry is a reading event joined with surah naming for display.
type Entry struct {
	SurahID           uint   `json:"surah_id"`
	VerseNumber       int    `json:"verse_number"`
	Timestamp         int64  `json:"timestamp"`
	SurahNameFr       string `json:"surah_name_fr"`
	SurahNamePhonetic string `json:"surah_name_phonetic"`
}

// Repository handles reading history database operations. Rows are only ever
// appended; duplicate (surah, verse) events are expected and deduplicated at
// aggregation time.
type Repository struct {
	db *gorm.DB

	now func() time.Time
}

// NewRepository creates a new reading history repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Record appends a "verse read" event stamped with the current wall clock and
// the device-local calendar day.
func (r *Repository) Record(surahID uint, verseNumber int) error {
	now := r.now()
	event := entities.ReadingEvent{
		SurahID:     surahID,
		VerseNumber: verseNumber,
		Timestamp:   now.UnixMilli(),
		Date:        now.Format("2006-01-02"),
	}
	return r.db.Create(&event).Error
}

// DistinctDates returns the distinct calendar days present in the log,
// newest first, capped at limit.
func (r *Repository) DistinctDates(limit int) ([]string, error) {
	var dates []string
	err := r.db.Model(&entities.ReadingEvent{}).
		Distinct("date").
		Order("date DESC").
		Limit(limit).
		Pluck("date", &dates).Error
	return dates, err
}

// DistinctVerseCount counts distinct (surah, verse) pairs ever logged.
func (r *Repository) DistinctVerseCount() (int64, error) {
	var count int64
	err := r.db.Raw(
		"SELECT COUNT(DISTINCT surah_id || '-' || verse_number) FROM reading_history",
	).Scan(&count).Error
	return count, err
}

// DistinctVerseCountOn counts distinct (surah, verse) pairs logged on the
// given calendar day.
func (r *Repository) DistinctVerseCountOn(date string) (int64, error) {
	var count int64
	err := r.db.Raw(
		"SELECT COUNT(DISTINCT surah_id || '-' || verse_number) FROM reading_history WHERE date = ?",
		date,
	).Scan(&count).Error
	return count, err
}

// DistinctVerseCountSince counts distinct (surah, verse) pairs logged on or
// after the given calendar day.
func (r *Repository) DistinctVerseCountSince(date string) (int64, error) {
	var count int64
	err := r.db.Raw(
		"SELECT COUNT(DISTINCT surah_id || '-' || verse_number) FROM reading_history WHERE date >= ?",
		date,
	).Scan(&count).Error
	return count, err
}

// SurahsVisited counts distinct surahs present in the log.
func (r *Repository) SurahsVisited() (int64, error) {
	var count int64
	err := r.db.Model(&entities.ReadingEvent{}).
		Distinct("surah_id").
		Count(&count).Error
	return count, err
}

// Recent returns the most recent events joined with surah names.
func (r *Repository) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	var entries []Entry
	err := r.db.Raw(`
		SELECT rh.surah_id, rh.verse_number, rh.timestamp,
		       s.name_fr AS surah_name_fr, s.name_phonetic AS surah_name_phonetic
		FROM reading_history rh
		JOIN surahs s ON rh.surah_id = s.id
		ORDER BY rh.timestamp DESC
		LIMIT ?
	`, limit).Scan(&entries).Error
	return entries, err
}

// EventCount returns the total number of logged events, re-reads included.
func (r *Repository) EventCount() (int64, error) {
	var count int64
	err := r.db.Model(&entities.ReadingEvent{}).Count(&count).Error
	return count, err
}

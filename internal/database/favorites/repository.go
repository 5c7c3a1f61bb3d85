// Package favorites provides database operations for the favourite verse set.
//
// This package implements the FavoritesStore interface defined in
// internal/http and the persistence half of the favorites service.
//
// # Usage
//
//	repo := favorites.NewRepository(db)
//	err := repo.Add(42)
package favorites

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/quran-companion/internal/entities"
)

// VerseEntry is a favourite joined with its verse and surah fields.
type VerseEntry struct {
	ID                uint   `json:"id"`
	VerseID           uint   `json:"verse_id"`
	SurahID           uint   `json:"surah_id"`
	VerseNumber       int    `json:"verse_number"`
	ArabicText        string `json:"arabic_text"`
	PhoneticText      string `json:"phonetic_text"`
	TranslationText   string `json:"translation_text"`
	SurahNameAr       string `json:"surah_name_ar"`
	SurahNameFr       string `json:"surah_name_fr"`
	SurahNamePhonetic string `json:"surah_name_phonetic"`
}

// Repository handles favourites database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new favourites repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Add inserts a favourite if absent. Adding an existing favourite is a no-op,
// preserving the at-most-one-row-per-verse invariant.
func (r *Repository) Add(verseID uint) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entities.Favorite{VerseID: verseID}).Error
}

// Remove deletes a favourite. Removing a missing favourite is a no-op.
func (r *Repository) Remove(verseID uint) error {
	return r.db.Where("verse_id = ?", verseID).Delete(&entities.Favorite{}).Error
}

// IsFavorite reports current membership of a verse.
func (r *Repository) IsFavorite(verseID uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Favorite{}).
		Where("verse_id = ?", verseID).
		Count(&count).Error
	return count > 0, err
}

// Count returns the favourite set cardinality.
func (r *Repository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Favorite{}).Count(&count).Error
	return count, err
}

// VerseIDs returns all favourited verse IDs.
func (r *Repository) VerseIDs() ([]uint, error) {
	var ids []uint
	err := r.db.Model(&entities.Favorite{}).Pluck("verse_id", &ids).Error
	return ids, err
}

// ListWithVerses returns all favourites joined with verse text and surah
// names, newest first.
func (r *Repository) ListWithVerses() ([]VerseEntry, error) {
	var entries []VerseEntry
	err := r.db.Raw(`
		SELECT
			f.id,
			f.verse_id,
			v.surah_id,
			v.verse_number,
			v.arabic_text,
			v.phonetic_text,
			v.translation_text,
			s.name_ar AS surah_name_ar,
			s.name_fr AS surah_name_fr,
			s.name_phonetic AS surah_name_phonetic
		FROM favorites f
		JOIN verses v ON f.verse_id = v.id
		JOIN surahs s ON v.surah_id = s.id
		ORDER BY f.id DESC
	`).Scan(&entries).Error
	return entries, err
}

// Package corpus provides read-only database operations over the seeded
// Quran reference data.
//
// This package implements the CorpusStore interface defined in internal/http.
//
// # Usage
//
//	repo := corpus.NewRepository(db)
//	verses, err := repo.ListVerses(2)
package corpus

import (
	"gorm.io/gorm"

	"github.com/mrlokans/quran-companion/internal/entities"
)

// Repository handles corpus lookups. The underlying tables are never written
// outside the seeding path.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new corpus repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetSurah retrieves a single surah by its number (1..114).
func (r *Repository) GetSurah(id uint) (*entities.Surah, error) {
	var surah entities.Surah
	err := r.db.First(&surah, id).Error
	if err != nil {
		return nil, err
	}
	return &surah, nil
}

// ListSurahs returns all surahs ordered by number.
func (r *Repository) ListSurahs() ([]entities.Surah, error) {
	var surahs []entities.Surah
	err := r.db.Order("id ASC").Find(&surahs).Error
	return surahs, err
}

// ListVerses returns the verses of a surah ordered by verse number.
func (r *Repository) ListVerses(surahID uint) ([]entities.Verse, error) {
	var verses []entities.Verse
	err := r.db.Where("surah_id = ?", surahID).
		Order("verse_number ASC").
		Find(&verses).Error
	return verses, err
}

// GetVerse retrieves a verse by its row ID.
func (r *Repository) GetVerse(id uint) (*entities.Verse, error) {
	var verse entities.Verse
	err := r.db.First(&verse, id).Error
	if err != nil {
		return nil, err
	}
	return &verse, nil
}

// GetVerseByRef retrieves a verse by (surah, verse number).
func (r *Repository) GetVerseByRef(surahID uint, verseNumber int) (*entities.Verse, error) {
	var verse entities.Verse
	err := r.db.Where("surah_id = ? AND verse_number = ?", surahID, verseNumber).
		First(&verse).Error
	if err != nil {
		return nil, err
	}
	return &verse, nil
}

// VerseCount returns the number of seeded verses.
func (r *Repository) VerseCount() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Verse{}).Count(&count).Error
	return count, err
}

// SurahCount returns the number of seeded surahs.
func (r *Repository) SurahCount() (int64, error) {
	var count int64
	err := r.db.Model(&entities.Surah{}).Count(&count).Error
	return count, err
}

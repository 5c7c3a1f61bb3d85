package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/quran-companion/internal/dataset"
	"github.com/mrlokans/quran-companion/internal/entities"
)

// Database wraps the shared embedded store handle. It is opened once at
// startup and injected into the repositories; readers must not run before
// EnsureCorpus has returned.
type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath+"?_journal=WAL&_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate(db); err != nil {
		return nil, err
	}

	log.Printf("Database initialized at %s", dbPath)

	return &Database{DB: db}, nil
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&entities.Surah{},
		&entities.Verse{},
		&entities.Favorite{},
		&entities.ReadingEvent{},
		&entities.Setting{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// EnsureCorpus makes the corpus tables match the given dataset. It is
// idempotent: when the persisted corpus version marker and the row counts
// already match the dataset, nothing is written. A missing marker, a version
// mismatch (e.g. demo subset upgraded to the full corpus) or truncated tables
// all trigger a full delete-and-reseed, one transaction per table. Reseeding
// over existing verse rows reassigns their ids, so favourites are cleared in
// that case rather than left pointing at arbitrary verses.
func (d *Database) EnsureCorpus(ds *dataset.Dataset) error {
	expected := ds.Version()

	marker, err := d.corpusVersion()
	if err != nil {
		return fmt.Errorf("failed to read corpus version: %w", err)
	}

	surahCount, verseCount, err := d.CorpusCounts()
	if err != nil {
		return fmt.Errorf("failed to count corpus rows: %w", err)
	}

	if marker == expected &&
		surahCount == int64(len(ds.Surahs)) &&
		verseCount == int64(len(ds.Verses)) {
		log.Printf("Corpus already seeded (%s: %d surahs, %d verses)", marker, surahCount, verseCount)
		return nil
	}

	switch {
	case surahCount == 0 && verseCount == 0:
		log.Printf("Seeding corpus %s (%d surahs, %d verses)...", expected, len(ds.Surahs), len(ds.Verses))
	case marker != expected:
		log.Printf("Corpus version changed (%q -> %q). Reseeding...", marker, expected)
	default:
		log.Printf("Detected partial corpus (%d surahs, %d verses). Reseeding...", surahCount, verseCount)
	}

	if err := d.seedSurahs(ds); err != nil {
		return fmt.Errorf("failed to seed surahs: %w", err)
	}
	if err := d.seedVerses(ds); err != nil {
		return fmt.Errorf("failed to seed verses: %w", err)
	}

	if verseCount > 0 {
		result := d.DB.Where("1 = 1").Delete(&entities.Favorite{})
		if result.Error != nil {
			return fmt.Errorf("failed to clear favorites after reseed: %w", result.Error)
		}
		if result.RowsAffected > 0 {
			log.Printf("Cleared %d favourites referencing reseeded verses", result.RowsAffected)
		}
	}

	if err := d.setCorpusVersion(expected); err != nil {
		return fmt.Errorf("failed to record corpus version: %w", err)
	}

	log.Printf("Corpus seeded successfully (%s)", expected)
	return nil
}

// seedSurahs replaces the surahs table contents. Either all rows commit or
// the previous state is left intact via rollback.
func (d *Database) seedSurahs(ds *dataset.Dataset) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.Surah{}).Error; err != nil {
			return err
		}

		surahs := make([]entities.Surah, 0, len(ds.Surahs))
		for _, s := range ds.Surahs {
			surahs = append(surahs, entities.Surah{
				ID:           s.ID,
				NameAr:       s.NameAr,
				NameEn:       s.NameEn,
				NameFr:       s.NameFr,
				NamePhonetic: s.NamePhonetic,
				VersesCount:  s.VersesCount,
			})
		}
		return tx.CreateInBatches(surahs, 500).Error
	})
}

// seedVerses replaces the verses table contents in one transaction.
func (d *Database) seedVerses(ds *dataset.Dataset) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entities.Verse{}).Error; err != nil {
			return err
		}

		verses := make([]entities.Verse, 0, len(ds.Verses))
		for _, v := range ds.Verses {
			verses = append(verses, entities.Verse{
				SurahID:         v.SurahID,
				VerseNumber:     v.VerseNumber,
				ArabicText:      v.ArabicText,
				PhoneticText:    v.PhoneticText,
				TranslationText: v.TranslationText,
				TafsirText:      v.TafsirText,
			})
		}
		return tx.CreateInBatches(verses, 500).Error
	})
}

// Reset drops and recreates the corpus tables, then reseeds from the dataset.
// When wipeUserData is set, favorites and reading history are cleared as well.
// Reseeding an empty table assigns verse ids in dataset order, so favourites
// kept across a same-dataset reset keep pointing at the right verses.
// This is the only operation allowed to destroy tables; callers must not issue
// reads until it returns.
func (d *Database) Reset(ds *dataset.Dataset, wipeUserData bool) error {
	log.Printf("Resetting corpus tables...")

	migrator := d.DB.Migrator()
	for _, table := range []any{&entities.Surah{}, &entities.Verse{}} {
		if migrator.HasTable(table) {
			if err := migrator.DropTable(table); err != nil {
				return fmt.Errorf("failed to drop table: %w", err)
			}
		}
	}

	if wipeUserData {
		if err := d.DB.Where("1 = 1").Delete(&entities.Favorite{}).Error; err != nil {
			return fmt.Errorf("failed to clear favorites: %w", err)
		}
		if err := d.DB.Where("1 = 1").Delete(&entities.ReadingEvent{}).Error; err != nil {
			return fmt.Errorf("failed to clear reading history: %w", err)
		}
	}

	if err := d.DB.Where("key = ?", entities.SettingKeyCorpusVersion).Delete(&entities.Setting{}).Error; err != nil {
		return fmt.Errorf("failed to clear corpus version: %w", err)
	}

	if err := migrate(d.DB); err != nil {
		return err
	}

	return d.EnsureCorpus(ds)
}

// CorpusCounts returns the current surah and verse row counts.
func (d *Database) CorpusCounts() (surahs int64, verses int64, err error) {
	if err = d.DB.Model(&entities.Surah{}).Count(&surahs).Error; err != nil {
		return
	}
	err = d.DB.Model(&entities.Verse{}).Count(&verses).Error
	return
}

func (d *Database) corpusVersion() (string, error) {
	var setting entities.Setting
	err := d.DB.Where("key = ?", entities.SettingKeyCorpusVersion).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (d *Database) setCorpusVersion(version string) error {
	var setting entities.Setting
	result := d.DB.Where("key = ?", entities.SettingKeyCorpusVersion).First(&setting)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		setting = entities.Setting{Key: entities.SettingKeyCorpusVersion, Value: version}
		return d.DB.Create(&setting).Error
	} else if result.Error != nil {
		return result.Error
	}

	setting.Value = version
	return d.DB.Save(&setting).Error
}

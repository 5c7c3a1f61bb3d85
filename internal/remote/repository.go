// Package remote implements the stats sync endpoint: a key-value store of
// per-device snapshots behind a small JSON API.
package remote

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/quran-companion/internal/entities"
)

// OpenDatabase opens the sync-server database and runs migrations. The store
// is independent of the reader database.
func OpenDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_journal=WAL&_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open stats database: %w", err)
	}

	if err := db.AutoMigrate(&entities.DeviceStats{}); err != nil {
		return nil, fmt.Errorf("failed to migrate stats database: %w", err)
	}
	return db, nil
}

// Repository persists per-device snapshots.
type Repository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRepository creates a new device stats repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Upsert replaces the row for the device. LastSync is stamped server-side;
// client clocks are not trusted.
func (r *Repository) Upsert(stats *entities.DeviceStats) error {
	stats.LastSync = r.now().UTC()
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "device_id"}},
		UpdateAll: true,
	}).Create(stats).Error
}

// Get retrieves the snapshot for a device.
func (r *Repository) Get(deviceID string) (*entities.DeviceStats, error) {
	var stats entities.DeviceStats
	err := r.db.Where("device_id = ?", deviceID).First(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// DeviceCount returns the number of devices that ever pushed.
func (r *Repository) DeviceCount() (int64, error) {
	var count int64
	err := r.db.Model(&entities.DeviceStats{}).Count(&count).Error
	return count, err
}

// PruneStale deletes rows whose last push is older than the cutoff and
// returns how many were removed.
func (r *Repository) PruneStale(cutoff time.Time) (int64, error) {
	result := r.db.Where("last_sync < ?", cutoff).Delete(&entities.DeviceStats{})
	return result.RowsAffected, result.Error
}

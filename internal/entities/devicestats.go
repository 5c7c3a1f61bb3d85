package entities

import "time"

// DeviceStats is the remote-side row holding the last pushed statistics
// snapshot for one device. Pushes fully replace the row (natural-key upsert);
// exactly one row exists per device identifier.
type DeviceStats struct {
	DeviceID        string    `gorm:"primaryKey;size:36" json:"device_id"`
	TotalVersesRead int       `json:"total_verses_read"`
	SurahsVisited   int       `json:"surahs_visited"`
	FavoritesCount  int       `json:"favorites_count"`
	ReadingStreak   int       `json:"reading_streak"`
	TodayVersesRead int       `json:"today_verses_read"`
	WeekVersesRead  int       `json:"week_verses_read"`
	ProgressPercent int       `json:"progress_percent"`
	LastReadSurah   *uint     `json:"last_read_surah"`
	LastReadVerse   *int      `json:"last_read_verse"`
	LastSync        time.Time `json:"last_sync"`
}

func (DeviceStats) TableName() string {
	return "user_stats"
}

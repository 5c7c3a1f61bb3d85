package entities

// ReadingEvent is an append-only fact recorded when a verse becomes visible in
// the reading surface. Re-reads produce additional rows; deduplication happens
// only at aggregation time via distinct (surah_id, verse_number) counting.
type ReadingEvent struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	SurahID     uint   `json:"surah_id"`
	VerseNumber int    `json:"verse_number"`
	Timestamp   int64  `json:"timestamp"`              // epoch millis at the writer
	Date        string `gorm:"index;size:10" json:"date"` // YYYY-MM-DD, device-local timezone
}

func (ReadingEvent) TableName() string {
	return "reading_history"
}

// Favorite marks a verse as favourited. At most one row exists per verse.
type Favorite struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	VerseID uint `gorm:"uniqueIndex" json:"verse_id"`
}

func (Favorite) TableName() string {
	return "favorites"
}

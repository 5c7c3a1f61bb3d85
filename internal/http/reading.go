package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quran-companion/internal/database/history"
	"github.com/mrlokans/quran-companion/internal/quran"
	"github.com/mrlokans/quran-companion/internal/settingsstore"
)

// ReadingLog defines the event log operations the controller needs.
type ReadingLog interface {
	Record(surahID uint, verseNumber int) error
	Recent(limit int) ([]history.Entry, error)
	EventCount() (int64, error)
}

// PositionStore persists the last reading position.
type PositionStore interface {
	GetLastRead() (*settingsstore.ReadingPosition, error)
	SetLastRead(pos settingsstore.ReadingPosition) error
}

type ReadingController struct {
	log       ReadingLog
	positions PositionStore
}

func NewReadingController(log ReadingLog, positions PositionStore) *ReadingController {
	return &ReadingController{log: log, positions: positions}
}

type recordReadRequest struct {
	SurahID     uint `json:"surah_id" binding:"required"`
	VerseNumber int  `json:"verse_number" binding:"required,min=1"`
}

// RecordRead appends one reading event and advances the last-read position.
// Every call appends; deduplication happens at query time.
// POST /api/reading
func (rc *ReadingController) RecordRead(c *gin.Context) {
	var req recordReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "surah_id and verse_number are required")
		return
	}

	if req.SurahID < 1 || req.SurahID > quran.TotalSurahs {
		respondBadRequest(c, "surah_id out of range")
		return
	}

	if err := rc.log.Record(req.SurahID, req.VerseNumber); err != nil {
		respondInternalError(c, err, "record reading event")
		return
	}

	pos := settingsstore.ReadingPosition{
		SurahID:     req.SurahID,
		VerseNumber: req.VerseNumber,
		Timestamp:   time.Now().UnixMilli(),
	}
	if err := rc.positions.SetLastRead(pos); err != nil {
		// The event is already durable; losing the position only costs
		// a stale "continue reading" shortcut.
		respondSuccess(c, "reading recorded")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "reading recorded", "last_read": pos})
}

// RecentHistory returns the newest reading events joined with surah names.
// GET /api/reading/recent
func (rc *ReadingController) RecentHistory(c *gin.Context) {
	limit := parseLimitQuery(c, 20, 100)

	entries, err := rc.log.Recent(limit)
	if err != nil {
		respondInternalError(c, err, "recent history")
		return
	}

	total, err := rc.log.EventCount()
	if err != nil {
		respondInternalError(c, err, "count history")
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries, "total": total, "limit": limit})
}

// GetLastRead returns the saved reading position with juz and hizb context.
// GET /api/reading/last
func (rc *ReadingController) GetLastRead(c *gin.Context) {
	pos, err := rc.positions.GetLastRead()
	if err != nil {
		respondInternalError(c, err, "get last read")
		return
	}
	if pos == nil {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"found":     true,
		"last_read": pos,
		"juz":       quran.Juz(pos.SurahID, pos.VerseNumber),
		"hizb":      quran.Hizb(pos.SurahID, pos.VerseNumber),
	})
}

// SetLastRead overwrites the reading position without logging an event,
// used when the reader scrolls without confirming a read.
// PUT /api/reading/last
func (rc *ReadingController) SetLastRead(c *gin.Context) {
	var req recordReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "surah_id and verse_number are required")
		return
	}

	pos := settingsstore.ReadingPosition{
		SurahID:     req.SurahID,
		VerseNumber: req.VerseNumber,
		Timestamp:   time.Now().UnixMilli(),
	}
	if err := rc.positions.SetLastRead(pos); err != nil {
		respondInternalError(c, err, "set last read")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "position saved", "last_read": pos})
}

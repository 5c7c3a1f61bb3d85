package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quran-companion/internal/audio"
	"github.com/mrlokans/quran-companion/internal/quran"
)

// ReciterPreference yields the configured reciter for audio playback.
type ReciterPreference interface {
	ReciterID() string
}

type AudioController struct {
	preference ReciterPreference
}

func NewAudioController(preference ReciterPreference) *AudioController {
	return &AudioController{preference: preference}
}

// ListReciters returns the supported reciter catalog.
// GET /api/audio/reciters
func (ac *AudioController) ListReciters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reciters": audio.Catalog})
}

// GetVerseAudio returns the recitation URL for one verse. An explicit
// ?reciter= overrides the stored preference.
// GET /api/audio/:surahId/:verseNumber
func (ac *AudioController) GetVerseAudio(c *gin.Context) {
	surahID, ok := parseIDParam(c, "surahId")
	if !ok {
		return
	}
	verseNumber, ok := parseIntParam(c, "verseNumber")
	if !ok {
		return
	}
	if surahID < 1 || surahID > quran.TotalSurahs {
		respondBadRequest(c, "surahId out of range")
		return
	}

	reciterID := c.Query("reciter")
	if reciterID == "" {
		reciterID = ac.preference.ReciterID()
	}

	reciter, found := audio.Lookup(reciterID)
	if !found {
		respondNotFound(c, "reciter")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reciter": reciter,
		"url":     audio.VerseURL(reciter, surahID, verseNumber),
	})
}

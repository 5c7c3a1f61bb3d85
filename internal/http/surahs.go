package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/quran-companion/internal/entities"
	"github.com/mrlokans/quran-companion/internal/quran"
)

// CorpusStore defines read access to the seeded corpus.
type CorpusStore interface {
	ListSurahs() ([]entities.Surah, error)
	GetSurah(id uint) (*entities.Surah, error)
	ListVerses(surahID uint) ([]entities.Verse, error)
	GetVerseByRef(surahID uint, verseNumber int) (*entities.Verse, error)
}

// FavoriteChecker reports favourite membership for verse annotations.
type FavoriteChecker interface {
	IsFavorite(verseID uint) bool
}

type CorpusController struct {
	store     CorpusStore
	favorites FavoriteChecker
}

func NewCorpusController(store CorpusStore, favorites FavoriteChecker) *CorpusController {
	return &CorpusController{store: store, favorites: favorites}
}

// VerseResponse is a corpus verse annotated with reading metadata.
type VerseResponse struct {
	entities.Verse
	Juz      int  `json:"juz"`
	Hizb     int  `json:"hizb"`
	Favorite bool `json:"favorite"`
}

func (cc *CorpusController) annotate(verse entities.Verse) VerseResponse {
	return VerseResponse{
		Verse:    verse,
		Juz:      quran.Juz(verse.SurahID, verse.VerseNumber),
		Hizb:     quran.Hizb(verse.SurahID, verse.VerseNumber),
		Favorite: cc.favorites.IsFavorite(verse.ID),
	}
}

// ListSurahs returns all 114 surahs in canonical order.
// GET /api/surahs
func (cc *CorpusController) ListSurahs(c *gin.Context) {
	surahs, err := cc.store.ListSurahs()
	if err != nil {
		respondInternalError(c, err, "list surahs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"surahs": surahs, "total": len(surahs)})
}

// GetSurah returns one surah with all its verses.
// GET /api/surahs/:id
func (cc *CorpusController) GetSurah(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	surah, err := cc.store.GetSurah(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "surah")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get surah")
		return
	}

	verses, err := cc.store.ListVerses(id)
	if err != nil {
		respondInternalError(c, err, "list verses")
		return
	}

	annotated := make([]VerseResponse, 0, len(verses))
	for _, v := range verses {
		annotated = append(annotated, cc.annotate(v))
	}

	c.JSON(http.StatusOK, gin.H{"surah": surah, "verses": annotated})
}

// GetVerse returns a single verse by reference.
// GET /api/surahs/:id/verses/:number
func (cc *CorpusController) GetVerse(c *gin.Context) {
	surahID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	number, ok := parseIntParam(c, "number")
	if !ok {
		return
	}

	verse, err := cc.store.GetVerseByRef(surahID, number)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "verse")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get verse")
		return
	}

	c.JSON(http.StatusOK, cc.annotate(*verse))
}

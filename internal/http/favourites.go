package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	favoritesdb "github.com/mrlokans/quran-companion/internal/database/favorites"
	"github.com/mrlokans/quran-companion/internal/favorites"
)

// FavouritesToggler is the optimistic in-memory favourites service.
type FavouritesToggler interface {
	Toggle(verseID uint) favorites.ToggleResult
	IsFavorite(verseID uint) bool
	Count() int
}

// FavouritesLister reads the favourite verses with their text.
type FavouritesLister interface {
	ListWithVerses() ([]favoritesdb.VerseEntry, error)
}

type FavouritesController struct {
	service FavouritesToggler
	lister  FavouritesLister
}

func NewFavouritesController(service FavouritesToggler, lister FavouritesLister) *FavouritesController {
	return &FavouritesController{service: service, lister: lister}
}

// ToggleFavourite flips favourite membership for a verse. The response
// carries the settled state; rolled_back signals a failed persistence.
// POST /api/verses/:id/favourite
func (fc *FavouritesController) ToggleFavourite(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := fc.service.Toggle(id)
	c.JSON(http.StatusOK, result)
}

// ListFavourites returns all favourite verses, newest first.
// GET /api/favourites
func (fc *FavouritesController) ListFavourites(c *gin.Context) {
	entries, err := fc.lister.ListWithVerses()
	if err != nil {
		respondInternalError(c, err, "list favourites")
		return
	}

	c.JSON(http.StatusOK, gin.H{"favourites": entries, "total": len(entries)})
}

// GetFavouriteCount returns the size of the favourite set.
// GET /api/favourites/count
func (fc *FavouritesController) GetFavouriteCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": fc.service.Count()})
}

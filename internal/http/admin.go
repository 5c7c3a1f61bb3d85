package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quran-companion/internal/dataset"
)

// CorpusResetter rebuilds the verse corpus from the dataset.
type CorpusResetter interface {
	Reset(ds *dataset.Dataset, wipeUserData bool) error
	CorpusCounts() (surahs int64, verses int64, err error)
}

// FavouritesReloader refreshes the in-memory favourite set after a reset.
type FavouritesReloader interface {
	Reload() error
}

type AdminController struct {
	db        CorpusResetter
	dataset   *dataset.Dataset
	favorites FavouritesReloader
}

func NewAdminController(db CorpusResetter, ds *dataset.Dataset, favorites FavouritesReloader) *AdminController {
	return &AdminController{db: db, dataset: ds, favorites: favorites}
}

type resetRequest struct {
	WipeUserData bool `json:"wipe_user_data"`
}

// ResetCorpus drops and reseeds the corpus tables. With wipe_user_data the
// reading history and favourites are cleared too.
// POST /api/admin/reset
func (ac *AdminController) ResetCorpus(c *gin.Context) {
	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondBadRequest(c, "invalid reset payload")
		return
	}

	if err := ac.db.Reset(ac.dataset, req.WipeUserData); err != nil {
		respondInternalError(c, err, "reset corpus")
		return
	}

	if req.WipeUserData && ac.favorites != nil {
		if err := ac.favorites.Reload(); err != nil {
			respondInternalError(c, err, "reload favourites")
			return
		}
	}

	surahs, verses, err := ac.db.CorpusCounts()
	if err != nil {
		respondSuccess(c, "corpus reset")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "corpus reset",
		"surahs":         surahs,
		"verses":         verses,
		"wipe_user_data": req.WipeUserData,
	})
}

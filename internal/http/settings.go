package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quran-companion/internal/audio"
	"github.com/mrlokans/quran-companion/internal/settingsstore"
)

// DisplaySettingsStore reads and writes reader presentation preferences.
type DisplaySettingsStore interface {
	GetDisplaySettings(defaultReciter string) settingsstore.DisplaySettings
	SetDisplaySettings(ds settingsstore.DisplaySettings) error
}

type SettingsController struct {
	store          DisplaySettingsStore
	defaultReciter string
}

func NewSettingsController(store DisplaySettingsStore, defaultReciter string) *SettingsController {
	return &SettingsController{store: store, defaultReciter: defaultReciter}
}

// GetDisplaySettings returns the presentation preferences.
// GET /api/settings/display
func (sc *SettingsController) GetDisplaySettings(c *gin.Context) {
	c.JSON(http.StatusOK, sc.store.GetDisplaySettings(sc.defaultReciter))
}

// UpdateDisplaySettings replaces the presentation preferences.
// PUT /api/settings/display
func (sc *SettingsController) UpdateDisplaySettings(c *gin.Context) {
	var ds settingsstore.DisplaySettings
	if err := c.ShouldBindJSON(&ds); err != nil {
		respondBadRequest(c, "invalid settings payload")
		return
	}

	if ds.ReciterID != "" {
		if _, found := audio.Lookup(ds.ReciterID); !found {
			respondBadRequest(c, "unknown reciter_id")
			return
		}
	} else {
		ds.ReciterID = sc.defaultReciter
	}
	if ds.Theme == "" {
		ds.Theme = "light"
	}

	if err := sc.store.SetDisplaySettings(ds); err != nil {
		respondInternalError(c, err, "save display settings")
		return
	}

	c.JSON(http.StatusOK, ds)
}

package remote

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/quran-companion/internal/entities"
)

// StatsStore defines the persistence operations the endpoint needs.
type StatsStore interface {
	Upsert(stats *entities.DeviceStats) error
	Get(deviceID string) (*entities.DeviceStats, error)
}

// Controller serves the sync endpoint routes.
type Controller struct {
	store StatsStore
}

// NewController creates a sync endpoint controller.
func NewController(store StatsStore) *Controller {
	return &Controller{store: store}
}

// NewRouter builds the sync-server router. CORS is wide open: the endpoint
// is anonymous and device-keyed, there is nothing to protect with origins.
func NewRouter(store StatsStore) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type"}
	router.Use(cors.New(corsConfig))

	controller := NewController(store)
	router.POST("/sync", controller.Sync)
	router.GET("/stats/:deviceId", controller.GetStats)
	router.GET("/health", controller.Health)

	router.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "Not Found")
	})

	return router
}

// Sync upserts the pushed snapshot.
// POST /sync
func (ctrl *Controller) Sync(c *gin.Context) {
	var stats entities.DeviceStats
	if err := c.ShouldBindJSON(&stats); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if stats.DeviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "device_id required"})
		return
	}

	if err := ctrl.store.Upsert(&stats); err != nil {
		log.Printf("Sync endpoint: upsert for device %s failed: %v", stats.DeviceID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetStats returns the stored snapshot for a device. An unknown device is
// not an error: the app treats it as "nothing synced yet".
// GET /stats/:deviceId
func (ctrl *Controller) GetStats(c *gin.Context) {
	deviceID := c.Param("deviceId")

	stats, err := ctrl.store.Get(deviceID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	if err != nil {
		log.Printf("Sync endpoint: lookup for device %s failed: %v", deviceID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"found": true, "stats": stats})
}

// Health reports endpoint liveness.
// GET /health
func (ctrl *Controller) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

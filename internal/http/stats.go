package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/quran-companion/internal/entities"
	"github.com/mrlokans/quran-companion/internal/stats"
)

// SnapshotSource computes the current statistics snapshot.
type SnapshotSource interface {
	Snapshot() stats.Snapshot
}

// RemotePuller fetches the snapshot stored on the sync endpoint.
type RemotePuller interface {
	Pull(ctx context.Context, deviceID string) (*entities.DeviceStats, error)
}

// DeviceIdentity yields the stable device identifier.
type DeviceIdentity interface {
	EnsureDeviceID() (string, error)
	GetSyncLastAt() *time.Time
}

type StatsController struct {
	engine   SnapshotSource
	puller   RemotePuller
	identity DeviceIdentity
}

func NewStatsController(engine SnapshotSource, puller RemotePuller, identity DeviceIdentity) *StatsController {
	return &StatsController{engine: engine, puller: puller, identity: identity}
}

// GetStats returns the freshly computed local snapshot.
// GET /api/stats
func (sc *StatsController) GetStats(c *gin.Context) {
	snap := sc.engine.Snapshot()

	resp := gin.H{"stats": snap}
	if last := sc.identity.GetSyncLastAt(); last != nil {
		resp["last_sync"] = last.Format(time.RFC3339)
	}
	c.JSON(http.StatusOK, resp)
}

// GetRemoteStats fetches what the sync endpoint currently holds for this
// device, for comparing against the local snapshot.
// GET /api/stats/remote
func (sc *StatsController) GetRemoteStats(c *gin.Context) {
	if sc.puller == nil {
		respondBadRequest(c, "sync is not configured")
		return
	}

	deviceID, err := sc.identity.EnsureDeviceID()
	if err != nil {
		respondInternalError(c, err, "device id")
		return
	}

	remote, err := sc.puller.Pull(c.Request.Context(), deviceID)
	if err != nil {
		respondInternalError(c, err, "pull remote stats")
		return
	}
	if remote == nil {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"found": true, "stats": remote})
}

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/quran-companion/internal/tasks"
)

// TaskEnqueuer enqueues background tasks.
type TaskEnqueuer interface {
	Add(tasks ...backlite.Task) *backlite.TaskAddOp
}

// TaskStatusReader reports the state of a previously enqueued task.
type TaskStatusReader interface {
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
}

type LifecycleController struct {
	taskClient TaskEnqueuer
	taskStatus TaskStatusReader
}

func NewLifecycleController(taskClient TaskEnqueuer, taskStatus TaskStatusReader) *LifecycleController {
	return &LifecycleController{taskClient: taskClient, taskStatus: taskStatus}
}

// Background enqueues a single stats push when the app leaves the
// foreground. With sync disabled the transition is acknowledged and
// nothing is queued.
// POST /api/lifecycle/background
func (lc *LifecycleController) Background(c *gin.Context) {
	if lc.taskClient == nil {
		respondSuccess(c, "sync disabled, nothing to push")
		return
	}

	ids, err := lc.taskClient.Add(tasks.SyncPushTask{Reason: "background"}).Save()
	if err != nil {
		// The push is best-effort: losing one enqueue costs a sync
		// cycle, not data.
		respondSuccess(c, "push not queued")
		return
	}

	respondAccepted(c, "stats push queued", gin.H{"task_ids": ids})
}

// GetTaskStatus reports whether a queued push has run yet.
// GET /api/lifecycle/tasks/:id
func (lc *LifecycleController) GetTaskStatus(c *gin.Context) {
	if lc.taskStatus == nil {
		respondNotFound(c, "task")
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		respondBadRequest(c, "task id is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := lc.taskStatus.Status(ctx, taskID)
	if err != nil {
		respondInternalError(c, err, "task status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": taskStatusToString(status),
	})
}

func taskStatusToString(status backlite.TaskStatus) string {
	switch status {
	case backlite.TaskStatusPending:
		return "pending"
	case backlite.TaskStatusRunning:
		return "running"
	case backlite.TaskStatusSuccess:
		return "success"
	case backlite.TaskStatusFailure:
		return "failure"
	case backlite.TaskStatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

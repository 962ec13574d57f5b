package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meetscribe-backend/internal/ingest"
	"meetscribe-backend/internal/task/usecase"
)

// TaskHandler handles task-related HTTP requests for the dashboards
type TaskHandler struct {
	taskUsecase     usecase.TaskUsecase
	queueStatusFile string
}

// NewTaskHandler creates a new TaskHandler. queueStatusFile points at
// the ingestion queue's status mirror; the API server reads it without
// sharing memory with the capture process.
func NewTaskHandler(taskUsecase usecase.TaskUsecase, queueStatusFile string) *TaskHandler {
	return &TaskHandler{
		taskUsecase:     taskUsecase,
		queueStatusFile: queueStatusFile,
	}
}

// GetTasks returns all tasks, optionally filtered by status
// GET /api/tasks?status=pending
func (h *TaskHandler) GetTasks(c *gin.Context) {
	status := c.Query("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	tasks, err := h.taskUsecase.GetAllTasks(statusPtr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"total": len(tasks),
	})
}

// GetUserTasks returns all tasks assigned to one user
// GET /api/tasks/user/:userId
func (h *TaskHandler) GetUserTasks(c *gin.Context) {
	userID := c.Param("userId")

	tasks, err := h.taskUsecase.GetUserTasks(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"total": len(tasks),
	})
}

// GetTaskByID returns a specific task
// GET /api/tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	task, err := h.taskUsecase.GetTask(c.Param("id"))
	if err != nil {
		if err.Error() == "task not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTaskStatus moves a task between statuses
// PATCH /api/tasks/:id/status
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateTaskStatus(c.Param("id"), req.Status)
	if err != nil {
		switch err.Error() {
		case "task not found":
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		case "invalid status":
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// GetQueueStatus reports the ingestion queue depth from the durable
// status mirror
// GET /api/queue/status
func (h *TaskHandler) GetQueueStatus(c *gin.Context) {
	c.JSON(http.StatusOK, ingest.ReadFileStatus(h.queueStatusFile))
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meetscribe-backend/internal/notification"
	taskDelivery "meetscribe-backend/internal/task/delivery"
)

func SetupRoutes(r *gin.Engine, taskHandler *taskDelivery.TaskHandler, notifHandler *notification.Handler) {
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Queue status for the dashboards
		api.GET("/queue/status", taskHandler.GetQueueStatus)

		// Task routes
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.GET("/user/:userId", taskHandler.GetUserTasks)
			tasks.GET("/:id", taskHandler.GetTaskByID)
			tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
		}

		// Notification routes
		notifications := api.Group("/notifications")
		{
			notifications.GET("/:userId", notifHandler.GetUnread)
			notifications.PATCH("/:id/read", notifHandler.MarkRead)
			notifications.POST("/tokens", notifHandler.RegisterToken)
		}
	}
}

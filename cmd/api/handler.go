package api

import (
	"github.com/gin-gonic/gin"

	"meetscribe-backend/internal/notification"
	taskDelivery "meetscribe-backend/internal/task/delivery"
	taskRepo "meetscribe-backend/internal/task/repository"
	taskUsecasePkg "meetscribe-backend/internal/task/usecase"
	"meetscribe-backend/pkg/config"
)

type Handler struct {
	router *gin.Engine
}

func NewHandler(taskRepository taskRepo.TaskRepository, notifRepo notification.Repository, cfg *config.Config) *Handler {
	taskUsecase := taskUsecasePkg.NewTaskUsecase(taskRepository)
	taskHandler := taskDelivery.NewTaskHandler(taskUsecase, cfg.QueueStatusFile)
	notifHandler := notification.NewHandler(notifRepo)

	router := gin.Default()
	SetupRoutes(router, taskHandler, notifHandler)

	return &Handler{router: router}
}

// Start runs the HTTP server on the given address
func (h *Handler) Start(addr string) error {
	return h.router.Run(addr)
}

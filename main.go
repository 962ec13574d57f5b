package main

import (
	"log"

	api "meetscribe-backend/cmd/api"
	"meetscribe-backend/internal/notification"
	taskdomain "meetscribe-backend/internal/task/domain"
	taskRepo "meetscribe-backend/internal/task/repository"
	userdomain "meetscribe-backend/internal/user/domain"
	"meetscribe-backend/pkg/config"
	"meetscribe-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&userdomain.User{}, &taskdomain.Task{}, &notification.Notification{}, &notification.DeviceToken{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	taskRepository := taskRepo.NewGormTaskRepository(db)
	notifRepository := notification.NewGormRepository(db)

	// Initialize HTTP handler
	handler := api.NewHandler(taskRepository, notifRepository, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

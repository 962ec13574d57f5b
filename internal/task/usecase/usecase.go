package usecase

import (
	"meetscribe-backend/internal/task/domain"
)

// TaskUsecase defines the interface for task business logic consumed by
// the dashboard endpoints.
type TaskUsecase interface {
	// GetAllTasks retrieves every task with an optional status filter
	GetAllTasks(status *string) ([]*domain.Task, error)

	// GetUserTasks retrieves all tasks assigned to a user
	GetUserTasks(userID string) ([]*domain.Task, error)

	// GetTask retrieves a task by ID
	GetTask(taskID string) (*domain.Task, error)

	// UpdateTaskStatus moves a task between pending/in_progress/completed
	UpdateTaskStatus(taskID, status string) (*domain.Task, error)
}

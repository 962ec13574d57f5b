package repository

import (
	"meetscribe-backend/internal/task/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// CreateTask stores a new task and returns its identifier
	CreateTask(task *domain.Task) (string, error)

	// FindByID finds a task by its ID
	FindByID(id string) (*domain.Task, error)

	// FindByAssignee finds all tasks assigned to a user, newest first
	FindByAssignee(userID string) ([]*domain.Task, error)

	// FindAll finds all tasks with an optional status filter, newest first
	FindAll(status *domain.TaskStatus) ([]*domain.Task, error)

	// UpdateStatus updates a task's status
	UpdateStatus(id string, status domain.TaskStatus) error
}

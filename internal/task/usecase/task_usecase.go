package usecase

import (
	"errors"

	"meetscribe-backend/internal/task/domain"
	"meetscribe-backend/internal/task/repository"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{taskRepo: taskRepo}
}

func (u *taskUsecase) GetAllTasks(status *string) ([]*domain.Task, error) {
	var statusFilter *domain.TaskStatus
	if status != nil && *status != "" {
		s := domain.TaskStatus(*status)
		statusFilter = &s
	}
	return u.taskRepo.FindAll(statusFilter)
}

func (u *taskUsecase) GetUserTasks(userID string) ([]*domain.Task, error) {
	return u.taskRepo.FindByAssignee(userID)
}

func (u *taskUsecase) GetTask(taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, errors.New("task not found")
	}
	return task, nil
}

func (u *taskUsecase) UpdateTaskStatus(taskID, status string) (*domain.Task, error) {
	switch domain.TaskStatus(status) {
	case domain.TaskStatusPending, domain.TaskStatusInProgress, domain.TaskStatusCompleted:
	default:
		return nil, errors.New("invalid status")
	}

	task, err := u.GetTask(taskID)
	if err != nil {
		return nil, err
	}

	if err := u.taskRepo.UpdateStatus(task.ID, domain.TaskStatus(status)); err != nil {
		return nil, err
	}
	task.Status = domain.TaskStatus(status)
	return task, nil
}

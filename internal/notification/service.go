package notification

import (
	"context"
	"fmt"
	"log"

	taskdomain "meetscribe-backend/internal/task/domain"
	"meetscribe-backend/pkg/fcm"
)

// Pusher is the slice of the FCM client the service needs. Nil disables
// push delivery; the persisted notification row is always written.
type Pusher interface {
	SendToDevices(ctx context.Context, tokens []string, notification fcm.NotificationData) ([]string, error)
}

// Service persists assignment notifications and pushes them to the
// assignee's registered devices. It implements the ingestion queue's
// Notifier contract.
type Service struct {
	repo   Repository
	pusher Pusher
}

// NewService creates a notification service. pusher may be nil.
func NewService(repo Repository, pusher Pusher) *Service {
	return &Service{repo: repo, pusher: pusher}
}

// TaskAssigned records exactly one notification for the stored task and
// best-effort pushes it. A push failure does not fail the notification.
func (s *Service) TaskAssigned(task *taskdomain.Task) error {
	n := &Notification{
		UserID:  task.AssigneeID,
		TaskID:  task.ID,
		Message: fmt.Sprintf("New task assigned: %s", task.Description),
		Type:    TypeNewTask,
	}
	if _, err := s.repo.Create(n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	s.push(task, n)
	return nil
}

func (s *Service) push(task *taskdomain.Task, n *Notification) {
	if s.pusher == nil || task.AssigneeID == "" {
		return
	}

	tokens, err := s.repo.TokensByUser(task.AssigneeID)
	if err != nil {
		log.Printf("[Notification] Error getting device tokens for user %s: %v", task.AssigneeID, err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	var tokenStrings []string
	for _, t := range tokens {
		tokenStrings = append(tokenStrings, t.Token)
	}

	data := fcm.NotificationData{
		Title: "New task assigned",
		Body:  n.Message,
		Data: map[string]string{
			"type":    TypeNewTask,
			"task_id": task.ID,
			"role":    string(task.Role),
		},
	}

	failedTokens, err := s.pusher.SendToDevices(context.Background(), tokenStrings, data)
	if err != nil {
		log.Printf("[Notification] Push failed for task %s: %v", task.ID, err)
		return
	}

	// Prune tokens the provider rejected.
	for _, token := range failedTokens {
		if err := s.repo.DeleteToken(token); err != nil {
			log.Printf("[Notification] Error deleting stale token: %v", err)
		}
	}
}

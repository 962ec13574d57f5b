package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	taskdomain "meetscribe-backend/internal/task/domain"
	"meetscribe-backend/pkg/fcm"
)

type memoryRepo struct {
	notifications []*Notification
	tokens        map[string][]*DeviceToken
	deleted       []string
	createErr     error
}

func (r *memoryRepo) Create(n *Notification) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	n.ID = "n1"
	r.notifications = append(r.notifications, n)
	return n.ID, nil
}

func (r *memoryRepo) FindUnread(userID string) ([]*Notification, error) {
	var unread []*Notification
	for _, n := range r.notifications {
		if n.UserID == userID && !n.Read {
			unread = append(unread, n)
		}
	}
	return unread, nil
}

func (r *memoryRepo) MarkRead(id string) error {
	for _, n := range r.notifications {
		if n.ID == id {
			n.Read = true
		}
	}
	return nil
}

func (r *memoryRepo) SaveToken(token *DeviceToken) error { return nil }

func (r *memoryRepo) TokensByUser(userID string) ([]*DeviceToken, error) {
	return r.tokens[userID], nil
}

func (r *memoryRepo) DeleteToken(token string) error {
	r.deleted = append(r.deleted, token)
	return nil
}

type stubPusher struct {
	sent   []fcm.NotificationData
	failed []string
}

func (p *stubPusher) SendToDevices(_ context.Context, tokens []string, n fcm.NotificationData) ([]string, error) {
	p.sent = append(p.sent, n)
	return p.failed, nil
}

func storedTask() *taskdomain.Task {
	return &taskdomain.Task{
		ID:           "t1",
		Description:  "prepare the sales report",
		AssigneeID:   "u1",
		AssigneeName: "Alex",
		Role:         taskdomain.RoleSalesAnalyst,
	}
}

func TestTaskAssignedPersistsNotification(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, nil)

	require.NoError(t, svc.TaskAssigned(storedTask()))
	require.Len(t, repo.notifications, 1)

	n := repo.notifications[0]
	assert.Equal(t, "u1", n.UserID)
	assert.Equal(t, "t1", n.TaskID)
	assert.Equal(t, TypeNewTask, n.Type)
	assert.Equal(t, "New task assigned: prepare the sales report", n.Message)
	assert.False(t, n.Read)
}

func TestTaskAssignedPushesToRegisteredDevices(t *testing.T) {
	repo := &memoryRepo{tokens: map[string][]*DeviceToken{
		"u1": {{Token: "tok-a"}, {Token: "tok-b"}},
	}}
	pusher := &stubPusher{failed: []string{"tok-b"}}
	svc := NewService(repo, pusher)

	require.NoError(t, svc.TaskAssigned(storedTask()))
	require.Len(t, pusher.sent, 1)
	assert.Equal(t, "t1", pusher.sent[0].Data["task_id"])

	// Rejected tokens are pruned.
	assert.Equal(t, []string{"tok-b"}, repo.deleted)
}

func TestTaskAssignedCreateFailureSurfaces(t *testing.T) {
	repo := &memoryRepo{createErr: errors.New("db down")}
	svc := NewService(repo, &stubPusher{})

	err := svc.TaskAssigned(storedTask())
	require.Error(t, err)
	// No push without a stored row.
	assert.Empty(t, repo.notifications)
}

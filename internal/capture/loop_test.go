package capture

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetscribe-backend/internal/ingest"
	taskdomain "meetscribe-backend/internal/task/domain"
	userdomain "meetscribe-backend/internal/user/domain"
	"meetscribe-backend/pkg/speech"
)

// scriptedRecognizer replays a list of listen outcomes, then blocks
// until the context is cancelled.
type scriptedRecognizer struct {
	mu      sync.Mutex
	results []listenResult
}

type listenResult struct {
	text string
	err  error
}

func (r *scriptedRecognizer) Listen(ctx context.Context) (string, error) {
	r.mu.Lock()
	if len(r.results) > 0 {
		next := r.results[0]
		r.results = r.results[1:]
		r.mu.Unlock()
		return next.text, next.err
	}
	r.mu.Unlock()
	<-ctx.Done()
	return "", ctx.Err()
}

type stubExtractor struct {
	byTranscript map[string][]taskdomain.ValidatedTask
}

func (e *stubExtractor) Extract(_ context.Context, transcript string) []taskdomain.ValidatedTask {
	return e.byTranscript[transcript]
}

type stubDirectory struct {
	byRole map[string]*userdomain.User
}

func (d *stubDirectory) FindByName(string) (*userdomain.User, error) { return nil, nil }

func (d *stubDirectory) FindByEmployeeRole(role string) (*userdomain.User, error) {
	return d.byRole[role], nil
}

type recordingStore struct {
	mu      sync.Mutex
	created []*taskdomain.Task
}

func (s *recordingStore) CreateTask(task *taskdomain.Task) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task.ID = "t1"
	copied := *task
	s.created = append(s.created, &copied)
	return task.ID, nil
}

func (s *recordingStore) tasks() []*taskdomain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*taskdomain.Task(nil), s.created...)
}

func TestRunIngestsTranscriptAndStopsQueue(t *testing.T) {
	transcript := "Alex needs to prepare the sales report by tomorrow"
	extractor := &stubExtractor{byTranscript: map[string][]taskdomain.ValidatedTask{
		transcript: {{
			Description: "prepare the sales report",
			Role:        taskdomain.RoleSalesAnalyst,
			Deadline:    "2025-06-12",
			Status:      taskdomain.TaskStatusPending,
		}},
	}}
	recognizer := &scriptedRecognizer{results: []listenResult{
		{err: speech.ErrNoSpeech},
		{err: speech.ErrUnintelligible},
		{err: speech.ErrServiceUnavailable},
		{text: transcript},
	}}
	dir := &stubDirectory{byRole: map[string]*userdomain.User{
		"Sales Analyst": {ID: "u1", Name: "Alex", EmployeeRole: "Sales Analyst"},
	}}

	store := &recordingStore{}
	queue := ingest.NewQueue(store, nil, nil, 8)
	queue.Start()

	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(recognizer, extractor, dir, queue)

	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && len(store.tasks()) == 0 {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop after cancellation")
	}

	created := store.tasks()
	require.Len(t, created, 1)
	assert.Equal(t, "prepare the sales report", created[0].Description)
	assert.Equal(t, "u1", created[0].AssigneeID)
	assert.Equal(t, "Alex", created[0].AssigneeName)

	// Run stopped the queue on the way out; the status snapshot is idle.
	assert.Equal(t, ingest.Status{}, queue.Status())
}

func TestResolveAssigneeSkipsUnstaffedRole(t *testing.T) {
	loop := NewLoop(nil, nil, &stubDirectory{byRole: map[string]*userdomain.User{}}, nil)

	task := taskdomain.ValidatedTask{Description: "design slides", Role: taskdomain.RolePresentationDesigner}
	assert.False(t, loop.resolveAssignee(&task))
}

func TestResolveAssigneeKeepsReconciledAssignee(t *testing.T) {
	loop := NewLoop(nil, nil, &stubDirectory{}, nil)

	task := taskdomain.ValidatedTask{AssigneeID: "u5", AssigneeName: "Maya"}
	require.True(t, loop.resolveAssignee(&task))
	assert.Equal(t, "u5", task.AssigneeID)
	assert.Equal(t, "Maya", task.AssigneeName)
}

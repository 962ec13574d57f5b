package capture

import (
	"context"
	"log"

	"meetscribe-backend/internal/extraction"
	"meetscribe-backend/internal/ingest"
	"meetscribe-backend/internal/task/domain"
	"meetscribe-backend/pkg/speech"
)

// Extractor is the slice of the task extractor the loop consumes.
type Extractor interface {
	Extract(ctx context.Context, transcript string) []domain.ValidatedTask
}

// Loop drives one meeting: listen, extract, resolve assignees, enqueue.
// It owns each transcript only until it is handed to the extractor, and
// each validated task only until the queue accepts it.
type Loop struct {
	recognizer speech.Recognizer
	extractor  Extractor
	users      extraction.UserDirectory
	queue      *ingest.Queue
}

// NewLoop creates a capture loop over the given collaborators.
func NewLoop(recognizer speech.Recognizer, extractor Extractor, users extraction.UserDirectory, queue *ingest.Queue) *Loop {
	return &Loop{
		recognizer: recognizer,
		extractor:  extractor,
		users:      users,
		queue:      queue,
	}
}

// Run listens until ctx is cancelled, then stops the queue before
// returning. Transient capture errors (timeout, unintelligible audio,
// service failure) retry the loop; nothing a single utterance does is
// fatal.
func (l *Loop) Run(ctx context.Context) {
	defer l.queue.Stop()

	log.Println("[Capture] Meeting recording started")
	for {
		if ctx.Err() != nil {
			log.Println("[Capture] Meeting recording stopped")
			return
		}

		transcript, err := l.recognizer.Listen(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("[Capture] Meeting recording stopped")
				return
			}
			if speech.IsTransient(err) {
				continue
			}
			log.Printf("[Capture] Listen error: %v", err)
			continue
		}
		if transcript == "" {
			continue
		}

		log.Printf("[Capture] Transcript: %s", transcript)
		l.ingestTranscript(ctx, transcript)
	}
}

// ingestTranscript extracts tasks from one transcript and enqueues each
// resolvable one.
func (l *Loop) ingestTranscript(ctx context.Context, transcript string) {
	tasks := l.extractor.Extract(ctx, transcript)
	for _, task := range tasks {
		if !l.resolveAssignee(&task) {
			continue
		}

		if err := l.queue.Enqueue(task); err != nil {
			log.Printf("[Capture] Could not queue task %q: %v", task.Description, err)
			continue
		}
		log.Printf("[Capture] Task queued: %s (assignee=%s, due=%s)", task.Description, task.AssigneeName, task.Deadline)
	}
}

// resolveAssignee fills in the assignee for tasks the extractor left
// unresolved by picking any employee holding the task's role. Tasks for
// which nobody holds the role are skipped with a warning.
func (l *Loop) resolveAssignee(task *domain.ValidatedTask) bool {
	if task.AssigneeID != "" {
		return true
	}

	employee, err := l.users.FindByEmployeeRole(string(task.Role))
	if err != nil {
		log.Printf("[Capture] Employee lookup failed for role %q: %v", task.Role, err)
		return false
	}
	if employee == nil {
		log.Printf("[Capture] Warning: no employee found for role: %s", task.Role)
		return false
	}

	task.AssigneeName = employee.Name
	task.AssigneeID = employee.ID
	return true
}

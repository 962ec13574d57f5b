package ingest

import (
	"errors"
	"log"
	"sync"
	"time"

	"meetscribe-backend/internal/task/domain"
)

// TaskStore persists validated tasks. Each call is an independent
// transaction; the single-consumer invariant is the only write
// serialization the queue relies on.
type TaskStore interface {
	CreateTask(task *domain.Task) (string, error)
}

// Notifier tells an assignee about their newly stored task.
type Notifier interface {
	TaskAssigned(task *domain.Task) error
}

// ErrQueueFull is returned by Enqueue when the buffer is at capacity.
// The producer decides whether to drop or back off; the queue never
// blocks it.
var ErrQueueFull = errors.New("ingestion queue is full")

const defaultCapacity = 512

// persistAttempts bounds the in-place retry on storage failures. After
// the last attempt the item is dropped with a log line; there is no
// dead-letter store.
const (
	persistAttempts = 3
	retryBackoff    = 200 * time.Millisecond
)

// Queue is the FIFO handoff between the capture/extraction loop and
// persistence. One background worker drains it in order, persisting
// each task and emitting exactly one notification per stored task.
// Construct it explicitly and share by reference; status mirroring goes
// through the injected sink.
type Queue struct {
	tasks chan domain.ValidatedTask
	store TaskStore
	notif Notifier
	sink  StatusSink

	stopCh  chan struct{}
	wg      sync.WaitGroup
	started bool

	mu       sync.Mutex
	inFlight bool
}

// NewQueue creates a queue with the given capacity (<= 0 selects the
// default). The sink may be nil when no mirror is wanted.
func NewQueue(store TaskStore, notif Notifier, sink StatusSink, capacity int) *Queue {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Queue{
		tasks:  make(chan domain.ValidatedTask, capacity),
		store:  store,
		notif:  notif,
		sink:   sink,
		stopCh: make(chan struct{}),
	}
}

// Start launches the single consumer goroutine.
func (q *Queue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started {
		return
	}
	q.started = true
	q.wg.Add(1)
	go q.worker()
	q.writeStatus()
	log.Println("[IngestQueue] Worker started")
}

// Enqueue appends a validated task to the tail without blocking. The
// caller relinquishes ownership of the task once nil is returned.
func (q *Queue) Enqueue(task domain.ValidatedTask) error {
	select {
	case q.tasks <- task:
		q.writeStatus()
		return nil
	default:
		return ErrQueueFull
	}
}

// Status returns the current queue snapshot. Processing is true while
// the worker holds an item or the buffer is non-empty.
func (q *Queue) Status() Status {
	q.mu.Lock()
	inFlight := q.inFlight
	q.mu.Unlock()
	depth := len(q.tasks)
	return Status{
		QueuedTasks: depth,
		Processing:  inFlight || depth > 0,
	}
}

// Stop signals the worker and blocks until it has joined. The item
// being processed, if any, is completed first; tasks still buffered are
// lost, matching at-most-once semantics across shutdown.
func (q *Queue) Stop() {
	q.mu.Lock()
	if !q.started {
		q.mu.Unlock()
		return
	}
	q.mu.Unlock()

	close(q.stopCh)
	q.wg.Wait()
	q.writeStatus()
	log.Println("[IngestQueue] Worker stopped")
}

func (q *Queue) worker() {
	defer q.wg.Done()

	for {
		// Check the stop signal first so a pending task cannot delay
		// shutdown indefinitely.
		select {
		case <-q.stopCh:
			return
		default:
		}

		select {
		case <-q.stopCh:
			return
		case task := <-q.tasks:
			q.setInFlight(true)
			q.process(task)
			q.setInFlight(false)
			q.writeStatus()
		}
	}
}

func (q *Queue) setInFlight(v bool) {
	q.mu.Lock()
	q.inFlight = v
	q.mu.Unlock()
}

// process stores one task and emits its notification. Persistence
// failures are retried in place a bounded number of times, then the
// item is dropped with a log line.
func (q *Queue) process(task domain.ValidatedTask) {
	record := &domain.Task{
		Description:        task.Description,
		AssigneeID:         task.AssigneeID,
		AssigneeName:       task.AssigneeName,
		Role:               task.Role,
		Deadline:           task.Deadline,
		Status:             task.Status,
		OriginalTranscript: task.OriginalTranscript,
		CreatedAt:          task.CreatedAt,
	}

	var (
		id  string
		err error
	)
	for attempt := 1; attempt <= persistAttempts; attempt++ {
		id, err = q.store.CreateTask(record)
		if err == nil {
			break
		}
		log.Printf("[IngestQueue] Store attempt %d/%d failed for task %q: %v", attempt, persistAttempts, task.Description, err)
		if attempt < persistAttempts {
			time.Sleep(time.Duration(attempt) * retryBackoff)
		}
	}
	if err != nil {
		log.Printf("[IngestQueue] Dropping task %q after %d failed attempts", task.Description, persistAttempts)
		return
	}

	log.Printf("[IngestQueue] Task stored: id=%s assignee=%s", id, task.AssigneeName)

	if q.notif != nil {
		if err := q.notif.TaskAssigned(record); err != nil {
			log.Printf("[IngestQueue] Notification failed for task %s: %v", id, err)
		}
	}
}

func (q *Queue) writeStatus() {
	if q.sink == nil {
		return
	}
	if err := q.sink.Write(q.Status()); err != nil {
		log.Printf("[IngestQueue] Error updating queue status: %v", err)
	}
}

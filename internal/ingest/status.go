package ingest

import (
	"encoding/json"
	"log"
	"os"
	"sync"
)

// Status is a point-in-time snapshot of the ingestion queue, the shape
// dashboards read: depth plus whether work is still outstanding.
type Status struct {
	QueuedTasks int  `json:"queued_tasks"`
	Processing  bool `json:"processing"`
}

// StatusSink receives the queue status after every enqueue and dequeue.
// Sinks are best-effort: a write failure never blocks the pipeline.
type StatusSink interface {
	Write(status Status) error
}

// FileSink mirrors the queue status to a JSON file so out-of-process
// dashboard readers can observe depth without sharing memory with the
// pipeline.
type FileSink struct {
	path string
}

// NewFileSink creates a sink writing to the given path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Write(status Status) error {
	data, err := json.Marshal(status)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// ReadFileStatus reads a mirrored status file, returning a zero status
// when the file is missing or unreadable.
func ReadFileStatus(path string) Status {
	data, err := os.ReadFile(path)
	if err != nil {
		return Status{}
	}
	var status Status
	if err := json.Unmarshal(data, &status); err != nil {
		log.Printf("[Ingest] Invalid status file %s: %v", path, err)
		return Status{}
	}
	return status
}

// MemorySink records the latest status in memory. Used by tests and by
// the API server when no file mirror is configured.
type MemorySink struct {
	mu     sync.Mutex
	last   Status
	writes int
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Write(status Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = status
	s.writes++
	return nil
}

// Last returns the most recently written status.
func (s *MemorySink) Last() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Writes returns how many times the sink has been written.
func (s *MemorySink) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

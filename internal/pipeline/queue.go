package pipeline

import (
	"sync"

	"lazytail/internal/core"
)

// DefaultQueueCapacity bounds the hand-off queue when no capacity is
// configured.
const DefaultQueueCapacity = 20000

// Queue is the bounded hand-off between the ingestion goroutine and the UI
// loop. It is the only structure both goroutines touch. The producer never
// waits for room: a full queue rejects the incoming entry.
type Queue struct {
	mu      sync.Mutex
	entries []core.LogEntry
	cap     int
}

// NewQueue returns a queue holding at most capacity entries.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Queue{cap: capacity}
}

// TryPush appends e unless the queue is full. It never blocks and reports
// whether the entry was accepted.
func (q *Queue) TryPush(e core.LogEntry) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.entries) >= q.cap {
		return false
	}
	q.entries = append(q.entries, e)
	return true
}

// Drain removes and returns everything buffered, oldest first. It returns nil
// when the queue is empty and never blocks.
func (q *Queue) Drain() []core.LogEntry {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.entries
	q.entries = nil
	return out
}

// Len reports how many entries are currently buffered.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

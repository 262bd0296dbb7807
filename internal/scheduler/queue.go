package scheduler

import (
	"fmt"
	"log/slog"
	"sync"
)

// item pairs a scheduled task with the handle its waiters hold.
type item struct {
	handle *Handle
}

// queue is a bounded buffer of scheduled work. Workers consume from the
// channel; Submit fails fast with ErrQueueFull rather than blocking.
type queue struct {
	items  chan *item
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

// newQueue creates a queue with the specified buffer size
func newQueue(size int, logger *slog.Logger) *queue {
	return &queue{
		items:  make(chan *item, size),
		logger: logger,
	}
}

// enqueue adds an item to the queue, failing if the queue is full or closed.
func (q *queue) enqueue(it *item) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.items <- it:
		q.logger.Debug("task enqueued",
			"task_id", it.handle.task.ID(),
			"queue_len", len(q.items),
			"queue_cap", cap(q.items))
		return nil
	default:
		return fmt.Errorf("%w: queue capacity %d reached", ErrQueueFull, cap(q.items))
	}
}

// close closes the queue, preventing further submission. Items already
// queued remain readable until drained.
func (q *queue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.items)
		q.logger.Debug("task queue closed")
	}
}

// channel returns a read-only channel for consuming queued items
func (q *queue) channel() <-chan *item {
	return q.items
}

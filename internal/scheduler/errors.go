package scheduler

import "errors"

// Common errors returned by the scheduler.
var (
	// ErrQueueFull is returned by Submit when the eager queue has no room.
	ErrQueueFull = errors.New("task queue is full")

	// ErrQueueClosed is returned by Submit after Stop.
	ErrQueueClosed = errors.New("task queue is closed")

	// ErrNilTask is returned by Submit when given a nil task.
	ErrNilTask = errors.New("nil task")
)

package scheduler

import (
	"context"
	"sync"

	"github.com/phrazzld/handoff/internal/deferred"
)

// Handle is the caller's view of a scheduled task's eventual result. Wait
// blocks until the single invocation completes; for a lazily scheduled task
// the first Wait is also what triggers the invocation. Any number of
// goroutines may Wait on the same handle; all observe the same result.
type Handle struct {
	task *deferred.Task
	lazy bool

	runOnce sync.Once
	done    chan struct{}
	result  string
	err     error
}

func newHandle(task *deferred.Task, lazy bool) *Handle {
	return &Handle{
		task: task,
		lazy: lazy,
		done: make(chan struct{}),
	}
}

// run performs the task's single invocation. The sync.Once plus the task's
// own state machine give run-exactly-once even if an eager worker and a
// waiter race; closing done publishes the result to every waiter.
func (h *Handle) run(ctx context.Context) {
	h.runOnce.Do(func() {
		h.result, h.err = h.task.Invoke(ctx)
		close(h.done)
	})
}

// Wait blocks until the task has been invoked and returns its result. It
// returns ctx's error if the context ends first; the task itself is not
// cancelled and a later Wait can still observe its result.
func (h *Handle) Wait(ctx context.Context) (string, error) {
	if h.lazy {
		h.run(ctx)
	}

	select {
	case <-h.done:
		return h.result, h.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Done returns a channel that is closed once the invocation has completed.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sourcegraph/conc"

	"github.com/phrazzld/handoff/internal/deferred"
)

// Mode selects when a submitted task's invocation runs.
type Mode string

// Possible scheduling modes.
const (
	// ModeEager enqueues the task immediately; a pool worker invokes it as
	// soon as one is free.
	ModeEager Mode = "eager"

	// ModeLazy defers the invocation until the first Wait on the handle.
	ModeLazy Mode = "lazy"
)

// Delivery selects how a submitted task's captured payload reaches the
// worker that runs it.
type Delivery string

// Possible delivery modes.
const (
	// DeliveryShared hands the task over by pointer. Zero payload
	// operations: the delivery path is fully transfer-aware.
	DeliveryShared Delivery = "shared"

	// DeliveryRehome re-stores the captured payload on submit, the way a
	// mechanism that copies values into its own structures would. Copy
	// policy tasks pay an extra duplication, move-policy tasks an extra
	// transfer.
	DeliveryRehome Delivery = "rehome"
)

// Config holds configuration options for the scheduler
type Config struct {
	// WorkerCount determines how many concurrent workers invoke eager tasks.
	// If zero or negative, defaults to 1.
	WorkerCount int

	// QueueSize determines the buffer size for the eager task queue
	QueueSize int

	// Mode selects eager or lazy invocation
	Mode Mode

	// Delivery selects shared or rehome payload delivery
	Delivery Delivery
}

// DefaultConfig returns a Config with reasonable defaults
func DefaultConfig() Config {
	return Config{
		WorkerCount: 2,
		QueueSize:   100,
		Mode:        ModeEager,
		Delivery:    DeliveryShared,
	}
}

// Scheduler runs deferred tasks under a fixed mode and delivery policy. Its
// lifecycle is Start, any number of Submits, Stop; Stop drains queued tasks
// before returning so every issued handle completes.
type Scheduler struct {
	cfg    Config
	queue  *queue
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     conc.WaitGroup
}

// New creates a scheduler with the given configuration
func New(cfg Config, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.WorkerCount <= 0 {
		logger.Warn("invalid worker count specified, using default",
			"specified_count", cfg.WorkerCount,
			"default_count", 1)
		cfg.WorkerCount = 1
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeEager
	}
	if cfg.Delivery == "" {
		cfg.Delivery = DeliveryShared
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cfg:    cfg,
		queue:  newQueue(cfg.QueueSize, logger),
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start launches the worker pool. Lazy-mode schedulers never enqueue, so
// their workers simply idle until Stop.
func (s *Scheduler) Start() {
	for i := 0; i < s.cfg.WorkerCount; i++ {
		id := i
		s.wg.Go(func() {
			s.worker(id)
		})
	}
}

// Stop shuts the scheduler down: no further submissions are accepted, and
// Stop blocks until the workers have drained every task already queued.
func (s *Scheduler) Stop() {
	s.queue.close()
	s.wg.Wait()
	s.cancel()
}

// Submit schedules a task and returns the handle to its eventual result.
// The capture-time payload operations already happened inside deferred.New;
// Submit only adds the delivery cost, if any, before the task leaves the
// caller's goroutine. In eager mode Submit fails with ErrQueueFull or
// ErrQueueClosed when the queue cannot accept the task.
func (s *Scheduler) Submit(task *deferred.Task) (*Handle, error) {
	if task == nil {
		return nil, ErrNilTask
	}

	if s.cfg.Delivery == DeliveryRehome {
		if err := task.Rehome(); err != nil {
			return nil, fmt.Errorf("re-homing payload on submit: %w", err)
		}
	}

	h := newHandle(task, s.cfg.Mode == ModeLazy)

	if s.cfg.Mode == ModeLazy {
		s.logger.Debug("task registered for lazy invocation",
			"task_id", task.ID(),
			"policy", task.Policy())
		return h, nil
	}

	if err := s.queue.enqueue(&item{handle: h}); err != nil {
		return nil, err
	}
	return h, nil
}

// worker invokes tasks from the queue until it is closed and drained.
func (s *Scheduler) worker(id int) {
	logger := s.logger.With("worker_id", id)
	logger.Debug("starting worker")

	for it := range s.queue.channel() {
		taskLogger := logger.With(
			"task_id", it.handle.task.ID(),
			"policy", it.handle.task.Policy())

		taskLogger.Info("invoking task")
		it.handle.run(s.ctx)

		if it.handle.err != nil {
			taskLogger.Error("task invocation failed", "error", it.handle.err)
		} else {
			taskLogger.Info("task completed")
		}
	}

	logger.Debug("task channel closed, stopping worker")
}

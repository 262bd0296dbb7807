// Package main demonstrates the three capture policies for handing a payload
// to a deferred task: by-reference, by-value-copy, and by-value-move. It
// replays the same scenario under each policy and logs the duplication and
// transfer counts the journey produced.
package main

import (
	"context"
	"log"
	"log/slog"
	"strings"

	"github.com/phrazzld/handoff/internal/capture"
	"github.com/phrazzld/handoff/internal/config"
	"github.com/phrazzld/handoff/internal/deferred"
	"github.com/phrazzld/handoff/internal/platform/logger"
	"github.com/phrazzld/handoff/internal/scheduler"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("demo failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logg, err := logger.Setup(cfg.Log)
	if err != nil {
		return err
	}

	logg.Info("configuration loaded",
		"log_level", cfg.Log.Level,
		"worker_count", cfg.Scheduler.WorkerCount,
		"queue_size", cfg.Scheduler.QueueSize,
		"mode", cfg.Scheduler.Mode,
		"delivery", cfg.Scheduler.Delivery)

	sched := scheduler.New(scheduler.Config{
		WorkerCount: cfg.Scheduler.WorkerCount,
		QueueSize:   cfg.Scheduler.QueueSize,
		Mode:        scheduler.Mode(cfg.Scheduler.Mode),
		Delivery:    scheduler.Delivery(cfg.Scheduler.Delivery),
	}, logg)
	sched.Start()
	defer sched.Stop()

	policies := []deferred.Policy{
		deferred.PolicyByReference,
		deferred.PolicyByValueCopy,
		deferred.PolicyByValueMove,
	}
	for _, policy := range policies {
		if err := demonstrate(sched, logg, policy); err != nil {
			return err
		}
	}

	return nil
}

// demonstrate captures "Hello world." under the given policy, ends the
// originating scope where that is safe, and waits for the deferred result.
func demonstrate(sched *scheduler.Scheduler, logg *slog.Logger, policy deferred.Policy) error {
	meter := capture.NewMeter()
	state := capture.New(meter, "Hello world.")

	task, err := deferred.New(policy, state, func(_ context.Context, payload string) (string, error) {
		return strings.ToUpper(payload), nil
	}, logg)
	if err != nil {
		return err
	}

	// The by-value policies own their payload, so the original may be
	// discarded before the task runs. Under by-reference the referent must
	// outlive the invocation, so the scope stays open until Wait returns.
	if policy != deferred.PolicyByReference {
		state.Discard()
	}

	handle, err := sched.Submit(task)
	if err != nil {
		return err
	}

	result, err := handle.Wait(context.Background())
	if err != nil {
		return err
	}

	counts := meter.Counts()
	logg.Info("scenario complete",
		"policy", policy,
		"result", result,
		"duplications", counts.Duplicates,
		"transfers", counts.Transfers,
		"discards", counts.Discards)

	return nil
}

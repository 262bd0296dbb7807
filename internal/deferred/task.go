package deferred

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/handoff/internal/capture"
)

// Policy selects how a task acquires its payload at construction time.
type Policy string

// Possible capture policies.
const (
	// PolicyByReference stores an indirection to the caller's state. It
	// performs zero duplications and zero transfers, and in exchange the
	// caller must guarantee the referent outlives every invocation of the
	// task. Violating that is a lifetime error this package cannot detect;
	// the by-value policies exist to eliminate it.
	PolicyByReference Policy = "by_reference"

	// PolicyByValueCopy duplicates the state once at construction. The task
	// owns an independent payload and is safe regardless of what happens to
	// the caller's original, at the cost of one duplication plus whatever
	// the delivery mechanism adds on top (see Rehome).
	PolicyByValueCopy Policy = "by_value_copy"

	// PolicyByValueMove transfers the state once at construction, emptying
	// the caller's original. Same safety as by-value-copy, but the cost is
	// transfers only — never duplications — as long as every step of the
	// payload's journey into the task is itself transfer-aware.
	PolicyByValueMove Policy = "by_value_move"
)

// Status represents the current state of a task
type Status string

// Possible task status values
const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Action is the work bound to a task at construction. It receives the
// captured payload when the task is invoked.
type Action func(ctx context.Context, payload string) (string, error)

// Task is a single-shot callable bound to a capture policy, a payload (or a
// reference to one), and an action. It transitions Pending -> Completed on
// its one invocation; there are no other transitions.
type Task struct {
	id     uuid.UUID
	policy Policy
	action Action
	logger *slog.Logger

	// ref is set for by-reference capture, owned for the by-value policies.
	ref   *capture.State
	owned *capture.State

	mu     sync.Mutex
	status Status
}

// New creates a task that captures src under the given policy and will run
// action when invoked. Capture-time duplication or transfer happens here,
// before New returns, so it happens-before any possible invocation.
func New(policy Policy, src *capture.State, action Action, logger *slog.Logger) (*Task, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if action == nil {
		return nil, ErrNilAction
	}
	if logger == nil {
		logger = slog.Default()
	}

	t := &Task{
		id:     uuid.New(),
		policy: policy,
		action: action,
		logger: logger,
		status: StatusPending,
	}

	switch policy {
	case PolicyByReference:
		t.ref = src

	case PolicyByValueCopy:
		owned, err := capture.DuplicateFrom(src)
		if err != nil {
			return nil, fmt.Errorf("duplicating payload into task: %w", err)
		}
		t.owned = owned

	case PolicyByValueMove:
		owned, err := capture.TransferFrom(src)
		if err != nil {
			return nil, fmt.Errorf("transferring payload into task: %w", err)
		}
		t.owned = owned

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}

	logger.Debug("task created",
		"task_id", t.id,
		"policy", policy)

	return t, nil
}

// ID returns the task's unique identifier
func (t *Task) ID() uuid.UUID {
	return t.id
}

// Policy returns the capture policy the task was constructed with
func (t *Task) Policy() Policy {
	return t.policy
}

// Status returns the current task status
func (t *Task) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Invoke runs the bound action against the captured payload. It succeeds at
// most once: the first call transitions the task to Completed, and every
// later call fails with ErrAlreadyInvoked. A failed first invocation is
// terminal too; there is no retry.
//
// For a by-reference task, invoking after the referent's owning scope ended
// is unspecified: the action observes whatever the referent holds now, which
// is not the originally captured value. That hazard is documented, not
// guarded.
func (t *Task) Invoke(ctx context.Context) (string, error) {
	t.mu.Lock()
	if t.status == StatusCompleted {
		t.mu.Unlock()
		return "", fmt.Errorf("%w: task %s", ErrAlreadyInvoked, t.id)
	}
	t.status = StatusCompleted
	t.mu.Unlock()

	state := t.owned
	if t.policy == PolicyByReference {
		state = t.ref
	}

	payload, err := state.Read()
	if err != nil {
		return "", fmt.Errorf("reading captured payload: %w", err)
	}

	t.logger.Debug("invoking task",
		"task_id", t.id,
		"policy", t.policy)

	result, err := t.action(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("task action failed: %w", err)
	}
	return result, nil
}

// Rehome re-homes the owned payload into a fresh slot, the way a delivery
// mechanism that stores captured values in its own structures would. A
// copy-policy task pays one additional duplication, a move-policy task one
// additional transfer, and a by-reference task is untouched — the exact
// mechanism-dependent "one or more" cost a caller budgets for when choosing
// a policy. Rehome is only legal while the task is Pending.
func (t *Task) Rehome() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status == StatusCompleted {
		return fmt.Errorf("%w: task %s", ErrAlreadyInvoked, t.id)
	}

	switch t.policy {
	case PolicyByReference:
		return nil

	case PolicyByValueCopy:
		owned, err := capture.DuplicateFrom(t.owned)
		if err != nil {
			return fmt.Errorf("re-homing payload: %w", err)
		}
		t.owned = owned

	case PolicyByValueMove:
		owned, err := capture.TransferFrom(t.owned)
		if err != nil {
			return fmt.Errorf("re-homing payload: %w", err)
		}
		t.owned = owned
	}

	return nil
}

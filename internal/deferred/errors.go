package deferred

import "errors"

// Common errors returned by task construction and invocation.
var (
	// ErrAlreadyInvoked is returned when Invoke is called on a completed
	// task. The caller may treat it as a no-op; the task's result is not
	// re-observable through a second invocation.
	ErrAlreadyInvoked = errors.New("task already invoked")

	// ErrNilSource is returned when a task is constructed without a state
	// to capture.
	ErrNilSource = errors.New("nil capture source")

	// ErrNilAction is returned when a task is constructed without an action.
	ErrNilAction = errors.New("nil action")

	// ErrUnknownPolicy is returned when the capture policy is not one of
	// PolicyByReference, PolicyByValueCopy, or PolicyByValueMove.
	ErrUnknownPolicy = errors.New("unknown capture policy")
)

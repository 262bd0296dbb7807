package capture

import "errors"

// Common errors returned by capture operations.
var (
	// ErrUseAfterEmpty is returned when a payload is read after a transfer
	// emptied it and it was never reassigned. This indicates a programming
	// defect in the caller, not a recoverable condition.
	ErrUseAfterEmpty = errors.New("payload read after being emptied by a transfer")

	// ErrNilState is returned when an operation receives a nil source state.
	ErrNilState = errors.New("nil capture state")
)

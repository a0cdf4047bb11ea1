package engine

import "errors"

var (
	// ErrTimeout is returned when a deadline set via WithDeadline/WithTimeout
	// has elapsed.
	ErrTimeout = errors.New("engine: deadline exceeded")

	// ErrInUse is returned by Acquire when the Engine is already held by
	// another in-flight call. An Engine is confined to one goroutine at a
	// time (spec.md §5); Acquire/Release make that exclusivity explicit
	// instead of relying on caller discipline alone.
	ErrInUse = errors.New("engine: already in use")
)

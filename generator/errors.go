package generator

import "errors"

var (
	// ErrNonPositiveDivisor is returned when Point/ClosurePoint is built with
	// a non-positive divisor.
	ErrNonPositiveDivisor = errors.New("generator: divisor must be positive")

	// ErrMalformedRow is returned by FromRow when the row cannot be
	// interpreted as any valid generator kind.
	ErrMalformedRow = errors.New("generator: malformed row")
)

package mip

import "errors"

var (
	// ErrDimensionMismatch is returned when a constraint's coefficient slice
	// does not match the problem's declared variable count.
	ErrDimensionMismatch = errors.New("mip: coefficient count does not match problem dimension")
	// ErrNodeLimitExceeded is returned when branch-and-bound exhausts its
	// node budget before reaching a verdict. It should not occur for the
	// small systems contains_integer_point builds; it exists as a
	// termination backstop rather than a silent wrong answer.
	ErrNodeLimitExceeded = errors.New("mip: branch-and-bound node budget exceeded")
	// errUnboundedPhase1 signals a phase-1 simplex run with no valid leaving
	// row, which cannot happen for a sum-of-artificials objective (bounded
	// below by zero) unless the tableau was built incorrectly.
	errUnboundedPhase1 = errors.New("mip: internal error: unbounded phase-1 simplex")
)

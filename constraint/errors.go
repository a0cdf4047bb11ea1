package constraint

import "errors"

var (
	// ErrStrictOnClosed names a strict inequality requested without
	// NotNecessarilyClosed topology. No function of this package returns
	// it; system.ConstraintSystem.Insert reports that case as
	// system.ErrStrictOnClosed.
	ErrStrictOnClosed = errors.New("constraint: strict inequality requires NOT_NECESSARILY_CLOSED topology")

	// ErrMalformedRow is returned by FromRow when the row's epsilon column
	// (for a RayOrPointOrInequality NNC row) is neither 0 nor negative.
	ErrMalformedRow = errors.New("constraint: malformed epsilon column")
)

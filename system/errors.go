package system

import "errors"

var (
	// ErrStrictOnClosed is returned by ConstraintSystem.Insert when a
	// non-trivially-false strict inequality is inserted into a
	// NecessarilyClosed system.
	ErrStrictOnClosed = errors.New("system: strict inequality rejected by NECESSARILY_CLOSED constraint system")

	// ErrInvalidGenerator is returned by GeneratorSystem.Insert when the
	// first generator inserted into an empty system is not a Point.
	ErrInvalidGenerator = errors.New("system: first generator of an empty generator system must be a point")

	// ErrMissingPoint is returned by GeneratorSystem.Validate when a
	// non-empty closed generator system has no Point row.
	ErrMissingPoint = errors.New("system: non-empty generator system has no point")

	// ErrMismatchedClosurePoint is returned by GeneratorSystem.Validate when
	// an NNC generator system has a Point with no matching ClosurePoint (or
	// vice versa).
	ErrMismatchedClosurePoint = errors.New("system: point without matching closure point")

	// ErrNonTautologicalCongruence names the rejection of a proper
	// (non-equality) congruence where only equalities are accepted. No
	// function of this package returns it; CongruenceSystem.Insert accepts
	// every congruence.
	ErrNonTautologicalCongruence = errors.New("system: proper congruence rejected")
)

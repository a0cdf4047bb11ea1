package linsys

import "errors"

var (
	// ErrDimensionMismatch is returned when a row's space dimension exceeds
	// the system's and Insert cannot pad it without loss.
	ErrDimensionMismatch = errors.New("linsys: row space dimension exceeds system's")

	// ErrTopologyMismatch is returned when a row's topology cannot be
	// adjusted to the system's without loss (e.g. a strict row into a
	// necessarily-closed system).
	ErrTopologyMismatch = errors.New("linsys: row topology incompatible with system")

	// ErrUnsortedMerge is returned by MergeRowsAssign when either operand's
	// non-pending prefix is not marked sorted.
	ErrUnsortedMerge = errors.New("linsys: merge requires both systems sorted")

	// ErrIndexOutOfRange is returned by row-index accessors/mutators given
	// an out-of-range index.
	ErrIndexOutOfRange = errors.New("linsys: row index out of range")
)

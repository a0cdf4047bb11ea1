package row

import "errors"

var (
	// ErrEpsilonOnClosed is returned when code tries to read or write the
	// epsilon column of a NecessarilyClosed row.
	ErrEpsilonOnClosed = errors.New("row: no epsilon column on a necessarily-closed row")

	// ErrTopologyMismatch is returned when two rows with incompatible
	// topologies are combined.
	ErrTopologyMismatch = errors.New("row: topology mismatch")
)

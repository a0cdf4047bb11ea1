package grid

import "errors"

// Error taxonomy per spec.md §7, mirroring polyhedron's sentinels.
var (
	ErrDimIncompat    = errors.New("grid: space dimension incompatible")
	ErrInvalidArg     = errors.New("grid: invalid argument")
	ErrDivByZero      = errors.New("grid: division by zero")
	ErrInternalBroken = errors.New("grid: internal invariant broken")
)

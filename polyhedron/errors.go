package polyhedron

import "errors"

// Error taxonomy per spec.md §7. These are sentinels, not types: callers
// distinguish kinds with errors.Is.
var (
	ErrDimIncompat    = errors.New("polyhedron: space dimension incompatible")
	ErrTopoIncompat   = errors.New("polyhedron: topology incompatible")
	ErrInvalidArg     = errors.New("polyhedron: invalid argument")
	ErrDivByZero      = errors.New("polyhedron: division by zero")
	ErrInvalidMap     = errors.New("polyhedron: invalid space dimension map")
	ErrIOMalformed    = errors.New("polyhedron: malformed ascii input")
	ErrInternalBroken = errors.New("polyhedron: internal invariant broken")
)

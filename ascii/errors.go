package ascii

import "errors"

var (
	// ErrMalformed is returned by Load routines (and underlies IO_MALFORMED
	// in spec.md §7) whenever the input does not match the expected token
	// shape.
	ErrMalformed = errors.New("ascii: malformed input")

	// ErrNotSpaceDim names input that does not start with the mandatory
	// "space_dim" token. No function of this package returns it.
	ErrNotSpaceDim = errors.New("ascii: input does not start with space_dim")
)

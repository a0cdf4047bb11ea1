package scalarprod

import "errors"

// ErrDimensionMismatch is returned when the first row's column count exceeds
// the second's (the contract requires space_dim(x) <= space_dim(y)).
var ErrDimensionMismatch = errors.New("scalarprod: first operand has larger space dimension than second")

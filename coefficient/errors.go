package coefficient

import "errors"

// ErrDivisionByZero is returned by DivFloor and DivTrunc when the divisor is zero.
var ErrDivisionByZero = errors.New("coefficient: division by zero")

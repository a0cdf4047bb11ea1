package gridgen

import "errors"

// ErrNonPositiveDivisor is returned when Point is built with a non-positive divisor.
var ErrNonPositiveDivisor = errors.New("gridgen: divisor must be positive")

// ErrMalformedRow is returned by FromRow when the row's divisor is negative.
var ErrMalformedRow = errors.New("gridgen: malformed divisor column")

package congruence

import "errors"

// ErrNegativeModulus is returned when New is called with a negative modulus.
var ErrNegativeModulus = errors.New("congruence: modulus must be non-negative")

package coefficient

import "math/big"

// Coefficient is an arbitrary-precision signed integer. The zero value is 0
// and is ready to use. Coefficient is a value type: every operation returns
// a freshly allocated result and never mutates its receiver or arguments,
// so callers may freely copy and share Coefficient values.
type Coefficient struct {
	v big.Int
}

// FromInt64 builds a Coefficient from a machine integer.
func FromInt64(n int64) Coefficient {
	var c Coefficient
	c.v.SetInt64(n)
	return c
}

// FromBigInt builds a Coefficient from a *big.Int, copying its value.
func FromBigInt(n *big.Int) Coefficient {
	var c Coefficient
	c.v.Set(n)
	return c
}

// Zero is the additive identity.
func Zero() Coefficient { return Coefficient{} }

// One is the multiplicative identity.
func One() Coefficient { return FromInt64(1) }

// BigInt returns a copy of the underlying *big.Int, safe for the caller to mutate.
func (c Coefficient) BigInt() *big.Int {
	return new(big.Int).Set(&c.v)
}

// Add returns c + other.
func (c Coefficient) Add(other Coefficient) Coefficient {
	var z Coefficient
	z.v.Add(&c.v, &other.v)
	return z
}

// Sub returns c - other.
func (c Coefficient) Sub(other Coefficient) Coefficient {
	var z Coefficient
	z.v.Sub(&c.v, &other.v)
	return z
}

// Mul returns c * other.
func (c Coefficient) Mul(other Coefficient) Coefficient {
	var z Coefficient
	z.v.Mul(&c.v, &other.v)
	return z
}

// Neg returns -c.
func (c Coefficient) Neg() Coefficient {
	var z Coefficient
	z.v.Neg(&c.v)
	return z
}

// Abs returns |c|.
func (c Coefficient) Abs() Coefficient {
	var z Coefficient
	z.v.Abs(&c.v)
	return z
}

// Sign returns -1, 0, or +1 per the sign of c.
func (c Coefficient) Sign() int {
	return c.v.Sign()
}

// IsZero reports whether c == 0.
func (c Coefficient) IsZero() bool {
	return c.v.Sign() == 0
}

// Cmp returns -1, 0, or +1 according to whether c < other, c == other, c > other.
func (c Coefficient) Cmp(other Coefficient) int {
	return c.v.Cmp(&other.v)
}

// Equal reports whether c == other.
func (c Coefficient) Equal(other Coefficient) bool {
	return c.v.Cmp(&other.v) == 0
}

// DivFloor returns the quotient of c / divisor rounded toward negative
// infinity, i.e. c == q*divisor + r with 0 <= r < |divisor| when divisor > 0,
// and divisor < r <= 0 when divisor < 0.
//
// Returns ErrDivisionByZero when divisor is zero.
func (c Coefficient) DivFloor(divisor Coefficient) (Coefficient, error) {
	if divisor.IsZero() {
		return Coefficient{}, ErrDivisionByZero
	}
	var q, r big.Int
	q.QuoRem(&c.v, &divisor.v, &r)
	if r.Sign() != 0 && (r.Sign() < 0) != (divisor.v.Sign() < 0) {
		q.Sub(&q, big.NewInt(1))
	}
	return Coefficient{v: q}, nil
}

// DivTrunc returns the quotient of c / divisor rounded toward zero.
//
// Returns ErrDivisionByZero when divisor is zero.
func (c Coefficient) DivTrunc(divisor Coefficient) (Coefficient, error) {
	if divisor.IsZero() {
		return Coefficient{}, ErrDivisionByZero
	}
	var q big.Int
	q.Quo(&c.v, &divisor.v)
	return Coefficient{v: q}, nil
}

// GCD returns the non-negative greatest common divisor of c and other.
// GCD(0, 0) is 0.
func (c Coefficient) GCD(other Coefficient) Coefficient {
	var z Coefficient
	z.v.GCD(nil, nil, new(big.Int).Abs(&c.v), new(big.Int).Abs(&other.v))
	return z
}

// String renders the decimal representation of c.
func (c Coefficient) String() string {
	return c.v.String()
}

// SetString parses s in the given base (0 means auto-detect per
// strconv.ParseInt rules) and returns the Coefficient and whether parsing
// succeeded.
func SetString(s string, base int) (Coefficient, bool) {
	var c Coefficient
	_, ok := c.v.SetString(s, base)
	return c, ok
}

package coefficient_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polylat/polylat/coefficient"
)

func TestArithmetic(t *testing.T) {
	r := require.New(t)

	a := coefficient.FromInt64(7)
	b := coefficient.FromInt64(3)

	r.Equal("10", a.Add(b).String())
	r.Equal("4", a.Sub(b).String())
	r.Equal("21", a.Mul(b).String())
	r.Equal("-7", a.Neg().String())
	r.True(coefficient.Zero().IsZero())
	r.Equal(1, a.Sign())
	r.Equal(-1, a.Neg().Sign())
}

func TestDivFloorAndTrunc(t *testing.T) {
	r := require.New(t)

	cases := []struct {
		x, y            int64
		floor, trunc    int64
	}{
		{7, 2, 3, 3},
		{-7, 2, -4, -3},
		{7, -2, -4, -3},
		{-7, -2, 3, 3},
	}
	for _, c := range cases {
		x := coefficient.FromInt64(c.x)
		y := coefficient.FromInt64(c.y)

		f, err := x.DivFloor(y)
		r.NoError(err)
		r.Equal(c.floor, mustInt64(f), "floor(%d/%d)", c.x, c.y)

		tr, err := x.DivTrunc(y)
		r.NoError(err)
		r.Equal(c.trunc, mustInt64(tr), "trunc(%d/%d)", c.x, c.y)
	}
}

func TestDivisionByZero(t *testing.T) {
	r := require.New(t)
	x := coefficient.FromInt64(5)

	_, err := x.DivFloor(coefficient.Zero())
	r.ErrorIs(err, coefficient.ErrDivisionByZero)

	_, err = x.DivTrunc(coefficient.Zero())
	r.ErrorIs(err, coefficient.ErrDivisionByZero)
}

func TestGCD(t *testing.T) {
	r := require.New(t)

	a := coefficient.FromInt64(12)
	b := coefficient.FromInt64(18)
	r.Equal("6", a.GCD(b).String())

	r.True(coefficient.Zero().GCD(coefficient.Zero()).IsZero())
}

func mustInt64(c coefficient.Coefficient) int64 {
	return c.BigInt().Int64()
}

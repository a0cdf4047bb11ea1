package mip_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/mip"
)

func coeffs(vs ...int64) []coefficient.Coefficient {
	out := make([]coefficient.Coefficient, len(vs))
	for i, v := range vs {
		out[i] = coefficient.FromInt64(v)
	}
	return out
}

func TestEmptyProblemIsSatisfiable(t *testing.T) {
	r := require.New(t)

	p := mip.NewProblem(2)
	status, err := p.Solve()
	r.NoError(err)
	r.Equal(mip.Satisfiable, status)
}

func TestInfeasibleRationalSystem(t *testing.T) {
	r := require.New(t)

	// x >= 1 and x <= 0 has no rational solution, let alone an integer one.
	p := mip.NewProblem(1)
	r.NoError(p.AddConstraint(coeffs(1), mip.GreaterOrEqual, coefficient.FromInt64(1)))
	r.NoError(p.AddConstraint(coeffs(1), mip.LessOrEqual, coefficient.FromInt64(0)))

	status, err := p.Solve()
	r.NoError(err)
	r.Equal(mip.Unfeasible, status)
}

func TestFeasibleLinearSystem(t *testing.T) {
	r := require.New(t)

	// 1 <= x <= 3, no integer declaration needed for rational feasibility.
	p := mip.NewProblem(1)
	r.NoError(p.AddConstraint(coeffs(1), mip.GreaterOrEqual, coefficient.FromInt64(1)))
	r.NoError(p.AddConstraint(coeffs(1), mip.LessOrEqual, coefficient.FromInt64(3)))

	status, err := p.Solve()
	r.NoError(err)
	r.Equal(mip.Satisfiable, status)
}

func TestIntegerGapIsUnfeasible(t *testing.T) {
	r := require.New(t)

	// 3a - 3b in [1,2] has rational solutions (e.g. a=1/2,b=0) but no
	// integer solution for a-b, since [1/3,2/3] contains no integer.
	p := mip.NewProblem(2)
	r.NoError(p.AddConstraint(coeffs(3, -3), mip.GreaterOrEqual, coefficient.FromInt64(1)))
	r.NoError(p.AddConstraint(coeffs(3, -3), mip.LessOrEqual, coefficient.FromInt64(2)))
	p.SetIntegerVariable(0)
	p.SetIntegerVariable(1)

	status, err := p.Solve()
	r.NoError(err)
	r.Equal(mip.Unfeasible, status)
}

func TestIntegerFeasibleSystem(t *testing.T) {
	r := require.New(t)

	// 0 <= a <= 5, a == 3 forces the unique integer point a=3.
	p := mip.NewProblem(1)
	r.NoError(p.AddConstraint(coeffs(1), mip.GreaterOrEqual, coefficient.FromInt64(0)))
	r.NoError(p.AddConstraint(coeffs(1), mip.LessOrEqual, coefficient.FromInt64(5)))
	r.NoError(p.AddConstraint(coeffs(1), mip.Equal, coefficient.FromInt64(3)))
	p.SetIntegerVariable(0)

	status, err := p.Solve()
	r.NoError(err)
	r.Equal(mip.Satisfiable, status)
}

func TestEqualityInfeasible(t *testing.T) {
	r := require.New(t)

	p := mip.NewProblem(1)
	r.NoError(p.AddConstraint(coeffs(1), mip.GreaterOrEqual, coefficient.FromInt64(0)))
	r.NoError(p.AddConstraint(coeffs(1), mip.LessOrEqual, coefficient.FromInt64(1)))
	r.NoError(p.AddConstraint(coeffs(2), mip.Equal, coefficient.FromInt64(5)))

	status, err := p.Solve()
	r.NoError(err)
	r.Equal(mip.Unfeasible, status)
}

func TestDimensionMismatchRejected(t *testing.T) {
	r := require.New(t)

	p := mip.NewProblem(2)
	err := p.AddConstraint(coeffs(1), mip.Equal, coefficient.Zero())
	r.ErrorIs(err, mip.ErrDimensionMismatch)
}

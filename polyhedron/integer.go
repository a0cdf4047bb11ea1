package polyhedron

import (
	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/constraint"
	"github.com/polylat/polylat/mip"
	"github.com/polylat/polylat/variable"
)

// ContainsIntegerPoint reports whether p contains a point all of whose
// coordinates are integers (spec.md §4.6). It delegates to package mip's
// bounded exact-rational simplex plus branch-and-bound, declaring every
// space dimension integer-constrained. A strict inequality e > 0 is
// tightened to e >= 1 before handing it to mip: since every variable is
// integer-constrained, e always takes an integer value at any candidate
// point, so e > 0 and e >= 1 have exactly the same integer solutions.
func (p *Polyhedron) ContainsIntegerPoint() bool {
	if p.IsEmpty() {
		return false
	}
	p.Minimize()
	if p.spaceDim == 0 {
		return true
	}

	problem := mip.NewProblem(p.spaceDim)
	for _, c := range p.conSys.Constraints() {
		coeffs := make([]coefficient.Coefficient, p.spaceDim)
		for i := 0; i < p.spaceDim; i++ {
			coeffs[i] = c.Coefficient(variable.Variable(i))
		}
		b := c.InhomogeneousTerm()
		switch c.Type() {
		case constraint.Equality:
			_ = problem.AddConstraint(coeffs, mip.Equal, b.Neg())
		case constraint.StrictInequality:
			_ = problem.AddConstraint(coeffs, mip.GreaterOrEqual, b.Neg().Add(coefficient.One()))
		default: // NonStrictInequality
			_ = problem.AddConstraint(coeffs, mip.GreaterOrEqual, b.Neg())
		}
	}
	for i := 0; i < p.spaceDim; i++ {
		problem.SetIntegerVariable(i)
	}

	status, err := problem.Solve()
	if err != nil {
		return false
	}
	return status == mip.Satisfiable
}

package generator

import (
	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/row"
	"github.com/polylat/polylat/variable"
)

// Kind classifies the geometric object a Generator denotes.
type Kind int

const (
	// Line is a bidirectional vector (divisor 0).
	Line Kind = iota
	// Ray is a half-direction vector (divisor 0).
	Ray
	// Point is an actual point with a positive divisor.
	Point
	// ClosurePoint is the NotNecessarilyClosed-only limit point of a point
	// approached via an open (strict-inequality) boundary.
	ClosurePoint
)

// Generator is a typed view over row.Row denoting a line, ray, point, or
// closure point.
type Generator struct {
	r row.Row
}

// NewLine builds a line in the given topology.
func NewLine(e linexpr.Expression, topology row.Topology) Generator {
	r := row.FromExpression(e, topology, row.LineOrEquality)
	r = r.SetInhomogeneousTerm(coefficient.Zero())
	return Generator{r: r}
}

// NewRay builds a ray in the given topology.
func NewRay(e linexpr.Expression, topology row.Topology) Generator {
	r := row.FromExpression(e, topology, row.RayOrPointOrInequality)
	r = r.SetInhomogeneousTerm(coefficient.Zero())
	if topology == row.NotNecessarilyClosed {
		r, _ = r.SetEpsilon(coefficient.Zero())
	}
	return Generator{r: r}
}

// NewPoint builds a point at e/divisor in the given topology. For
// NotNecessarilyClosed topology the epsilon column is set equal to the
// divisor, per spec.md §3.3.
func NewPoint(e linexpr.Expression, divisor coefficient.Coefficient, topology row.Topology) (Generator, error) {
	if divisor.Sign() <= 0 {
		return Generator{}, ErrNonPositiveDivisor
	}
	r := row.FromExpression(e, topology, row.RayOrPointOrInequality)
	r = r.SetInhomogeneousTerm(divisor)
	if topology == row.NotNecessarilyClosed {
		r, _ = r.SetEpsilon(divisor)
	}
	return Generator{r: r}, nil
}

// NewClosurePoint builds a closure point at e/divisor. Closure points only
// exist in NotNecessarilyClosed topology.
func NewClosurePoint(e linexpr.Expression, divisor coefficient.Coefficient) (Generator, error) {
	if divisor.Sign() <= 0 {
		return Generator{}, ErrNonPositiveDivisor
	}
	r := row.FromExpression(e, row.NotNecessarilyClosed, row.RayOrPointOrInequality)
	r = r.SetInhomogeneousTerm(divisor)
	r, _ = r.SetEpsilon(coefficient.Zero())
	return Generator{r: r}, nil
}

// FromRow reinterprets a row.Row as a Generator, inferring Kind from Kind,
// Topology, the divisor (column 0), and the epsilon column.
func FromRow(r row.Row) (Generator, error) {
	if r.Kind() == row.LineOrEquality {
		if !r.InhomogeneousTerm().IsZero() {
			return Generator{}, ErrMalformedRow
		}
		return Generator{r: r}, nil
	}
	if r.InhomogeneousTerm().IsZero() {
		if r.Topology() == row.NotNecessarilyClosed {
			if eps, _ := r.Epsilon(); !eps.IsZero() {
				return Generator{}, ErrMalformedRow
			}
		}
		return Generator{r: r}, nil
	}
	if r.InhomogeneousTerm().Sign() < 0 {
		return Generator{}, ErrMalformedRow
	}
	return Generator{r: r}, nil
}

// Kind reports which geometric object g denotes.
func (g Generator) Kind() Kind {
	if g.r.Kind() == row.LineOrEquality {
		return Line
	}
	if g.r.InhomogeneousTerm().IsZero() {
		return Ray
	}
	if g.r.Topology() == row.NotNecessarilyClosed {
		if eps, _ := g.r.Epsilon(); eps.IsZero() {
			return ClosurePoint
		}
	}
	return Point
}

// Divisor returns the divisor (column 0), meaningful for Point/ClosurePoint.
func (g Generator) Divisor() coefficient.Coefficient { return g.r.InhomogeneousTerm() }

// Row exposes the underlying row.Row.
func (g Generator) Row() row.Row { return g.r }

// SpaceDimension returns the number of variables mentioned.
func (g Generator) SpaceDimension() int { return g.r.SpaceDimension() }

// Topology returns g's topology.
func (g Generator) Topology() row.Topology { return g.r.Topology() }

// Coefficient returns the coefficient of v.
func (g Generator) Coefficient(v variable.Variable) coefficient.Coefficient {
	return g.r.Coefficient(v)
}

// ToClosurePoint converts a Point into its corresponding ClosurePoint
// (same coordinates and divisor, epsilon zeroed). Only valid for Point.
func (g Generator) ToClosurePoint() (Generator, error) {
	if g.Kind() != Point {
		return Generator{}, ErrMalformedRow
	}
	r, _ := g.r.SetEpsilon(coefficient.Zero())
	return Generator{r: r}, nil
}

// SameCoordinates reports whether g and other agree on every variable
// coefficient and divisor (ignoring epsilon) -- the "matching" relation
// spec.md §4.2 requires between a Point and its Closure_Point.
func (g Generator) SameCoordinates(other Generator) bool {
	if g.SpaceDimension() != other.SpaceDimension() {
		return false
	}
	if !g.Divisor().Equal(other.Divisor()) {
		return false
	}
	for i := 0; i < g.SpaceDimension(); i++ {
		v := variable.Variable(i)
		if !g.Coefficient(v).Equal(other.Coefficient(v)) {
			return false
		}
	}
	return true
}

package gridgen

import (
	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/row"
	"github.com/polylat/polylat/variable"
)

// Kind classifies the object a GridGenerator denotes.
type Kind int

const (
	// Line is a bidirectional vector: the base point may move freely along it.
	Line Kind = iota
	// Parameter is a period vector: the base point may move by any integer
	// multiple of it.
	Parameter
	// Point is the grid's base point, carrying a positive divisor.
	Point
)

// GridGenerator is a line, parameter, or point.
type GridGenerator struct {
	r row.Row
}

// NewLine builds a grid line.
func NewLine(e linexpr.Expression) GridGenerator {
	r := row.FromExpression(e, row.NecessarilyClosed, row.LineOrEquality)
	r = r.SetInhomogeneousTerm(coefficient.Zero())
	return GridGenerator{r: r}
}

// NewParameter builds a grid parameter (period vector).
func NewParameter(e linexpr.Expression) GridGenerator {
	r := row.FromExpression(e, row.NecessarilyClosed, row.RayOrPointOrInequality)
	r = r.SetInhomogeneousTerm(coefficient.Zero())
	return GridGenerator{r: r}
}

// NewPoint builds the grid's base point at e/divisor. divisor must be positive.
func NewPoint(e linexpr.Expression, divisor coefficient.Coefficient) (GridGenerator, error) {
	if divisor.Sign() <= 0 {
		return GridGenerator{}, ErrNonPositiveDivisor
	}
	r := row.FromExpression(e, row.NecessarilyClosed, row.RayOrPointOrInequality)
	r = r.SetInhomogeneousTerm(divisor)
	return GridGenerator{r: r}, nil
}

// FromRow reinterprets a row.Row as a GridGenerator, inferring Kind from
// Kind and the divisor (column 0).
func FromRow(r row.Row) (GridGenerator, error) {
	if r.Kind() != row.LineOrEquality && r.InhomogeneousTerm().Sign() < 0 {
		return GridGenerator{}, ErrMalformedRow
	}
	return GridGenerator{r: r}, nil
}

// Kind reports which object g denotes.
func (g GridGenerator) Kind() Kind {
	if g.r.Kind() == row.LineOrEquality {
		return Line
	}
	if g.r.InhomogeneousTerm().IsZero() {
		return Parameter
	}
	return Point
}

// Divisor returns the divisor (column 0), meaningful for Point.
func (g GridGenerator) Divisor() coefficient.Coefficient { return g.r.InhomogeneousTerm() }

// Row exposes the underlying row.Row.
func (g GridGenerator) Row() row.Row { return g.r }

// SpaceDimension returns the number of variables mentioned.
func (g GridGenerator) SpaceDimension() int { return g.r.SpaceDimension() }

// Coefficient returns the coefficient of v.
func (g GridGenerator) Coefficient(v variable.Variable) coefficient.Coefficient {
	return g.r.Coefficient(v)
}

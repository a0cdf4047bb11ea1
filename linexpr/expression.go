package linexpr

import (
	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/variable"
)

// Expression is a sparse/dense affine form sum(a_i * x_i) + b. Internally
// it is stored densely: column 0 holds b, column i (i>=1) holds the
// coefficient of Variable(i-1). Space dimension equals len(columns) - 1.
type Expression struct {
	columns []coefficient.Coefficient
}

// NewExpression returns the zero expression over a space of the given
// dimension (all coefficients, including the inhomogeneous term, are 0).
func NewExpression(spaceDim int) Expression {
	return Expression{columns: make([]coefficient.Coefficient, spaceDim+1)}
}

// Constant returns the expression b (space dimension 0).
func Constant(b coefficient.Coefficient) Expression {
	return Expression{columns: []coefficient.Coefficient{b}}
}

// FromVariable returns the expression 1*v (space dimension v.SpaceDimension()).
func FromVariable(v variable.Variable) Expression {
	e := NewExpression(v.SpaceDimension())
	e.columns[v.ID()+1] = coefficient.One()
	return e
}

// FromColumns builds an Expression directly from a raw column vector
// (column 0 is the inhomogeneous term); the slice is copied.
func FromColumns(columns []coefficient.Coefficient) Expression {
	cp := make([]coefficient.Coefficient, len(columns))
	copy(cp, columns)
	return Expression{columns: cp}
}

// SpaceDimension returns the number of variables mentioned (columns - 1).
func (e Expression) SpaceDimension() int {
	if len(e.columns) == 0 {
		return 0
	}
	return len(e.columns) - 1
}

// Columns returns a copy of the raw column vector (column 0 = inhomogeneous term).
func (e Expression) Columns() []coefficient.Coefficient {
	cp := make([]coefficient.Coefficient, len(e.columns))
	copy(cp, e.columns)
	return cp
}

// InhomogeneousTerm returns b.
func (e Expression) InhomogeneousTerm() coefficient.Coefficient {
	if len(e.columns) == 0 {
		return coefficient.Zero()
	}
	return e.columns[0]
}

// Coefficient returns the coefficient of v, or 0 if v exceeds the expression's
// space dimension.
func (e Expression) Coefficient(v variable.Variable) coefficient.Coefficient {
	idx := v.ID() + 1
	if idx >= len(e.columns) {
		return coefficient.Zero()
	}
	return e.columns[idx]
}

// embed grows e's column vector (if needed) to accommodate space dimension d.
func (e Expression) embed(d int) Expression {
	if d+1 <= len(e.columns) {
		return e
	}
	cols := make([]coefficient.Coefficient, d+1)
	copy(cols, e.columns)
	return Expression{columns: cols}
}

// WithCoefficient returns a copy of e with the coefficient of v set to c,
// growing the space dimension if necessary.
func (e Expression) WithCoefficient(v variable.Variable, c coefficient.Coefficient) Expression {
	out := e.embed(v.SpaceDimension())
	cols := make([]coefficient.Coefficient, len(out.columns))
	copy(cols, out.columns)
	cols[v.ID()+1] = c
	return Expression{columns: cols}
}

// WithInhomogeneousTerm returns a copy of e with its inhomogeneous term set to b.
func (e Expression) WithInhomogeneousTerm(b coefficient.Coefficient) Expression {
	out := e.embed(0)
	cols := make([]coefficient.Coefficient, len(out.columns))
	copy(cols, out.columns)
	cols[0] = b
	return Expression{columns: cols}
}

// Add returns e + other, growing to the larger space dimension.
func (e Expression) Add(other Expression) Expression {
	d := max(e.SpaceDimension(), other.SpaceDimension())
	a := e.embed(d)
	b := other.embed(d)
	cols := make([]coefficient.Coefficient, d+1)
	for i := range cols {
		cols[i] = a.columns[i].Add(b.columns[i])
	}
	return Expression{columns: cols}
}

// Sub returns e - other, growing to the larger space dimension.
func (e Expression) Sub(other Expression) Expression {
	return e.Add(other.Times(coefficient.FromInt64(-1)))
}

// Times returns scalar*e.
func (e Expression) Times(scalar coefficient.Coefficient) Expression {
	cols := make([]coefficient.Coefficient, len(e.columns))
	for i, c := range e.columns {
		cols[i] = c.Mul(scalar)
	}
	return Expression{columns: cols}
}

package constraint

import (
	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/row"
	"github.com/polylat/polylat/variable"
)

// Type classifies the relation a Constraint denotes.
type Type int

const (
	// Equality denotes e = 0.
	Equality Type = iota
	// NonStrictInequality denotes e >= 0.
	NonStrictInequality
	// StrictInequality denotes e > 0 (NotNecessarilyClosed only).
	StrictInequality
)

// Constraint is a typed view over row.Row: e = 0, e >= 0, or e > 0.
type Constraint struct {
	r row.Row
}

// Equal builds the constraint e = 0.
func Equal(e linexpr.Expression) Constraint {
	return Constraint{r: row.FromExpression(e, row.NecessarilyClosed, row.LineOrEquality)}
}

// NonStrict builds the constraint e >= 0.
func NonStrict(e linexpr.Expression) Constraint {
	return Constraint{r: row.FromExpression(e, row.NecessarilyClosed, row.RayOrPointOrInequality)}
}

// Strict builds the constraint e > 0. The underlying row is
// NotNecessarilyClosed with its epsilon coefficient set to -1.
func Strict(e linexpr.Expression) Constraint {
	r := row.FromExpression(e, row.NotNecessarilyClosed, row.RayOrPointOrInequality)
	r, _ = r.SetEpsilon(coefficient.FromInt64(-1))
	return Constraint{r: r}
}

// LessOrEqual builds lhs <= rhs, i.e. rhs - lhs >= 0.
func LessOrEqual(lhs, rhs linexpr.Expression) Constraint { return NonStrict(rhs.Sub(lhs)) }

// GreaterOrEqual builds lhs >= rhs, i.e. lhs - rhs >= 0.
func GreaterOrEqual(lhs, rhs linexpr.Expression) Constraint { return NonStrict(lhs.Sub(rhs)) }

// Less builds lhs < rhs, i.e. rhs - lhs > 0.
func Less(lhs, rhs linexpr.Expression) Constraint { return Strict(rhs.Sub(lhs)) }

// Greater builds lhs > rhs, i.e. lhs - rhs > 0.
func Greater(lhs, rhs linexpr.Expression) Constraint { return Strict(lhs.Sub(rhs)) }

// EqualExpr builds lhs = rhs, i.e. lhs - rhs = 0.
func EqualExpr(lhs, rhs linexpr.Expression) Constraint { return Equal(lhs.Sub(rhs)) }

// FromRow reinterprets a row.Row as a Constraint, inferring Type from the
// row's Kind, Topology, and epsilon coefficient.
func FromRow(r row.Row) (Constraint, error) {
	if r.Kind() == row.LineOrEquality {
		return Constraint{r: r}, nil
	}
	if r.Topology() == row.NecessarilyClosed {
		return Constraint{r: r}, nil
	}
	eps, _ := r.Epsilon()
	switch eps.Sign() {
	case 0, -1:
		return Constraint{r: r}, nil
	default:
		return Constraint{}, ErrMalformedRow
	}
}

// Type reports the constraint's relation.
func (c Constraint) Type() Type {
	if c.r.Kind() == row.LineOrEquality {
		return Equality
	}
	if c.r.Topology() == row.NotNecessarilyClosed {
		if eps, _ := c.r.Epsilon(); eps.Sign() < 0 {
			return StrictInequality
		}
	}
	return NonStrictInequality
}

// IsStrict reports whether c is a strict inequality.
func (c Constraint) IsStrict() bool { return c.Type() == StrictInequality }

// IsEquality reports whether c is an equality.
func (c Constraint) IsEquality() bool { return c.Type() == Equality }

// Row exposes the underlying row.Row for use by scalarprod/linsys/system.
func (c Constraint) Row() row.Row { return c.r }

// SpaceDimension returns the number of variables mentioned.
func (c Constraint) SpaceDimension() int { return c.r.SpaceDimension() }

// Topology returns the constraint's topology.
func (c Constraint) Topology() row.Topology { return c.r.Topology() }

// Coefficient returns the coefficient of v.
func (c Constraint) Coefficient(v variable.Variable) coefficient.Coefficient {
	return c.r.Coefficient(v)
}

// InhomogeneousTerm returns the constraint's constant term.
func (c Constraint) InhomogeneousTerm() coefficient.Coefficient { return c.r.InhomogeneousTerm() }

// IsTriviallyFalse reports whether c mentions no variable and its constant
// term violates the relation (e.g. "-1 >= 0" or "0 = 1"), i.e. it is
// unsatisfiable independent of any variable assignment.
func (c Constraint) IsTriviallyFalse() bool {
	for i := 1; i <= c.SpaceDimension(); i++ {
		if !c.r.Column(i).IsZero() {
			return false
		}
	}
	b := c.InhomogeneousTerm()
	switch c.Type() {
	case Equality:
		return !b.IsZero()
	case NonStrictInequality:
		return b.Sign() < 0
	default: // StrictInequality
		return b.Sign() <= 0
	}
}

// IsTriviallyTrue reports whether c mentions no variable and its constant
// term trivially satisfies the relation (e.g. "1 >= 0", "0 = 0").
func (c Constraint) IsTriviallyTrue() bool {
	for i := 1; i <= c.SpaceDimension(); i++ {
		if !c.r.Column(i).IsZero() {
			return false
		}
	}
	b := c.InhomogeneousTerm()
	switch c.Type() {
	case Equality:
		return b.IsZero()
	case NonStrictInequality:
		return b.Sign() >= 0
	default:
		return b.Sign() > 0
	}
}

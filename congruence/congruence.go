package congruence

import (
	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/row"
	"github.com/polylat/polylat/variable"
)

// Congruence denotes e ≡ 0 (mod m). m == 0 denotes an equality, m > 0 a
// proper congruence.
type Congruence struct {
	r       row.Row
	modulus coefficient.Coefficient
}

// New builds the congruence e ≡ 0 (mod modulus). modulus must be non-negative.
func New(e linexpr.Expression, modulus coefficient.Coefficient) (Congruence, error) {
	if modulus.Sign() < 0 {
		return Congruence{}, ErrNegativeModulus
	}
	return Congruence{r: row.FromExpression(e, row.NecessarilyClosed, row.LineOrEquality), modulus: modulus}, nil
}

// EqualityOf builds the congruence e ≡ 0 (mod 0), i.e. the equality e = 0.
func EqualityOf(e linexpr.Expression) Congruence {
	c, _ := New(e, coefficient.Zero())
	return c
}

// IsEquality reports whether the modulus is 0.
func (c Congruence) IsEquality() bool { return c.modulus.IsZero() }

// Modulus returns m.
func (c Congruence) Modulus() coefficient.Coefficient { return c.modulus }

// Row exposes the underlying row.Row (the linear part, e).
func (c Congruence) Row() row.Row { return c.r }

// SpaceDimension returns the number of variables mentioned.
func (c Congruence) SpaceDimension() int { return c.r.SpaceDimension() }

// Coefficient returns the coefficient of v.
func (c Congruence) Coefficient(v variable.Variable) coefficient.Coefficient {
	return c.r.Coefficient(v)
}

// InhomogeneousTerm returns e's constant term.
func (c Congruence) InhomogeneousTerm() coefficient.Coefficient { return c.r.InhomogeneousTerm() }

// IsTriviallyFalse reports whether c mentions no variable and the constant
// term is not divisible by the modulus (or nonzero, for an equality).
func (c Congruence) IsTriviallyFalse() bool {
	for i := 0; i < c.SpaceDimension(); i++ {
		if !c.Coefficient(variable.Variable(i)).IsZero() {
			return false
		}
	}
	if c.IsEquality() {
		return !c.InhomogeneousTerm().IsZero()
	}
	b := c.InhomogeneousTerm()
	q, _ := b.DivFloor(c.modulus)
	remainder := b.Sub(q.Mul(c.modulus))
	return !remainder.IsZero()
}

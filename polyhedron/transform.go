package polyhedron

import (
	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/constraint"
	"github.com/polylat/polylat/generator"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/row"
	"github.com/polylat/polylat/system"
	"github.com/polylat/polylat/variable"
)

// Relop is one of the five relation symbols spec.md §4.4.6's generalized
// affine transforms accept.
type Relop int

const (
	Less Relop = iota
	LessOrEqual
	Equal
	GreaterOrEqual
	Greater
)

func (r Relop) isStrict() bool { return r == Less || r == Greater }

// relConstraint builds the constraint "lhs r 0" for the given relation.
func relConstraint(lhs linexpr.Expression, r Relop) constraint.Constraint {
	switch r {
	case Less:
		return constraint.Strict(lhs.Times(coefficient.FromInt64(-1)))
	case LessOrEqual:
		return constraint.NonStrict(lhs.Times(coefficient.FromInt64(-1)))
	case Equal:
		return constraint.Equal(lhs)
	case GreaterOrEqual:
		return constraint.NonStrict(lhs)
	default: // Greater
		return constraint.Strict(lhs)
	}
}

// MapSpaceDimensions applies a partial injective renaming to p (spec.md
// §4.4.5's relative, map_space_dimensions): f's domain is the set of
// variables to retain, f's codomain must be exactly {0,...,k-1} for
// k = len(f) (a dense permutation target), and every variable outside the
// domain is projected away. Variables not present in f are dropped exactly
// as RemoveSpaceDimensions would drop them.
func (p *Polyhedron) MapSpaceDimensions(f map[variable.Variable]variable.Variable) error {
	k := len(f)
	seen := make([]bool, k)
	for from, to := range f {
		if err := checkDim(p, from.SpaceDimension()); err != nil {
			return err
		}
		if to.ID() < 0 || to.ID() >= k || seen[to.ID()] {
			return ErrInvalidMap
		}
		seen[to.ID()] = true
	}
	if p.IsEmpty() {
		p.spaceDim = k
		p.conSys = system.NewConstraintSystem(p.topology, k)
		p.genSys = system.NewGeneratorSystem(p.topology, k)
		return nil
	}
	p.Minimize()
	newGS := system.NewGeneratorSystem(p.topology, k)
	for _, g := range p.genSys.Generators() {
		e := linexpr.NewExpression(k)
		for from, to := range f {
			e = e.WithCoefficient(to, g.Coefficient(from))
		}
		switch g.Kind() {
		case generator.Line:
			newGS.InsertPending(generator.NewLine(e, p.topology))
		case generator.Ray:
			newGS.InsertPending(generator.NewRay(e, p.topology))
		case generator.Point:
			pt, _ := generator.NewPoint(e, g.Divisor(), p.topology)
			newGS.InsertPending(pt)
		default:
			cp, _ := generator.NewClosurePoint(e, g.Divisor())
			newGS.InsertPending(cp)
		}
	}
	newGS.Linsys().UnsetPendingRows()
	p.genSys = newGS
	p.conSys = system.NewConstraintSystem(p.topology, k)
	p.spaceDim = k
	p.st = gUpToDate
	return nil
}

// GeneralizedAffineImage sets p to the set of x such that
// (d*x[v]) r (e.x), x otherwise unconstrained in v beforehand (spec.md
// §4.4.6): v is first cylindrified away, then the relation is added as a
// constraint. A strict r is only valid in NotNecessarilyClosed topology.
func (p *Polyhedron) GeneralizedAffineImage(v variable.Variable, r Relop, e linexpr.Expression, d coefficient.Coefficient) error {
	if err := p.checkGeneralizedAffine(v, r, e, d); err != nil {
		return err
	}
	if p.IsEmpty() {
		return nil
	}
	if err := p.Unconstrain(v); err != nil {
		return err
	}
	lhs := linexpr.FromVariable(v).Times(d).Sub(e)
	return p.AddConstraint(relConstraint(lhs, r))
}

// GeneralizedAffinePreimage is the preimage counterpart of
// GeneralizedAffineImage: the relation constrains the current (pre-image)
// value of v against e, and only then is v cylindrified away -- the
// opposite order from the image case, matching the general image/preimage
// asymmetry already used by AffineImage/AffinePreimage.
func (p *Polyhedron) GeneralizedAffinePreimage(v variable.Variable, r Relop, e linexpr.Expression, d coefficient.Coefficient) error {
	if err := p.checkGeneralizedAffine(v, r, e, d); err != nil {
		return err
	}
	if p.IsEmpty() {
		return nil
	}
	lhs := linexpr.FromVariable(v).Times(d).Sub(e)
	if err := p.AddConstraint(relConstraint(lhs, r)); err != nil {
		return err
	}
	return p.Unconstrain(v)
}

func (p *Polyhedron) checkGeneralizedAffine(v variable.Variable, r Relop, e linexpr.Expression, d coefficient.Coefficient) error {
	if d.IsZero() {
		return ErrDivByZero
	}
	if r.isStrict() && p.topology == row.NecessarilyClosed {
		return ErrTopoIncompat
	}
	if err := checkDim(p, v.SpaceDimension()); err != nil {
		return err
	}
	return checkDim(p, e.SpaceDimension())
}

// BoundedAffineImage sets p to the set of x such that
// lb.x <= d*x[v] <= ub.x, x otherwise unconstrained in v beforehand
// (spec.md §4.4.6): the conjunction of two GeneralizedAffineImage-style
// half-space additions over a single cylindrification of v.
func (p *Polyhedron) BoundedAffineImage(v variable.Variable, lb, ub linexpr.Expression, d coefficient.Coefficient) error {
	if d.IsZero() {
		return ErrDivByZero
	}
	if err := checkDim(p, v.SpaceDimension()); err != nil {
		return err
	}
	if err := checkDim(p, lb.SpaceDimension()); err != nil {
		return err
	}
	if err := checkDim(p, ub.SpaceDimension()); err != nil {
		return err
	}
	if p.IsEmpty() {
		return nil
	}
	absD := d.Abs()
	lower, upper := lb, ub
	if d.Sign() < 0 {
		lower, upper = ub.Times(coefficient.FromInt64(-1)), lb.Times(coefficient.FromInt64(-1))
	}
	if err := p.Unconstrain(v); err != nil {
		return err
	}
	// d*x[v] - lower >= 0
	c1 := linexpr.FromVariable(v).Times(absD).Sub(lower)
	if err := p.AddConstraint(constraint.NonStrict(c1)); err != nil {
		return err
	}
	// upper - d*x[v] >= 0
	c2 := upper.Sub(linexpr.FromVariable(v).Times(absD))
	return p.AddConstraint(constraint.NonStrict(c2))
}

// IsBounded reports whether p denotes a bounded (possibly empty) subset of
// Q^n: true iff its minimized generator system has no line or ray.
func (p *Polyhedron) IsBounded() bool {
	if p.IsEmpty() {
		return true
	}
	p.Minimize()
	for _, g := range p.genSys.Generators() {
		if g.Kind() == generator.Line || g.Kind() == generator.Ray {
			return false
		}
	}
	return true
}

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

// AddConstraint refines p to p ∩ {c} (spec.md §4.4.1). A strict inequality
// added to a closed polyhedron that is not trivially false is rejected with
// ErrTopoIncompat.
func (p *Polyhedron) AddConstraint(c constraint.Constraint) error {
	if err := checkDim(p, c.SpaceDimension()); err != nil {
		return err
	}
	if c.IsStrict() && p.topology == row.NecessarilyClosed && !c.IsTriviallyFalse() {
		return ErrTopoIncompat
	}
	if p.IsEmpty() {
		return nil
	}
	if err := p.conSys.Insert(c); err != nil {
		return err
	}
	p.st = p.st.without(gUpToDate).without(gMinimized).without(cMinimized).without(satCUpToDate).without(satGUpToDate)
	p.st = p.st.with(cUpToDate)
	if p.conSys.IsInconsistent() {
		p.st = statusEmpty
	}
	return nil
}

// AddGenerator augments p with g (spec.md §4.4.1). Inserting a non-point
// generator into an empty polyhedron is rejected with ErrInvalidArg.
func (p *Polyhedron) AddGenerator(g generator.Generator) error {
	if err := checkDim(p, g.SpaceDimension()); err != nil {
		return err
	}
	if p.IsEmpty() {
		if g.Kind() != generator.Point {
			return ErrInvalidArg
		}
		p.genSys = system.NewGeneratorSystem(p.topology, p.spaceDim)
		if err := p.genSys.Insert(g); err != nil {
			return ErrInvalidArg
		}
		p.conSys = system.NewConstraintSystem(p.topology, p.spaceDim)
		p.st = gUpToDate
		return nil
	}
	if err := p.genSys.Insert(g); err != nil {
		return ErrInvalidArg
	}
	p.st = p.st.without(cUpToDate).without(cMinimized).without(gMinimized).without(satCUpToDate).without(satGUpToDate)
	p.st = p.st.with(gUpToDate)
	return nil
}

// IntersectionAssign sets p := p ∩ q.
func (p *Polyhedron) IntersectionAssign(q *Polyhedron) error {
	if err := checkTopology(p.topology, q.topology); err != nil {
		return err
	}
	if p.spaceDim != q.spaceDim {
		return ErrDimIncompat
	}
	p.Minimize()
	if p.IsEmpty() {
		return nil
	}
	q.Minimize()
	if q.IsEmpty() {
		p.st = statusEmpty
		return nil
	}
	for _, c := range q.conSys.Constraints() {
		if err := p.AddConstraint(c); err != nil {
			return err
		}
		if p.IsEmpty() {
			return nil
		}
	}
	return nil
}

// PolyHullAssign sets p := convex_hull(p ∪ q).
func (p *Polyhedron) PolyHullAssign(q *Polyhedron) error {
	if err := checkTopology(p.topology, q.topology); err != nil {
		return err
	}
	if p.spaceDim != q.spaceDim {
		return ErrDimIncompat
	}
	q.Minimize()
	if q.IsEmpty() {
		return nil
	}
	if p.IsEmpty() {
		p.genSys = q.genSys.Clone()
		p.conSys = system.NewConstraintSystem(p.topology, p.spaceDim)
		p.st = gUpToDate
		return nil
	}
	for _, g := range q.genSys.Generators() {
		if err := p.AddGenerator(g); err != nil {
			return err
		}
	}
	return nil
}

// TimeElapseAssign sets p := {x + t*r : x in p, r in rec(q), t >= 0}, i.e.
// adds q's rays/lines to p's generators (spec.md §4.4.1).
func (p *Polyhedron) TimeElapseAssign(q *Polyhedron) error {
	if err := checkTopology(p.topology, q.topology); err != nil {
		return err
	}
	if p.spaceDim != q.spaceDim {
		return ErrDimIncompat
	}
	if p.IsEmpty() || q.IsEmpty() {
		return nil
	}
	for _, g := range q.genSys.Generators() {
		if g.Kind() == generator.Point || g.Kind() == generator.ClosurePoint {
			continue
		}
		if err := p.AddGenerator(g); err != nil {
			return err
		}
	}
	return nil
}

// AffineImage applies x[v <- (e.x)/d] to every point of p.
func (p *Polyhedron) AffineImage(v variable.Variable, e linexpr.Expression, d coefficient.Coefficient) error {
	return p.affineTransform(v, e, d, false)
}

// AffinePreimage applies the inverse transform of AffineImage.
func (p *Polyhedron) AffinePreimage(v variable.Variable, e linexpr.Expression, d coefficient.Coefficient) error {
	return p.affineTransform(v, e, d, true)
}

// affineTransform implements both affine_image and affine_preimage by
// rewriting every generator's (or, for preimage, every constraint's)
// coordinate in place -- the classical approach of transforming whichever
// representation the transform is naturally expressed over, then letting
// the other representation go stale (spec.md §4.4.1).
func (p *Polyhedron) affineTransform(v variable.Variable, e linexpr.Expression, d coefficient.Coefficient, preimage bool) error {
	if d.IsZero() {
		return ErrDivByZero
	}
	if err := checkDim(p, e.SpaceDimension()); err != nil {
		return err
	}
	if err := checkDim(p, v.SpaceDimension()); err != nil {
		return err
	}
	if p.IsEmpty() {
		return nil
	}
	p.Minimize()

	if !preimage {
		newGS := system.NewGeneratorSystem(p.topology, p.spaceDim)
		for _, g := range p.genSys.Generators() {
			newGS.InsertPending(transformGenerator(g, v, e, d))
		}
		newGS.Linsys().UnsetPendingRows()
		p.genSys = newGS
		p.conSys = system.NewConstraintSystem(p.topology, p.spaceDim)
		p.st = gUpToDate
		return nil
	}

	newCS := system.NewConstraintSystem(p.topology, p.spaceDim)
	for _, c := range p.conSys.Constraints() {
		if err := newCS.InsertPending(transformConstraint(c, v, e, d)); err != nil {
			return err
		}
	}
	newCS.Linsys().UnsetPendingRows()
	p.conSys = newCS
	p.genSys = system.NewGeneratorSystem(p.topology, p.spaceDim)
	p.st = cUpToDate
	return nil
}

// transformGenerator computes the image of g under x[v <- (e.x)/d]: scale g
// by d (to clear the denominator) and set the v coordinate to e evaluated at
// g's own (undivided) coordinates. A negative d is handled as -d with e
// negated, so that the divisor stays positive.
func transformGenerator(g generator.Generator, v variable.Variable, e linexpr.Expression, d coefficient.Coefficient) generator.Generator {
	if d.Sign() < 0 {
		d = d.Neg()
		e = e.Times(coefficient.FromInt64(-1))
	}
	n := g.SpaceDimension()
	newExpr := linexpr.NewExpression(n)
	for i := 0; i < n; i++ {
		vi := variable.Variable(i)
		if vi == v {
			continue
		}
		newExpr = newExpr.WithCoefficient(vi, g.Coefficient(vi).Mul(d))
	}
	sum := e.InhomogeneousTerm().Mul(g.Divisor())
	for i := 0; i < n; i++ {
		vi := variable.Variable(i)
		sum = sum.Add(e.Coefficient(vi).Mul(g.Coefficient(vi)))
	}
	newExpr = newExpr.WithCoefficient(v, sum)

	switch g.Kind() {
	case generator.Line:
		return generator.NewLine(newExpr, g.Topology())
	case generator.Ray:
		return generator.NewRay(newExpr, g.Topology())
	case generator.Point:
		pt, _ := generator.NewPoint(newExpr, g.Divisor().Mul(d), g.Topology())
		return pt
	default:
		cp, _ := generator.NewClosurePoint(newExpr, g.Divisor().Mul(d))
		return cp
	}
}

// transformConstraint computes the preimage of constraint c under
// x[v <- (e.x')/d]: substituting and clearing the denominator gives, for
// every variable j != v, coefficient d*c_j + c_v*e_j; the v coefficient
// itself becomes c_v*e_v (x_v is fully replaced by e); the constant becomes
// d*c_0 + c_v*e_0.
func transformConstraint(c constraint.Constraint, v variable.Variable, e linexpr.Expression, d coefficient.Coefficient) constraint.Constraint {
	n := c.SpaceDimension()
	cv := c.Coefficient(v)
	newExpr := linexpr.NewExpression(n)
	for i := 0; i < n; i++ {
		vi := variable.Variable(i)
		if vi == v {
			newExpr = newExpr.WithCoefficient(vi, cv.Mul(e.Coefficient(vi)))
			continue
		}
		newExpr = newExpr.WithCoefficient(vi, c.Coefficient(vi).Mul(d).Add(cv.Mul(e.Coefficient(vi))))
	}
	newExpr = newExpr.WithInhomogeneousTerm(c.InhomogeneousTerm().Mul(d).Add(cv.Mul(e.InhomogeneousTerm())))

	switch c.Type() {
	case constraint.Equality:
		return constraint.Equal(newExpr)
	case constraint.StrictInequality:
		return constraint.Strict(newExpr)
	default:
		return constraint.NonStrict(newExpr)
	}
}

// TopologicalClosureAssign turns every strict inequality into non-strict,
// equivalently adding a matching point for every closure point.
func (p *Polyhedron) TopologicalClosureAssign() {
	if p.topology == row.NecessarilyClosed || p.IsEmpty() {
		return
	}
	p.Minimize()
	newGS := system.NewGeneratorSystem(p.topology, p.spaceDim)
	for _, g := range p.genSys.Generators() {
		if g.Kind() == generator.ClosurePoint {
			continue
		}
		newGS.InsertPending(g)
		if g.Kind() == generator.Point {
			cp, _ := g.ToClosurePoint()
			newGS.InsertPending(cp)
		}
	}
	newGS.Linsys().UnsetPendingRows()
	p.genSys = newGS
	p.conSys = system.NewConstraintSystem(p.topology, p.spaceDim)
	p.st = gUpToDate
}

// IsTopologicallyClosed reports whether p has no strict inequalities.
func (p *Polyhedron) IsTopologicallyClosed() bool {
	if p.topology == row.NecessarilyClosed {
		return true
	}
	if p.IsEmpty() {
		return true
	}
	p.Minimize()
	for _, c := range p.conSys.Constraints() {
		if c.IsStrict() {
			return false
		}
	}
	return true
}

// Unconstrain cylindrifies over v: equivalent to adding the generator line(v).
func (p *Polyhedron) Unconstrain(v variable.Variable) error {
	if err := checkDim(p, v.SpaceDimension()); err != nil {
		return err
	}
	if p.IsEmpty() {
		return nil
	}
	return p.AddGenerator(generator.NewLine(linexpr.FromVariable(v), p.topology))
}

// AddSpaceDimensionsAndEmbed appends k dimensions, each left free.
func (p *Polyhedron) AddSpaceDimensionsAndEmbed(k int) {
	if k <= 0 {
		return
	}
	p.Minimize()
	p.conSys.Linsys().AddZeroColumns(k)
	p.genSys.Linsys().AddZeroColumns(k)
	for i := 0; i < k; i++ {
		v := variable.Variable(p.spaceDim + i)
		_ = p.genSys.Insert(generator.NewLine(linexpr.FromVariable(v), p.topology))
	}
	p.spaceDim += k
	p.st = p.st.without(cMinimized).without(gMinimized).without(satCUpToDate).without(satGUpToDate)
}

// AddSpaceDimensionsAndProject appends k dimensions, each equated to 0.
func (p *Polyhedron) AddSpaceDimensionsAndProject(k int) {
	if k <= 0 {
		return
	}
	p.Minimize()
	p.conSys.Linsys().AddZeroColumns(k)
	p.genSys.Linsys().AddZeroColumns(k)
	for i := 0; i < k; i++ {
		v := variable.Variable(p.spaceDim + i)
		_ = p.conSys.Insert(constraint.Equal(linexpr.FromVariable(v)))
	}
	p.spaceDim += k
	p.st = p.st.without(gMinimized).without(cMinimized).without(satCUpToDate).without(satGUpToDate).with(cUpToDate)
}

// RemoveHigherSpaceDimensions keeps only columns [1, k].
func (p *Polyhedron) RemoveHigherSpaceDimensions(k int) error {
	if k > p.spaceDim {
		return ErrDimIncompat
	}
	if k == p.spaceDim {
		return nil
	}
	p.Minimize()
	drop := p.spaceDim - k
	p.genSys.Linsys().RemoveTrailingColumns(drop)
	p.conSys = system.NewConstraintSystem(p.topology, k)
	p.spaceDim = k
	p.st = gUpToDate
	return nil
}

// RemoveSpaceDimensions existentially quantifies away every variable whose
// id is in s.
func (p *Polyhedron) RemoveSpaceDimensions(s []variable.Variable) error {
	for _, v := range s {
		if err := checkDim(p, v.SpaceDimension()); err != nil {
			return err
		}
	}
	if p.IsEmpty() {
		p.spaceDim -= len(s)
		if p.spaceDim < 0 {
			p.spaceDim = 0
		}
		p.conSys = system.NewConstraintSystem(p.topology, p.spaceDim)
		p.genSys = system.NewGeneratorSystem(p.topology, p.spaceDim)
		return nil
	}
	drop := make(map[int]bool, len(s))
	for _, v := range s {
		drop[v.ID()] = true
	}
	keep := make([]int, 0, p.spaceDim-len(s))
	for i := 0; i < p.spaceDim; i++ {
		if !drop[i] {
			keep = append(keep, i)
		}
	}
	p.Minimize()
	newGS := system.NewGeneratorSystem(p.topology, len(keep))
	for _, g := range p.genSys.Generators() {
		e := linexpr.NewExpression(len(keep))
		for newIdx, oldIdx := range keep {
			e = e.WithCoefficient(variable.Variable(newIdx), g.Coefficient(variable.Variable(oldIdx)))
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
	p.conSys = system.NewConstraintSystem(p.topology, len(keep))
	p.spaceDim = len(keep)
	p.st = gUpToDate
	return nil
}

// AffineDimension returns the dimension of the affine hull of p (0 for a
// single point or the empty set).
func (p *Polyhedron) AffineDimension() int {
	if p.IsEmpty() {
		return 0
	}
	p.Minimize()
	return p.spaceDim - p.equalityCount()
}

func (p *Polyhedron) equalityCount() int {
	n := 0
	for _, c := range p.conSys.Constraints() {
		if c.IsEquality() {
			n++
		}
	}
	return n
}

// Constrains reports whether v is bounded by some non-trivial constraint.
func (p *Polyhedron) Constrains(v variable.Variable) bool {
	if !p.Minimize() {
		return true
	}
	for _, c := range p.conSys.Constraints() {
		if !c.Coefficient(v).IsZero() {
			return true
		}
	}
	return false
}

// ConstraintSystem returns the current constraint representation,
// minimizing first.
func (p *Polyhedron) ConstraintSystem() *system.ConstraintSystem {
	p.Minimize()
	return p.conSys.Clone()
}

// GeneratorSystem returns the current generator representation, minimizing first.
func (p *Polyhedron) GeneratorSystem() *system.GeneratorSystem {
	p.Minimize()
	return p.genSys.Clone()
}

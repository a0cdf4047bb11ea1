package polyhedron

import (
	"github.com/polylat/polylat/constraint"
	"github.com/polylat/polylat/generator"
)

// Relation is the bitset spec.md §4.4.6 names for relation_with(c).
type Relation uint8

const (
	Nothing Relation = 0
	// Saturates holds when every generator of p satisfies c with equality.
	Saturates Relation = 1 << iota
	// IsIncluded holds when every generator of p satisfies c.
	IsIncluded
	// IsDisjoint holds when no generator of p satisfies c.
	IsDisjoint
	// StrictlyIntersects holds when some generator strictly satisfies c and some does not.
	StrictlyIntersects
)

// Has reports whether bit is set in r.
func (r Relation) Has(bit Relation) bool { return r&bit != 0 }

// RelationWithConstraint computes relation_with(c) against p's generators
// (spec.md §4.4.6).
func (p *Polyhedron) RelationWithConstraint(c constraint.Constraint) (Relation, error) {
	if err := checkDim(p, c.SpaceDimension()); err != nil {
		return Nothing, err
	}
	if p.IsEmpty() {
		return Saturates | IsIncluded | IsDisjoint, nil
	}
	p.Minimize()

	allSatisfy, allSaturate, noneSatisfy, someStrict, someNotStrict := true, true, true, false, false
	for _, g := range p.genSys.Generators() {
		v := dualValue(c.Row(), g.Row())
		switch {
		case v.IsZero():
			noneSatisfy = false
		case v.Sign() > 0:
			noneSatisfy = false
			someStrict = true
		default:
			allSatisfy = false
			allSaturate = false
			someNotStrict = true
		}
		if !v.IsZero() {
			allSaturate = false
		}
	}
	var out Relation
	if allSaturate {
		out |= Saturates
	}
	if allSatisfy {
		out |= IsIncluded
	}
	if noneSatisfy {
		out |= IsDisjoint
	}
	if someStrict && someNotStrict {
		out |= StrictlyIntersects
	}
	return out, nil
}

// RelationWithGenerator computes relation_with(g): Subsumes if g satisfies
// every constraint of p, Nothing otherwise.
func (p *Polyhedron) RelationWithGenerator(g generator.Generator) (Relation, error) {
	if err := checkDim(p, g.SpaceDimension()); err != nil {
		return Nothing, err
	}
	p.Minimize()
	for _, c := range p.conSys.Constraints() {
		v := dualValue(c.Row(), g.Row())
		if c.IsEquality() {
			if !v.IsZero() {
				return Nothing, nil
			}
			continue
		}
		if v.Sign() < 0 {
			return Nothing, nil
		}
	}
	return Subsumes, nil
}

// Subsumes is the only nonzero relation_with(g) value spec.md §4.4.1 names.
const Subsumes Relation = 1

// Contains reports whether p ⊇ q.
func (p *Polyhedron) Contains(q *Polyhedron) (bool, error) {
	if err := checkTopology(p.topology, q.topology); err != nil {
		return false, err
	}
	if p.spaceDim != q.spaceDim {
		return false, ErrDimIncompat
	}
	if q.IsEmpty() {
		return true, nil
	}
	if p.IsEmpty() {
		return false, nil
	}
	p.Minimize()
	for _, g := range q.GeneratorSystem().Generators() {
		for _, c := range p.conSys.Constraints() {
			v := dualValue(c.Row(), g.Row())
			if c.IsEquality() && !v.IsZero() {
				return false, nil
			}
			if !c.IsEquality() && v.Sign() < 0 {
				return false, nil
			}
			if c.IsStrict() && v.Sign() == 0 && g.Kind() == generator.Point {
				return false, nil
			}
		}
	}
	return true, nil
}

// StrictlyContains reports whether p ⊋ q.
func (p *Polyhedron) StrictlyContains(q *Polyhedron) (bool, error) {
	c, err := p.Contains(q)
	if err != nil || !c {
		return false, err
	}
	eq, err := q.Contains(p)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// IsIncludedIn is Contains with arguments reversed: q.IsIncludedIn(p) == p.Contains(q).
func (p *Polyhedron) IsIncludedIn(q *Polyhedron) (bool, error) { return q.Contains(p) }

// IsDisjointFrom reports whether p ∩ q = ∅.
func (p *Polyhedron) IsDisjointFrom(q *Polyhedron) (bool, error) {
	if err := checkTopology(p.topology, q.topology); err != nil {
		return false, err
	}
	if p.spaceDim != q.spaceDim {
		return false, ErrDimIncompat
	}
	clone := p.Clone()
	if err := clone.IntersectionAssign(q); err != nil {
		return false, err
	}
	return clone.IsEmpty(), nil
}

// Equal reports whether p and q denote the same convex set.
func (p *Polyhedron) Equal(q *Polyhedron) (bool, error) {
	a, err := p.Contains(q)
	if err != nil {
		return false, err
	}
	b, err := q.Contains(p)
	if err != nil {
		return false, err
	}
	return a && b, nil
}

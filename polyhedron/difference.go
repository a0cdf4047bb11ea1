package polyhedron

import (
	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/constraint"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/row"
)

// PolyDifferenceAssign sets p := p \ q (spec.md §4.4.1, §4.4.4). For each
// constraint c of a minimized q, the complement half-space ¬c is formed and
// accumulated into a poly-hull: D := D ⊔ (p ⊓ ¬c). In the closed-topology
// case, the complement of an equality cannot be represented as a single
// closed half-space (it is a strict disjunction, e > 0 ∨ e < 0); when that
// case is reached and p is not already contained in q, the algorithm backs
// off and returns p unchanged as a safe over-approximation (spec.md §4.4.4,
// Open Question 2).
func (p *Polyhedron) PolyDifferenceAssign(q *Polyhedron) error {
	if err := checkTopology(p.topology, q.topology); err != nil {
		return err
	}
	if p.spaceDim != q.spaceDim {
		return ErrDimIncompat
	}
	if p.IsEmpty() || q.IsEmpty() {
		return nil
	}
	q.Minimize()

	included, err := q.Contains(p)
	if err != nil {
		return err
	}
	if included {
		p.st = statusEmpty
		return nil
	}

	result := Empty(p.spaceDim, p.topology)
	for _, c := range q.conSys.Constraints() {
		complement, ok := complementConstraint(c, p.topology)
		if !ok {
			// Equality in a closed polyhedron: complement is not a single
			// closed half-space. Safe fallback: leave p unchanged overall.
			return nil
		}
		piece := p.Clone()
		if err := piece.AddConstraint(complement); err != nil {
			return err
		}
		if err := result.PolyHullAssign(piece); err != nil {
			return err
		}
	}
	*p = *result
	return nil
}

// complementConstraint returns a half-space approximating ¬c, or false if c
// is an equality (whose true complement, e>0 ∨ e<0, is a disjunction with
// no single-constraint representation in either topology -- the fallback
// case spec.md §4.4.4 and Open Question 2 name). For an inequality, the
// precise complement is strict (¬(e>=0) is e<0); a NecessarilyClosed
// topology cannot hold strict constraints, so the closed-domain case
// widens the complement to its non-strict relaxation (-e>=0), trading
// precision (it re-admits the shared boundary) for representability, which
// is exactly the over-approximation spec.md §4.4.4 describes.
func complementConstraint(c constraint.Constraint, topology row.Topology) (constraint.Constraint, bool) {
	e := linexpr.FromColumns(c.Row().Columns()[:c.SpaceDimension()+1])
	neg := e.Times(coefficient.FromInt64(-1))
	switch c.Type() {
	case constraint.NonStrictInequality:
		if topology == row.NotNecessarilyClosed {
			return constraint.Strict(neg), true
		}
		return constraint.NonStrict(neg), true
	case constraint.StrictInequality:
		// ¬(e > 0) is e <= 0, i.e. -e >= 0: exactly representable in both
		// topologies already.
		return constraint.NonStrict(neg), true
	default: // Equality
		return constraint.Constraint{}, false
	}
}

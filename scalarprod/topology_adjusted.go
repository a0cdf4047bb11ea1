package scalarprod

import (
	"github.com/polylat/polylat/constraint"
	"github.com/polylat/polylat/generator"
)

// TopologyAdjustedSign computes, for a fixed Constraint c, the sign of the
// scalar product of c against a Generator appropriate to c's relation,
// encoding spec.md §4.3's satisfaction table:
//
//   - equality:             generator satisfies iff product = 0.
//   - non-strict inequality: lines must saturate; rays/points (and, for
//     NNC, closure points) must give product >= 0.
//   - strict inequality (NNC only): lines must saturate; rays/closure
//     points require product >= 0; points require product > 0 strictly
//     (a point lying exactly on the boundary fails a strict constraint,
//     which ReducedAssign alone cannot express, since that equality is
//     legitimate for a ray or closure point on the same constraint).
//
// Go's row.Row does not replicate PPL's internal single-global-epsilon-
// dimension encoding; TopologyAdjustedSign instead dispatches explicitly on
// generator.Kind() so the predicate table above holds by construction. See
// DESIGN.md for the rationale.
type TopologyAdjustedSign struct {
	c constraint.Constraint
}

// ForConstraint builds a TopologyAdjustedSign bound to c.
func ForConstraint(c constraint.Constraint) TopologyAdjustedSign {
	return TopologyAdjustedSign{c: c}
}

// Sign returns the topology-adjusted sign of (c, g).
func (t TopologyAdjustedSign) Sign(g generator.Generator) int {
	if t.c.Type() != constraint.Equality && g.Kind() == generator.Line {
		if ReducedSign(t.c.Row(), g.Row()) != 0 {
			// A line satisfies an inequality only by saturating it.
			return -1
		}
	}
	switch t.c.Type() {
	case constraint.Equality:
		return ReducedSign(t.c.Row(), g.Row())
	case constraint.NonStrictInequality:
		return ReducedSign(t.c.Row(), g.Row())
	default: // StrictInequality
		s := ReducedSign(t.c.Row(), g.Row())
		if g.Kind() == generator.Point && s == 0 {
			// A point exactly on the boundary does not satisfy a strict
			// inequality, even though the reduced product is zero.
			return -1
		}
		return s
	}
}

package system

import (
	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/constraint"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/linsys"
	"github.com/polylat/polylat/row"
)

// ConstraintSystem is a Linear_System of Constraint rows: a
// NecessarilyClosed system rejects strict inequalities outright except for
// trivially-inconsistent ones ("0 > 0"), which it accepts while marking
// itself inconsistent (spec.md §4.2).
type ConstraintSystem struct {
	sys          *linsys.System
	inconsistent bool
}

// NewConstraintSystem returns an empty ConstraintSystem of the given
// topology and space dimension.
func NewConstraintSystem(topology row.Topology, spaceDim int) *ConstraintSystem {
	return &ConstraintSystem{sys: linsys.New(topology, spaceDim+topology.Delta())}
}

// Topology returns the system's topology.
func (cs *ConstraintSystem) Topology() row.Topology { return cs.sys.Topology() }

// SpaceDimension returns the number of variable columns.
func (cs *ConstraintSystem) SpaceDimension() int { return cs.sys.NumColumns() - cs.sys.Topology().Delta() }

// NumRows returns the total constraint count (pending included).
func (cs *ConstraintSystem) NumRows() int { return cs.sys.NumRows() }

// IsInconsistent reports whether a trivially-false constraint (strict or
// not) was ever inserted, marking the whole system (and hence the owning
// polyhedron) unsatisfiable.
func (cs *ConstraintSystem) IsInconsistent() bool { return cs.inconsistent }

// Insert appends c, adjusting its topology/size to the system's. A strict
// inequality into a NecessarilyClosed system is rejected unless c is
// trivially false, in which case the system is marked inconsistent and an
// equivalent closed-topology contradiction ("-1 = 0") is recorded in its
// place so downstream minimization still observes unsatisfiability.
func (cs *ConstraintSystem) Insert(c constraint.Constraint) error {
	if c.IsStrict() && cs.sys.Topology() == row.NecessarilyClosed {
		if !c.IsTriviallyFalse() {
			return ErrStrictOnClosed
		}
		cs.inconsistent = true
		contradiction := constraint.Equal(linexpr.Constant(coefficient.FromInt64(-1)))
		return cs.sys.Insert(contradiction.Row())
	}
	if c.IsTriviallyFalse() {
		cs.inconsistent = true
	}
	return cs.sys.Insert(c.Row())
}

// InsertPending is Insert's pending-row counterpart.
func (cs *ConstraintSystem) InsertPending(c constraint.Constraint) error {
	if c.IsStrict() && cs.sys.Topology() == row.NecessarilyClosed {
		if !c.IsTriviallyFalse() {
			return ErrStrictOnClosed
		}
		cs.inconsistent = true
		contradiction := constraint.Equal(linexpr.Constant(coefficient.FromInt64(-1)))
		return cs.sys.InsertPending(contradiction.Row())
	}
	if c.IsTriviallyFalse() {
		cs.inconsistent = true
	}
	return cs.sys.InsertPending(c.Row())
}

// Constraints returns every row (pending included) reinterpreted as Constraint.
func (cs *ConstraintSystem) Constraints() []constraint.Constraint {
	rows := cs.sys.Rows()
	out := make([]constraint.Constraint, 0, len(rows))
	for _, r := range rows {
		c, err := constraint.FromRow(r)
		if err == nil {
			out = append(out, c)
		}
	}
	return out
}

// Linsys exposes the underlying linsys.System for use by the polyhedron
// engine's conversion/minimization routines.
func (cs *ConstraintSystem) Linsys() *linsys.System { return cs.sys }

// Clone returns an independent deep copy.
func (cs *ConstraintSystem) Clone() *ConstraintSystem {
	return &ConstraintSystem{sys: cs.sys.Clone(), inconsistent: cs.inconsistent}
}

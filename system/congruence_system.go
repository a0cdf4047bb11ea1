package system

import (
	"sort"

	"github.com/polylat/polylat/congruence"
)

// CongruenceSystem is an ordered collection of Congruence rows. Unlike
// ConstraintSystem/GeneratorSystem it does not delegate to linsys.System:
// a Congruence carries a modulus that row.Row has no column for, and
// linsys.System offers no hook for per-row auxiliary data, so the modulus
// would have to be tracked in a parallel slice kept in lockstep through
// every sort/merge/remove -- simpler and just as faithful to spec.md §4.1's
// operation list to keep congruence.Congruence values directly.
type CongruenceSystem struct {
	rows            []congruence.Congruence
	firstPendingRow int
	spaceDim        int
}

// NewCongruenceSystem returns an empty CongruenceSystem over the given
// space dimension.
func NewCongruenceSystem(spaceDim int) *CongruenceSystem {
	return &CongruenceSystem{spaceDim: spaceDim}
}

// SpaceDimension returns the system's space dimension.
func (cs *CongruenceSystem) SpaceDimension() int { return cs.spaceDim }

// NumRows returns the total congruence count (pending included).
func (cs *CongruenceSystem) NumRows() int { return len(cs.rows) }

// NumPendingRows returns the size of the pending tail.
func (cs *CongruenceSystem) NumPendingRows() int { return len(cs.rows) - cs.firstPendingRow }

// Insert appends c to the non-pending prefix, growing spaceDim if c
// mentions a higher variable.
func (cs *CongruenceSystem) Insert(c congruence.Congruence) {
	if d := c.SpaceDimension(); d > cs.spaceDim {
		cs.spaceDim = d
	}
	cs.rows = append(cs.rows, congruence.Congruence{})
	copy(cs.rows[cs.firstPendingRow+1:], cs.rows[cs.firstPendingRow:len(cs.rows)-1])
	cs.rows[cs.firstPendingRow] = c
	cs.firstPendingRow++
}

// InsertPending appends c to the pending tail.
func (cs *CongruenceSystem) InsertPending(c congruence.Congruence) {
	if d := c.SpaceDimension(); d > cs.spaceDim {
		cs.spaceDim = d
	}
	cs.rows = append(cs.rows, c)
}

// Congruences returns every row (pending included).
func (cs *CongruenceSystem) Congruences() []congruence.Congruence {
	out := make([]congruence.Congruence, len(cs.rows))
	copy(out, cs.rows)
	return out
}

// UnsetPendingRows promotes all pending rows to non-pending.
func (cs *CongruenceSystem) UnsetPendingRows() { cs.firstPendingRow = len(cs.rows) }

// SortRows sorts the non-pending prefix by (is-equality, |modulus|,
// |inhomogeneous term|), the congruence analogue of row.Row.Compare's
// (kind, |coeffs|) order.
func (cs *CongruenceSystem) SortRows() {
	prefix := cs.rows[:cs.firstPendingRow]
	sort.Slice(prefix, func(i, j int) bool { return congruenceLess(prefix[i], prefix[j]) })
}

func congruenceLess(a, b congruence.Congruence) bool {
	if a.IsEquality() != b.IsEquality() {
		return a.IsEquality()
	}
	if c := a.Modulus().Abs().Cmp(b.Modulus().Abs()); c != 0 {
		return c < 0
	}
	return a.InhomogeneousTerm().Abs().Cmp(b.InhomogeneousTerm().Abs()) < 0
}

// OnlyEqualities reports whether every row is an equality (modulus 0),
// the shape a CongruenceSystem must have when embedded inside a
// Polyhedron rather than a Grid (spec.md §4.5: "proper non-tautological
// congruences in a polyhedron's add_congruence ... are rejected").
func (cs *CongruenceSystem) OnlyEqualities() bool {
	for _, c := range cs.rows {
		if !c.IsEquality() {
			return false
		}
	}
	return true
}

// IsTriviallyFalse reports whether any row is trivially false.
func (cs *CongruenceSystem) IsTriviallyFalse() bool {
	for _, c := range cs.rows {
		if c.IsTriviallyFalse() {
			return true
		}
	}
	return false
}

// Clone returns an independent deep copy.
func (cs *CongruenceSystem) Clone() *CongruenceSystem {
	out := &CongruenceSystem{
		rows:            make([]congruence.Congruence, len(cs.rows)),
		firstPendingRow: cs.firstPendingRow,
		spaceDim:        cs.spaceDim,
	}
	copy(out.rows, cs.rows)
	return out
}

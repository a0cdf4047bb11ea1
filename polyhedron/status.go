package polyhedron

// status is the lazy-state bitset spec.md §4.4.2 names. A freshly
// constructed Polyhedron always has a consistent status: it is marked empty
// or zero-dimensional universe, or at least one of its representations is
// marked up-to-date (only Universe and an unconstrained FromConstraints also
// mark their generators minimized).
type status uint16

const (
	cUpToDate status = 1 << iota
	gUpToDate
	cMinimized
	gMinimized
	satCUpToDate
	satGUpToDate
	cPending
	gPending
	statusEmpty
	zeroDimUniverse
)

func (s status) has(bit status) bool { return s&bit != 0 }

func (s status) with(bit status) status { return s | bit }

func (s status) without(bit status) status { return s &^ bit }

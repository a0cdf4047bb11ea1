package grid

// status is the lazy-state bitset mirroring polyhedron's (spec.md §4.4.2,
// applied to the grid's dual representation).
type status uint16

const (
	cUpToDate status = 1 << iota
	gUpToDate
	cMinimized
	gMinimized
	statusEmpty
	zeroDimUniverse
)

func (s status) has(bit status) bool { return s&bit != 0 }

func (s status) with(bit status) status { return s | bit }

func (s status) without(bit status) status { return s &^ bit }

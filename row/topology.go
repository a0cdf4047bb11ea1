package row

// Topology distinguishes closed polyhedra (only non-strict inequalities) from
// not-necessarily-closed ones (which may carry strict inequalities and
// closure points, via an extra epsilon column).
type Topology int

const (
	// NecessarilyClosed rows have no epsilon column.
	NecessarilyClosed Topology = iota
	// NotNecessarilyClosed rows carry one extra trailing epsilon column.
	NotNecessarilyClosed
)

// Delta returns 1 for NecessarilyClosed, 2 for NotNecessarilyClosed: the
// number of non-variable columns (inhomogeneous term, plus epsilon for NNC).
func (t Topology) Delta() int {
	if t == NotNecessarilyClosed {
		return 2
	}
	return 1
}

func (t Topology) String() string {
	if t == NotNecessarilyClosed {
		return "NOT_NECESSARILY_CLOSED"
	}
	return "NECESSARILY_CLOSED"
}

// Kind distinguishes the two row interpretations shared by constraints
// (equality vs inequality), generators (line vs ray/point/closure-point) and
// congruences (equality vs proper congruence).
type Kind int

const (
	// LineOrEquality rows represent e = 0 (constraint/congruence) or a line
	// (generator): the row's meaning is invariant under sign flip.
	LineOrEquality Kind = iota
	// RayOrPointOrInequality rows represent e >= 0 / e > 0 (constraint), or a
	// ray/point/closure-point (generator): sign is meaningful and must never
	// be flipped by normalization.
	RayOrPointOrInequality
)

func (k Kind) String() string {
	if k == LineOrEquality {
		return "LINE_OR_EQUALITY"
	}
	return "RAY_OR_POINT_OR_INEQUALITY"
}

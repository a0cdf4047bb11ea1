package row

import (
	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/variable"
)

// Row is the shared storage primitive for constraints, generators, and
// congruences: a column vector of Coefficient plus Topology and Kind flags.
// Column 0 is the inhomogeneous term; columns [1, space_dim] hold variable
// coefficients; NotNecessarilyClosed rows carry one extra trailing epsilon
// column at index space_dim+1.
//
// Row has value semantics: every mutator returns a new Row.
type Row struct {
	columns  []coefficient.Coefficient
	topology Topology
	kind     Kind
}

// New returns a zero Row of the given space dimension, topology, and kind.
func New(spaceDim int, topology Topology, kind Kind) Row {
	return Row{
		columns:  make([]coefficient.Coefficient, spaceDim+topology.Delta()),
		topology: topology,
		kind:     kind,
	}
}

// FromColumns builds a Row directly from a raw column vector (column 0 is
// the inhomogeneous term, the trailing column is epsilon for
// NotNecessarilyClosed rows). Used by linsys.System's column-reshaping
// operations, which must rebuild rows after permuting or truncating columns.
func FromColumns(cols []coefficient.Coefficient, topology Topology, kind Kind) Row {
	cp := make([]coefficient.Coefficient, len(cols))
	copy(cp, cols)
	return Row{columns: cp, topology: topology, kind: kind}
}

// FromExpression builds a Row from a Linear_Expression's columns, zero-filling
// the epsilon column for NotNecessarilyClosed rows.
func FromExpression(e linexpr.Expression, topology Topology, kind Kind) Row {
	src := e.Columns()
	cols := make([]coefficient.Coefficient, e.SpaceDimension()+topology.Delta())
	copy(cols, src)
	return Row{columns: cols, topology: topology, kind: kind}
}

// SpaceDimension returns the number of user variables mentioned by r.
func (r Row) SpaceDimension() int {
	return len(r.columns) - r.topology.Delta()
}

// NumColumns returns the raw column count (space_dim + topology.Delta()).
func (r Row) NumColumns() int { return len(r.columns) }

// Topology returns r's topology.
func (r Row) Topology() Topology { return r.topology }

// Kind returns r's kind.
func (r Row) Kind() Kind { return r.kind }

// WithKind returns a copy of r with its kind flag set to k.
func (r Row) WithKind(k Kind) Row {
	cp := r.Clone()
	cp.kind = k
	return cp
}

// InhomogeneousTerm returns column 0.
func (r Row) InhomogeneousTerm() coefficient.Coefficient { return r.columns[0] }

// SetInhomogeneousTerm returns a copy of r with column 0 set to c.
func (r Row) SetInhomogeneousTerm(c coefficient.Coefficient) Row {
	cp := r.Clone()
	cp.columns[0] = c
	return cp
}

// Coefficient returns the coefficient of v, or 0 if v exceeds r's space dimension.
func (r Row) Coefficient(v variable.Variable) coefficient.Coefficient {
	idx := v.ID() + 1
	if idx > r.SpaceDimension() {
		return coefficient.Zero()
	}
	return r.columns[idx]
}

// SetCoefficient returns a copy of r with the coefficient of v set to c. v
// must not exceed r's current space dimension (use a system-level reshape to
// grow space dimension).
func (r Row) SetCoefficient(v variable.Variable, c coefficient.Coefficient) Row {
	cp := r.Clone()
	cp.columns[v.ID()+1] = c
	return cp
}

// Epsilon returns the epsilon column. Valid only for NotNecessarilyClosed rows.
func (r Row) Epsilon() (coefficient.Coefficient, error) {
	if r.topology != NotNecessarilyClosed {
		return coefficient.Zero(), ErrEpsilonOnClosed
	}
	return r.columns[len(r.columns)-1], nil
}

// SetEpsilon returns a copy of r with the epsilon column set to c. Valid only
// for NotNecessarilyClosed rows.
func (r Row) SetEpsilon(c coefficient.Coefficient) (Row, error) {
	if r.topology != NotNecessarilyClosed {
		return r, ErrEpsilonOnClosed
	}
	cp := r.Clone()
	cp.columns[len(cp.columns)-1] = c
	return cp, nil
}

// Column returns the raw column at index i (0 = inhomogeneous term).
func (r Row) Column(i int) coefficient.Coefficient { return r.columns[i] }

// Columns returns a copy of the raw column vector.
func (r Row) Columns() []coefficient.Coefficient {
	cp := make([]coefficient.Coefficient, len(r.columns))
	copy(cp, r.columns)
	return cp
}

// Clone returns a deep, independent copy of r.
func (r Row) Clone() Row {
	cols := make([]coefficient.Coefficient, len(r.columns))
	copy(cols, r.columns)
	return Row{columns: cols, topology: r.topology, kind: r.kind}
}

// AdjustTopology returns a copy of r rewritten for t. Converting from
// NecessarilyClosed to NotNecessarilyClosed appends a zero epsilon column
// (converting generator points into rows with epsilon = divisor is the
// caller's responsibility, since Row itself does not know whether it is a
// point). Converting from NotNecessarilyClosed to NecessarilyClosed drops the
// epsilon column and returns ErrTopologyMismatch if it was nonzero (the
// conversion would be lossy).
func (r Row) AdjustTopology(t Topology) (Row, error) {
	if r.topology == t {
		return r, nil
	}
	if t == NotNecessarilyClosed {
		cols := make([]coefficient.Coefficient, len(r.columns)+1)
		copy(cols, r.columns)
		return Row{columns: cols, topology: t, kind: r.kind}, nil
	}
	eps := r.columns[len(r.columns)-1]
	if !eps.IsZero() {
		return r, ErrTopologyMismatch
	}
	cols := make([]coefficient.Coefficient, len(r.columns)-1)
	copy(cols, r.columns[:len(r.columns)-1])
	return Row{columns: cols, topology: t, kind: r.kind}, nil
}

// AddZeroColumns returns a copy of r with n zero variable columns inserted
// just before the epsilon/closing columns (i.e. the space dimension grows by n).
func (r Row) AddZeroColumns(n int) Row {
	if n <= 0 {
		return r.Clone()
	}
	split := r.SpaceDimension() + 1 // keep column 0..space_dim, append n zeros, then trailing (eps)
	cols := make([]coefficient.Coefficient, len(r.columns)+n)
	copy(cols[:split], r.columns[:split])
	copy(cols[split+n:], r.columns[split:])
	return Row{columns: cols, topology: r.topology, kind: r.kind}
}

// StrongNormalize divides every column by gcd(|columns|) and, for
// LineOrEquality rows only, canonicalizes the sign so the last nonzero
// coefficient is positive. RayOrPointOrInequality rows are never sign-
// flipped, since that would reverse the half-space/generator they denote.
func (r Row) StrongNormalize() Row {
	g := coefficient.Zero()
	allZero := true
	for _, c := range r.columns {
		if c.IsZero() {
			continue
		}
		allZero = false
		g = g.GCD(c)
	}
	if allZero || g.IsZero() {
		return r.Clone()
	}
	cols := make([]coefficient.Coefficient, len(r.columns))
	for i, c := range r.columns {
		q, _ := c.DivFloor(g) // g>0 and c is a multiple of g, so floor==exact
		cols[i] = q
	}
	if r.kind == LineOrEquality {
		lastSign := 0
		for i := len(cols) - 1; i >= 0; i-- {
			if s := cols[i].Sign(); s != 0 {
				lastSign = s
				break
			}
		}
		if lastSign < 0 {
			for i := range cols {
				cols[i] = cols[i].Neg()
			}
		}
	}
	return Row{columns: cols, topology: r.topology, kind: r.kind}
}

// Compare orders rows lexicographically on (Kind, |coefficients|) as required
// for a System's sorted prefix, after both rows have been strong-normalized
// by the caller (Compare does not normalize). Ties are broken by comparing
// raw columns lexicographically (sign included), so Compare is a total order.
func (r Row) Compare(other Row) int {
	if r.kind != other.kind {
		if r.kind == LineOrEquality {
			return -1
		}
		return 1
	}
	n := len(r.columns)
	if len(other.columns) < n {
		n = len(other.columns)
	}
	for i := 0; i < n; i++ {
		a := r.columns[i].Abs()
		b := other.columns[i].Abs()
		if c := a.Cmp(b); c != 0 {
			return c
		}
	}
	if len(r.columns) != len(other.columns) {
		if len(r.columns) < len(other.columns) {
			return -1
		}
		return 1
	}
	for i := 0; i < n; i++ {
		if c := r.columns[i].Cmp(other.columns[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether r and other have identical columns, topology, and kind.
func (r Row) Equal(other Row) bool {
	if r.topology != other.topology || r.kind != other.kind || len(r.columns) != len(other.columns) {
		return false
	}
	for i := range r.columns {
		if !r.columns[i].Equal(other.columns[i]) {
			return false
		}
	}
	return true
}

// IsZero reports whether every column of r is 0.
func (r Row) IsZero() bool {
	for _, c := range r.columns {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

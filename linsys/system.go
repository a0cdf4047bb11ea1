package linsys

import (
	"sort"

	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/row"
)

// System is Linear_System: rows[0:firstPendingRow] is the non-pending
// prefix, rows[firstPendingRow:] is the pending tail. sorted records
// whether the non-pending prefix is in strictly ascending Compare order.
type System struct {
	rows            []row.Row
	firstPendingRow int
	sorted          bool
	topology        row.Topology
	numColumns      int
}

// New returns an empty System of the given topology and column count
// (space_dim + topology.Delta()).
func New(topology row.Topology, numColumns int) *System {
	return &System{topology: topology, numColumns: numColumns, sorted: true}
}

// NumRows returns the total row count (pending included).
func (s *System) NumRows() int { return len(s.rows) }

// NumColumns returns the system's column count.
func (s *System) NumColumns() int { return s.numColumns }

// FirstPendingRow returns the index at which the pending tail begins.
func (s *System) FirstPendingRow() int { return s.firstPendingRow }

// NumPendingRows returns len(rows) - firstPendingRow.
func (s *System) NumPendingRows() int { return len(s.rows) - s.firstPendingRow }

// IsSorted reports whether the non-pending prefix is marked sorted.
func (s *System) IsSorted() bool { return s.sorted }

// Topology returns the system's topology.
func (s *System) Topology() row.Topology { return s.topology }

// Row returns a copy of row i.
func (s *System) Row(i int) row.Row { return s.rows[i] }

// Rows returns a copy of every row (pending included).
func (s *System) Rows() []row.Row {
	out := make([]row.Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// NonPendingRows returns a copy of the non-pending prefix.
func (s *System) NonPendingRows() []row.Row {
	out := make([]row.Row, s.firstPendingRow)
	copy(out, s.rows[:s.firstPendingRow])
	return out
}

// PendingRows returns a copy of the pending tail.
func (s *System) PendingRows() []row.Row {
	out := make([]row.Row, s.NumPendingRows())
	copy(out, s.rows[s.firstPendingRow:])
	return out
}

// fit adjusts r's topology and column count to the system's, failing if
// that would be lossy.
func (s *System) fit(r row.Row) (row.Row, error) {
	adjusted, err := r.AdjustTopology(s.topology)
	if err != nil {
		return row.Row{}, ErrTopologyMismatch
	}
	if adjusted.SpaceDimension() > s.numColumns-s.topology.Delta() {
		return row.Row{}, ErrDimensionMismatch
	}
	if n := s.numColumns - s.topology.Delta() - adjusted.SpaceDimension(); n > 0 {
		adjusted = adjusted.AddZeroColumns(n)
	}
	return adjusted, nil
}

// AddRow appends r to the non-pending prefix, shifting any pending rows
// forward.
func (s *System) AddRow(r row.Row) error {
	adjusted, err := s.fit(r)
	if err != nil {
		return err
	}
	s.rows = append(s.rows, row.Row{})
	copy(s.rows[s.firstPendingRow+1:], s.rows[s.firstPendingRow:len(s.rows)-1])
	s.rows[s.firstPendingRow] = adjusted
	s.firstPendingRow++
	s.sorted = false
	return nil
}

// AddPendingRow appends r to the pending tail.
func (s *System) AddPendingRow(r row.Row) error {
	adjusted, err := s.fit(r)
	if err != nil {
		return err
	}
	s.rows = append(s.rows, adjusted)
	return nil
}

// Insert is an alias for AddRow, adjusting r's topology/size to the
// system's before appending (spec.md §4.1).
func (s *System) Insert(r row.Row) error { return s.AddRow(r) }

// InsertPending is an alias for AddPendingRow.
func (s *System) InsertPending(r row.Row) error { return s.AddPendingRow(r) }

// AddZeroRows appends k zero rows of the given kind to the non-pending prefix.
func (s *System) AddZeroRows(k int, kind row.Kind) {
	for i := 0; i < k; i++ {
		_ = s.AddRow(row.New(s.numColumns-s.topology.Delta(), s.topology, kind))
	}
}

// AddZeroColumns appends c zero variable columns to every row and grows the
// system's column count accordingly.
func (s *System) AddZeroColumns(c int) {
	if c <= 0 {
		return
	}
	for i := range s.rows {
		s.rows[i] = s.rows[i].AddZeroColumns(c)
	}
	s.numColumns += c
}

// AddZeroRowsAndColumns appends c zero columns, then k zero rows of kind.
func (s *System) AddZeroRowsAndColumns(k, c int, kind row.Kind) {
	s.AddZeroColumns(c)
	s.AddZeroRows(k, kind)
}

// RemoveTrailingColumns drops the last c variable columns (not counting the
// topology's delta columns) from every row.
func (s *System) RemoveTrailingColumns(c int) {
	if c <= 0 {
		return
	}
	delta := s.topology.Delta()
	newSpaceDim := s.numColumns - delta - c
	if newSpaceDim < 0 {
		newSpaceDim = 0
	}
	for i, r := range s.rows {
		cols := r.Columns()
		trimmed := make([]coefficient.Coefficient, newSpaceDim+delta)
		copy(trimmed[:newSpaceDim+1], cols[:newSpaceDim+1])
		if delta == 2 {
			trimmed[newSpaceDim+1] = cols[len(cols)-1]
		}
		s.rows[i] = row.FromColumns(trimmed, r.Topology(), r.Kind())
	}
	s.numColumns = newSpaceDim + delta
}

// SwapColumns swaps column i and column j in every row.
func (s *System) SwapColumns(i, j int) {
	for k, r := range s.rows {
		cols := r.Columns()
		cols[i], cols[j] = cols[j], cols[i]
		s.rows[k] = row.FromColumns(cols, r.Topology(), r.Kind())
	}
}

// PermuteColumns applies perm (perm[newIndex] = oldIndex) to every row's columns.
func (s *System) PermuteColumns(perm []int) {
	for k, r := range s.rows {
		cols := r.Columns()
		out := make([]coefficient.Coefficient, len(cols))
		for newIdx, oldIdx := range perm {
			out[newIdx] = cols[oldIdx]
		}
		s.rows[k] = row.FromColumns(out, r.Topology(), r.Kind())
	}
}

// SortRows strong-normalizes and sorts the non-pending prefix in ascending
// Compare order, then marks it sorted.
func (s *System) SortRows() {
	prefix := s.rows[:s.firstPendingRow]
	for i := range prefix {
		prefix[i] = prefix[i].StrongNormalize()
	}
	sort.Slice(prefix, func(i, j int) bool { return prefix[i].Compare(prefix[j]) < 0 })
	s.sorted = true
}

// SortPendingAndRemoveDuplicates sorts the pending tail and removes any row
// duplicated within the pending tail or already present in the (assumed
// sorted) non-pending prefix. May leave NumPendingRows() == 0.
func (s *System) SortPendingAndRemoveDuplicates() {
	pending := s.rows[s.firstPendingRow:]
	for i := range pending {
		pending[i] = pending[i].StrongNormalize()
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].Compare(pending[j]) < 0 })

	nonPending := s.rows[:s.firstPendingRow]
	out := make([]row.Row, 0, len(pending))
	for i, r := range pending {
		if i > 0 && r.Equal(pending[i-1]) {
			continue
		}
		dup := false
		for _, np := range nonPending {
			if r.Equal(np) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, r)
		}
	}
	s.rows = append(s.rows[:s.firstPendingRow], out...)
}

// MergeRowsAssign merges other's sorted non-pending rows into s's sorted
// non-pending prefix, producing a sorted result. Both s and other must be
// marked sorted and have no pending rows.
func (s *System) MergeRowsAssign(other *System) error {
	if !s.sorted || !other.sorted || s.NumPendingRows() != 0 || other.NumPendingRows() != 0 {
		return ErrUnsortedMerge
	}
	a := s.rows
	b := other.rows
	merged := make([]row.Row, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		c := a[i].Compare(b[j])
		switch {
		case c < 0:
			merged = append(merged, a[i])
			i++
		case c > 0:
			merged = append(merged, b[j])
			j++
		default:
			merged = append(merged, a[i])
			i++
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	s.rows = merged
	s.firstPendingRow = len(merged)
	s.sorted = true
	return nil
}

// UnsetPendingRows promotes all pending rows to non-pending and clears the
// sortedness flag (the appended rows are not assumed to preserve order).
func (s *System) UnsetPendingRows() {
	s.firstPendingRow = len(s.rows)
	s.sorted = false
}

// RemoveRow deletes row i, shifting subsequent rows down and adjusting
// firstPendingRow if i was in the non-pending prefix.
func (s *System) RemoveRow(i int) error {
	if i < 0 || i >= len(s.rows) {
		return ErrIndexOutOfRange
	}
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	if i < s.firstPendingRow {
		s.firstPendingRow--
	}
	return nil
}

// StrongNormalizeAll strong-normalizes every row in place.
func (s *System) StrongNormalizeAll() {
	for i := range s.rows {
		s.rows[i] = s.rows[i].StrongNormalize()
	}
}

// Clone returns a deep, independent copy of s.
func (s *System) Clone() *System {
	rows := make([]row.Row, len(s.rows))
	for i, r := range s.rows {
		rows[i] = r.Clone()
	}
	return &System{
		rows:            rows,
		firstPendingRow: s.firstPendingRow,
		sorted:          s.sorted,
		topology:        s.topology,
		numColumns:      s.numColumns,
	}
}

package ascii

import (
	"strconv"

	"github.com/polylat/polylat/linsys"
	"github.com/polylat/polylat/row"
)

// DumpSystem writes a linsys.System block in the shape spec.md §6.1
// names: a "<label> (<up-to-date?>)" header, a shape line, then one row
// line per row.
func DumpSystem(w *Writer, label string, upToDate bool, sys *linsys.System) {
	w.Token(label)
	w.Token("(")
	w.Token(strconv.FormatBool(upToDate))
	w.Token(")")
	w.EndLine()

	w.Token(sys.Topology().String())
	w.Int(sys.NumRows())
	w.Token("x")
	w.Int(sys.NumColumns())
	if sys.IsSorted() {
		w.Token("sorted")
	} else {
		w.Token("not_sorted")
	}
	w.Token("index_first_pending")
	w.Int(sys.FirstPendingRow())
	w.EndLine()

	for _, r := range sys.Rows() {
		DumpRow(w, r)
	}
}

// LoadSystem reads a linsys.System block previously written by DumpSystem,
// expecting the given label.
func LoadSystem(s *Scanner, label string) (sys *linsys.System, upToDate bool, err error) {
	if err := s.Expect(label); err != nil {
		return nil, false, err
	}
	if err := s.Expect("("); err != nil {
		return nil, false, err
	}
	if !s.Next() {
		return nil, false, ErrMalformed
	}
	upToDate, perr := strconv.ParseBool(s.Token())
	if perr != nil {
		return nil, false, ErrMalformed
	}
	if err := s.Expect(")"); err != nil {
		return nil, false, err
	}

	if !s.Next() {
		return nil, false, ErrMalformed
	}
	var topology row.Topology
	switch s.Token() {
	case row.NecessarilyClosed.String():
		topology = row.NecessarilyClosed
	case row.NotNecessarilyClosed.String():
		topology = row.NotNecessarilyClosed
	default:
		return nil, false, ErrMalformed
	}

	numRows, err := s.Int()
	if err != nil {
		return nil, false, err
	}
	if err := s.Expect("x"); err != nil {
		return nil, false, err
	}
	numColumns, err := s.Int()
	if err != nil {
		return nil, false, err
	}
	if !s.Next() {
		return nil, false, ErrMalformed
	}
	sorted := s.Token() == "sorted"
	if err := s.Expect("index_first_pending"); err != nil {
		return nil, false, err
	}
	firstPending, err := s.Int()
	if err != nil {
		return nil, false, err
	}

	sys = linsys.New(topology, numColumns)
	for i := 0; i < numRows; i++ {
		r, err := LoadRow(s, topology, numColumns)
		if err != nil {
			return nil, false, err
		}
		if i < firstPending {
			if err := sys.AddRow(r); err != nil {
				return nil, false, err
			}
		} else {
			if err := sys.AddPendingRow(r); err != nil {
				return nil, false, err
			}
		}
	}
	if sorted {
		sys.SortRows()
	}
	return sys, upToDate, nil
}

package ascii

import (
	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/row"
)

// rowKindToken/rowKindFromToken encode row.Kind as the single-letter prefix
// each dumped row line carries ahead of its coefficients, so a loader can
// tell a line/equality row from a ray/point/inequality row without
// re-deriving it from the coefficients (which, for a zero ray, would be
// ambiguous).
func rowKindToken(k row.Kind) string {
	if k == row.LineOrEquality {
		return "L"
	}
	return "R"
}

func rowKindFromToken(tok string) (row.Kind, error) {
	switch tok {
	case "L":
		return row.LineOrEquality, nil
	case "R":
		return row.RayOrPointOrInequality, nil
	default:
		return 0, ErrMalformed
	}
}

// DumpRow writes r as "<L|R> c0 c1 ... cN" followed by a newline.
func DumpRow(w *Writer, r row.Row) {
	w.Token(rowKindToken(r.Kind()))
	for i := 0; i < r.NumColumns(); i++ {
		w.Coefficient(r.Column(i))
	}
	w.EndLine()
}

// LoadRow reads one row line for the given topology and column count.
func LoadRow(s *Scanner, topology row.Topology, numColumns int) (row.Row, error) {
	if !s.Next() {
		return row.Row{}, ErrMalformed
	}
	kind, err := rowKindFromToken(s.Token())
	if err != nil {
		return row.Row{}, err
	}
	cols := make([]coefficient.Coefficient, numColumns)
	for i := range cols {
		c, err := s.Coefficient()
		if err != nil {
			return row.Row{}, err
		}
		cols[i] = c
	}
	return row.FromColumns(cols, topology, kind), nil
}

package ascii

import "github.com/polylat/polylat/row"

// DumpBitMatrix writes m as "<label>" then one line per row: the row's
// population count followed by its set bit indices, e.g. "2 0 3" for a
// row with bits 0 and 3 set. This mirrors the sparse-index convention
// Sat_C/Sat_G dumps use in spec.md §6.1 ("sat_c\n<bit rows>").
func DumpBitMatrix(w *Writer, label string, m row.BitMatrix) {
	w.Token(label)
	w.EndLine()
	for i := 0; i < m.NumRows(); i++ {
		bits := []int{}
		m.Row(i).Each(func(idx int) { bits = append(bits, idx) })
		w.Int(len(bits))
		for _, b := range bits {
			w.Int(b)
		}
		w.EndLine()
	}
}

// LoadBitMatrix reads numRows lines previously written by DumpBitMatrix,
// expecting the given label.
func LoadBitMatrix(s *Scanner, label string, numRows int) (row.BitMatrix, error) {
	if err := s.Expect(label); err != nil {
		return row.BitMatrix{}, err
	}
	m := row.NewBitMatrix(numRows)
	for i := 0; i < numRows; i++ {
		count, err := s.Int()
		if err != nil {
			return row.BitMatrix{}, err
		}
		r := m.Row(i)
		for j := 0; j < count; j++ {
			idx, err := s.Int()
			if err != nil {
				return row.BitMatrix{}, err
			}
			r.Set(idx)
		}
	}
	return m, nil
}

package variable

// Variable is a nonnegative index identifying a space dimension. Variable
// values are 0-based: Variable(0) is the first user dimension.
type Variable int

// ID returns the underlying 0-based index.
func (v Variable) ID() int { return int(v) }

// SpaceDimension returns the minimal space dimension that accommodates v,
// i.e. v.ID() + 1.
func (v Variable) SpaceDimension() int { return int(v) + 1 }

// MaxSpaceDimension returns max(v.SpaceDimension() for v in vs), or 0 for an
// empty slice.
func MaxSpaceDimension(vs []Variable) int {
	max := 0
	for _, v := range vs {
		if d := v.SpaceDimension(); d > max {
			max = d
		}
	}
	return max
}

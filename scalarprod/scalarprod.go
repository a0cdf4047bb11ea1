package scalarprod

import (
	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/row"
)

// Assign computes sum(x[i]*y[i] for i < len(x's columns)). The caller must
// ensure space_dim(x) <= space_dim(y); Assign does not grow x.
func Assign(x, y row.Row) coefficient.Coefficient {
	xc := x.Columns()
	yc := y.Columns()
	z := coefficient.Zero()
	n := len(xc)
	if len(yc) < n {
		n = len(yc)
	}
	for i := 0; i < n; i++ {
		z = z.Add(xc[i].Mul(yc[i]))
	}
	return z
}

// Sign returns the sign of Assign(x, y).
func Sign(x, y row.Row) int { return Assign(x, y).Sign() }

// ReducedAssign computes Assign ignoring x's epsilon column (if x is
// NotNecessarilyClosed).
func ReducedAssign(x, y row.Row) coefficient.Coefficient {
	xc := x.Columns()
	if x.Topology() == row.NotNecessarilyClosed {
		xc = xc[:len(xc)-1]
	}
	yc := y.Columns()
	z := coefficient.Zero()
	n := len(xc)
	if len(yc) < n {
		n = len(yc)
	}
	for i := 0; i < n; i++ {
		z = z.Add(xc[i].Mul(yc[i]))
	}
	return z
}

// ReducedSign returns the sign of ReducedAssign(x, y).
func ReducedSign(x, y row.Row) int { return ReducedAssign(x, y).Sign() }

// HomogeneousAssign computes Assign ignoring x's inhomogeneous column (index 0).
func HomogeneousAssign(x, y row.Row) coefficient.Coefficient {
	xc := x.Columns()
	yc := y.Columns()
	z := coefficient.Zero()
	n := len(xc)
	if len(yc) < n {
		n = len(yc)
	}
	for i := 1; i < n; i++ {
		z = z.Add(xc[i].Mul(yc[i]))
	}
	return z
}

// HomogeneousSign returns the sign of HomogeneousAssign(x, y).
func HomogeneousSign(x, y row.Row) int { return HomogeneousAssign(x, y).Sign() }

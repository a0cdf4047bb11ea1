package grid

import (
	"math/big"

	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/congruence"
	"github.com/polylat/polylat/gridgen"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/system"
	"github.com/polylat/polylat/variable"
)

// This file implements the congruence <-> grid-generator conversion
// spec.md §4.5 calls "an integer (Hermite-like) reduction along
// dimensions". Equalities (modulus 0) are solved exactly, for any number
// of entangled variables, via ordinary rational Gauss-Jordan elimination
// (rref). Proper congruences (modulus > 0) are decomposed exactly in the
// common case where, after substituting out the equality-pivoted
// variables, the row reduces to a single free variable with unit
// coefficient and an integer-valued dependency direction -- this is the
// shape every axis-wise stride congruence takes (spec.md's own grid
// example, S6, is exactly this shape) and the shape remove/add space
// dimension operations preserve. A row that does not reduce this way
// (several entangled free variables remain, a non-unit coefficient
// survives scaling, or the variable's equality-dependency itself carries
// an irreducible fraction) is dropped rather than guessed at: dropping a
// congruence only widens the grid, so the result stays sound.

// rref row-reduces m into reduced row echelon form in place and returns
// the pivot column of each surviving (non-zero) row, in row order.
func rref(m [][]*big.Rat) []int {
	if len(m) == 0 {
		return nil
	}
	rows, cols := len(m), len(m[0])
	pivotRow := 0
	var pivotCols []int
	for col := 0; col < cols && pivotRow < rows; col++ {
		sel := -1
		for r := pivotRow; r < rows; r++ {
			if m[r][col].Sign() != 0 {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue
		}
		m[pivotRow], m[sel] = m[sel], m[pivotRow]
		inv := new(big.Rat).Inv(m[pivotRow][col])
		for j := 0; j < cols; j++ {
			m[pivotRow][j] = new(big.Rat).Mul(m[pivotRow][j], inv)
		}
		for r := 0; r < rows; r++ {
			if r == pivotRow {
				continue
			}
			factor := m[r][col]
			if factor.Sign() == 0 {
				continue
			}
			for j := 0; j < cols; j++ {
				m[r][j] = new(big.Rat).Sub(m[r][j], new(big.Rat).Mul(factor, m[pivotRow][j]))
			}
		}
		pivotCols = append(pivotCols, col)
		pivotRow++
	}
	return pivotCols
}

// solveEqualities row-reduces the augmented matrix of eqs (n coefficient
// columns + rhs) and returns, for every pivot variable p, its defining
// row (x_p = row[n] - Σ_{free j} row[j]*x_j). ok is false iff the system
// is inconsistent.
func solveEqualities(eqs []congruence.Congruence, n int) (rows map[int][]*big.Rat, ok bool) {
	if len(eqs) == 0 {
		return map[int][]*big.Rat{}, true
	}
	m := make([][]*big.Rat, len(eqs))
	for i, c := range eqs {
		row := make([]*big.Rat, n+1)
		for j := 0; j < n; j++ {
			row[j] = new(big.Rat).SetInt(c.Coefficient(variable.Variable(j)).BigInt())
		}
		row[n] = new(big.Rat).Neg(new(big.Rat).SetInt(c.InhomogeneousTerm().BigInt()))
		m[i] = row
	}
	pivotCols := rref(m)
	out := make(map[int][]*big.Rat, len(pivotCols))
	for i, col := range pivotCols {
		if col == n {
			return nil, false
		}
		out[col] = m[i]
	}
	return out, true
}

func isIntVec(v []*big.Rat) bool {
	for _, r := range v {
		if !r.IsInt() {
			return false
		}
	}
	return true
}

// lcmDenominators returns the LCM of every vᵢ's denominator, i.e. the
// smallest positive integer that makes scale*v integral for every v.
func lcmDenominators(vs []*big.Rat) *big.Int {
	l := big.NewInt(1)
	for _, v := range vs {
		d := v.Denom()
		if d.Cmp(big.NewInt(1)) == 0 {
			continue
		}
		g := new(big.Int).GCD(nil, nil, l, d)
		l.Div(l, g)
		l.Mul(l, d)
	}
	return l
}

func scaleToInt(vs []*big.Rat, scale *big.Int) []coefficient.Coefficient {
	out := make([]coefficient.Coefficient, len(vs))
	sr := new(big.Rat).SetInt(scale)
	for i, v := range vs {
		prod := new(big.Rat).Mul(v, sr)
		out[i] = coefficient.FromBigInt(prod.Num())
	}
	return out
}

// combineStride solves x ≡ r1 (mod m1) ∧ x ≡ r2 (mod m2) via CRT,
// returning the combined (modulus, remainder) or ok=false if the two
// constraints are inconsistent.
func combineStride(m1, r1, m2, r2 coefficient.Coefficient) (coefficient.Coefficient, coefficient.Coefficient, bool) {
	a, b := m1.BigInt(), m2.BigInt()
	var x, y big.Int
	g := new(big.Int).GCD(&x, &y, a, b)
	diff := new(big.Int).Sub(r2.BigInt(), r1.BigInt())
	q, rem := new(big.Int), new(big.Int)
	q.QuoRem(diff, g, rem)
	if rem.Sign() != 0 {
		return coefficient.Coefficient{}, coefficient.Coefficient{}, false
	}
	lcm := new(big.Int).Div(new(big.Int).Mul(a, b), g)
	shift := new(big.Int).Mul(&x, q)
	shift.Mul(shift, a)
	res := new(big.Int).Add(r1.BigInt(), shift)
	res.Mod(res, lcm)
	return coefficient.FromBigInt(lcm), coefficient.FromBigInt(res), true
}

type stride struct{ m, r coefficient.Coefficient }

// recomputeGeneratorsFromCongruences runs the reduction described at the
// top of this file to produce a Grid_Generator_System from the current
// congruence representation.
func (g *Grid) recomputeGeneratorsFromCongruences() {
	n := g.spaceDim
	cons := g.conSys.Congruences()
	var eqs, proper []congruence.Congruence
	for _, c := range cons {
		if c.IsEquality() {
			eqs = append(eqs, c)
		} else {
			proper = append(proper, c)
		}
	}
	pivotRow, consistent := solveEqualities(eqs, n)
	if !consistent {
		g.st = statusEmpty
		return
	}
	isPivot := make([]bool, n)
	for p := range pivotRow {
		isPivot[p] = true
	}
	var free []int
	for i := 0; i < n; i++ {
		if !isPivot[i] {
			free = append(free, i)
		}
	}

	dir := make(map[int][]*big.Rat, len(free))
	dirIsInt := make(map[int]bool, len(free))
	for _, j := range free {
		d := make([]*big.Rat, n)
		for i := range d {
			d[i] = big.NewRat(0, 1)
		}
		d[j] = big.NewRat(1, 1)
		for p, row := range pivotRow {
			if row[j].Sign() != 0 {
				d[p] = new(big.Rat).Neg(row[j])
			}
		}
		dir[j] = d
		dirIsInt[j] = isIntVec(d)
	}

	strides := make(map[int]stride)
	for _, pc := range proper {
		coeffAcc := make([]*big.Rat, n)
		for i := range coeffAcc {
			coeffAcc[i] = big.NewRat(0, 1)
		}
		constAcc := big.NewRat(0, 1)
		for j := 0; j < n; j++ {
			a := pc.Coefficient(variable.Variable(j))
			if a.IsZero() {
				continue
			}
			aRat := new(big.Rat).SetInt(a.BigInt())
			if row, ok := pivotRow[j]; ok {
				constAcc.Add(constAcc, new(big.Rat).Mul(aRat, row[n]))
				for k := 0; k < n; k++ {
					if row[k].Sign() == 0 {
						continue
					}
					coeffAcc[k].Sub(coeffAcc[k], new(big.Rat).Mul(aRat, row[k]))
				}
			} else {
				coeffAcc[j].Add(coeffAcc[j], aRat)
			}
		}
		constAcc.Add(constAcc, new(big.Rat).SetInt(pc.InhomogeneousTerm().BigInt()))

		scaleVals := append(append([]*big.Rat{}, coeffAcc...), constAcc)
		scale := lcmDenominators(scaleVals)
		scaledCoeff := scaleToInt(coeffAcc, scale)
		scaledConst := coefficient.FromBigInt(new(big.Rat).Mul(constAcc, new(big.Rat).SetInt(scale)).Num())
		scaledModulus := coefficient.FromBigInt(new(big.Int).Mul(scale, pc.Modulus().BigInt()))

		nonzeroIdx, nonzeroCount := -1, 0
		for i, c := range scaledCoeff {
			if !c.IsZero() {
				nonzeroCount++
				nonzeroIdx = i
			}
		}
		if nonzeroCount == 0 {
			q, _ := scaledConst.DivFloor(scaledModulus)
			if !scaledConst.Sub(q.Mul(scaledModulus)).IsZero() {
				g.st = statusEmpty
				return
			}
			continue
		}
		if nonzeroCount != 1 {
			continue
		}
		j := nonzeroIdx
		coeffVal := scaledCoeff[j]
		if coeffVal.Abs().Cmp(coefficient.One()) != 0 {
			continue
		}
		if !dirIsInt[j] {
			continue
		}
		rVal := scaledConst.Mul(coeffVal).Neg()
		q, _ := rVal.DivFloor(scaledModulus)
		r := rVal.Sub(q.Mul(scaledModulus))
		if existing, ok := strides[j]; ok {
			m, rr, ok2 := combineStride(existing.m, existing.r, scaledModulus, r)
			if !ok2 {
				g.st = statusEmpty
				return
			}
			strides[j] = stride{m: m, r: rr}
		} else {
			strides[j] = stride{m: scaledModulus, r: r}
		}
	}

	pointVal := make([]*big.Rat, n)
	for i := range pointVal {
		pointVal[i] = big.NewRat(0, 1)
	}
	for p, row := range pivotRow {
		pointVal[p] = new(big.Rat).Set(row[n])
	}
	for j, s := range strides {
		rRat := new(big.Rat).SetInt(s.r.BigInt())
		pointVal[j] = rRat
		d := dir[j]
		for p := range pivotRow {
			if d[p].Sign() == 0 {
				continue
			}
			pointVal[p] = new(big.Rat).Add(pointVal[p], new(big.Rat).Mul(d[p], rRat))
		}
	}

	pointScale := lcmDenominators(pointVal)
	pointCoeffs := scaleToInt(pointVal, pointScale)

	gs := system.NewGridGeneratorSystem(n)
	pe := linexpr.NewExpression(n)
	for i, c := range pointCoeffs {
		pe = pe.WithCoefficient(variable.Variable(i), c)
	}
	pt, err := gridgen.NewPoint(pe, coefficient.FromBigInt(pointScale))
	if err != nil {
		g.st = statusEmpty
		return
	}
	_ = gs.Insert(pt)

	for _, j := range free {
		d := dir[j]
		if s, ok := strides[j]; ok {
			intDir := scaleToInt(d, big.NewInt(1))
			e := linexpr.NewExpression(n)
			for i, c := range intDir {
				e = e.WithCoefficient(variable.Variable(i), c.Mul(s.m))
			}
			_ = gs.Insert(gridgen.NewParameter(e))
		} else {
			scaleJ := lcmDenominators(d)
			intDir := scaleToInt(d, scaleJ)
			e := linexpr.NewExpression(n)
			for i, c := range intDir {
				e = e.WithCoefficient(variable.Variable(i), c)
			}
			_ = gs.Insert(gridgen.NewLine(e))
		}
	}

	g.genSys = gs
	g.st = g.st.with(gUpToDate).with(gMinimized).with(cMinimized)
}

// recomputeCongruencesFromGenerators computes the defining congruence
// system of a grid given as point + lines + parameters. Unlike the
// opposite direction, this is exact for arbitrary (non-axis-aligned)
// generators: for each direction c not spanned by the lines (found via
// rref of the lines matrix), the congruence "divisor*L_c(x) ≡
// L_c(pointCoord) (mod divisor*gcd_m(L_c·paramₘ))" holds exactly, where
// L_c is the linear form singling out c modulo the line span.
func (g *Grid) recomputeCongruencesFromGenerators() {
	n := g.spaceDim
	gens := g.genSys.GridGenerators()
	var point gridgen.GridGenerator
	var lines, params []gridgen.GridGenerator
	havePoint := false
	for _, gg := range gens {
		switch gg.Kind() {
		case gridgen.Point:
			point = gg
			havePoint = true
		case gridgen.Line:
			lines = append(lines, gg)
		case gridgen.Parameter:
			params = append(params, gg)
		}
	}
	if !havePoint {
		g.st = statusEmpty
		return
	}
	divisor := point.Divisor()
	pointCoord := make([]coefficient.Coefficient, n)
	for i := 0; i < n; i++ {
		pointCoord[i] = point.Coefficient(variable.Variable(i))
	}

	var lineRows [][]*big.Rat
	for _, l := range lines {
		row := make([]*big.Rat, n)
		for i := 0; i < n; i++ {
			row[i] = new(big.Rat).SetInt(l.Coefficient(variable.Variable(i)).BigInt())
		}
		lineRows = append(lineRows, row)
	}
	var pivotCols []int
	if len(lineRows) > 0 {
		pivotCols = rref(lineRows)
	}
	isPivot := make([]bool, n)
	for _, c := range pivotCols {
		isPivot[c] = true
	}

	cs := system.NewCongruenceSystem(n)
	for c := 0; c < n; c++ {
		if isPivot[c] {
			continue
		}
		lc := make([]*big.Rat, n)
		for i := range lc {
			lc[i] = big.NewRat(0, 1)
		}
		lc[c] = big.NewRat(1, 1)
		for ri, pc := range pivotCols {
			val := lineRows[ri][c]
			if val.Sign() == 0 {
				continue
			}
			lc[pc] = new(big.Rat).Sub(lc[pc], val)
		}
		scale := lcmDenominators(lc)
		ilc := scaleToInt(lc, scale)

		gC := coefficient.Zero()
		for _, pm := range params {
			dot := coefficient.Zero()
			for i := 0; i < n; i++ {
				dot = dot.Add(ilc[i].Mul(pm.Coefficient(variable.Variable(i))))
			}
			gC = gC.GCD(dot)
		}

		dotPoint := coefficient.Zero()
		for i := 0; i < n; i++ {
			dotPoint = dotPoint.Add(ilc[i].Mul(pointCoord[i]))
		}

		coeffs := make([]coefficient.Coefficient, n)
		for i := 0; i < n; i++ {
			coeffs[i] = ilc[i].Mul(divisor)
		}
		modulus := gC.Mul(divisor)

		e := linexpr.NewExpression(n)
		for i, cf := range coeffs {
			e = e.WithCoefficient(variable.Variable(i), cf)
		}
		e = e.WithInhomogeneousTerm(dotPoint.Neg())
		cc, err := congruence.New(e, modulus)
		if err == nil {
			cs.Insert(cc)
		}
	}

	g.conSys = cs
	g.st = g.st.with(cUpToDate).with(cMinimized).with(gMinimized)
}

// Minimize ensures both representations are up-to-date and minimized,
// computing the missing or stale one. It returns false iff g is empty.
func (g *Grid) Minimize() bool {
	if g.st.has(statusEmpty) {
		return false
	}
	if g.st.has(zeroDimUniverse) {
		return true
	}
	if g.st.has(cMinimized) && g.st.has(gMinimized) {
		return true
	}

	if !g.st.has(cUpToDate) {
		g.recomputeCongruencesFromGenerators()
	} else if !g.st.has(gUpToDate) {
		g.recomputeGeneratorsFromCongruences()
	}
	if g.st.has(statusEmpty) {
		return false
	}
	if !g.st.has(cMinimized) {
		g.recomputeCongruencesFromGenerators()
	}
	if g.st.has(statusEmpty) {
		return false
	}
	if !g.st.has(gMinimized) {
		g.recomputeGeneratorsFromCongruences()
	}
	if g.st.has(statusEmpty) {
		return false
	}

	if g.genSys.NumRows() == 0 {
		g.st = statusEmpty
		return false
	}
	return true
}

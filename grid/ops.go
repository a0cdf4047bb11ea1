package grid

import (
	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/congruence"
	"github.com/polylat/polylat/gridgen"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/system"
	"github.com/polylat/polylat/variable"
)

// AddCongruence refines g to g ∩ {c} (spec.md §4.5.1).
func (g *Grid) AddCongruence(c congruence.Congruence) error {
	if err := checkDim(g, c.SpaceDimension()); err != nil {
		return err
	}
	if g.IsEmpty() {
		return nil
	}
	g.conSys.Insert(c)
	g.st = g.st.without(gUpToDate).without(gMinimized).without(cMinimized)
	g.st = g.st.with(cUpToDate)
	if g.conSys.IsTriviallyFalse() {
		g.st = statusEmpty
	}
	return nil
}

// AddGridGenerator augments g with gg (spec.md §4.5.1). Inserting a
// non-point generator into an empty grid is rejected with ErrInvalidArg.
func (g *Grid) AddGridGenerator(gg gridgen.GridGenerator) error {
	if err := checkDim(g, gg.SpaceDimension()); err != nil {
		return err
	}
	if g.IsEmpty() {
		if gg.Kind() != gridgen.Point {
			return ErrInvalidArg
		}
		g.genSys = system.NewGridGeneratorSystem(g.spaceDim)
		if err := g.genSys.Insert(gg); err != nil {
			return ErrInvalidArg
		}
		g.conSys = system.NewCongruenceSystem(g.spaceDim)
		g.st = gUpToDate
		return nil
	}
	if err := g.genSys.Insert(gg); err != nil {
		return ErrInvalidArg
	}
	g.st = g.st.without(cUpToDate).without(cMinimized).without(gMinimized)
	g.st = g.st.with(gUpToDate)
	return nil
}

// IntersectionAssign sets g := g ∩ q.
func (g *Grid) IntersectionAssign(q *Grid) error {
	if g.spaceDim != q.spaceDim {
		return ErrDimIncompat
	}
	if g.IsEmpty() {
		return nil
	}
	if q.IsEmpty() {
		g.st = statusEmpty
		return nil
	}
	q.Minimize()
	for _, c := range q.conSys.Congruences() {
		if err := g.AddCongruence(c); err != nil {
			return err
		}
		if g.IsEmpty() {
			return nil
		}
	}
	return nil
}

func isZeroExpr(e linexpr.Expression) bool {
	if !e.InhomogeneousTerm().IsZero() {
		return false
	}
	for i := 0; i < e.SpaceDimension(); i++ {
		if !e.Coefficient(variable.Variable(i)).IsZero() {
			return false
		}
	}
	return true
}

// JoinAssign sets g to the smallest grid containing both g and q
// (spec.md §4.5.1). Since the two grids' base points may carry different
// divisors, the points are first rescaled to a common divisor so that
// the vector joining them is itself a valid (integer) grid parameter.
func (g *Grid) JoinAssign(q *Grid) error {
	if g.spaceDim != q.spaceDim {
		return ErrDimIncompat
	}
	if q.IsEmpty() {
		return nil
	}
	if g.IsEmpty() {
		qc := q.Clone()
		qc.Minimize()
		g.genSys = qc.genSys
		g.conSys = system.NewCongruenceSystem(g.spaceDim)
		g.st = gUpToDate
		return nil
	}
	g.Minimize()
	qClone := q.Clone()
	qClone.Minimize()

	n := g.spaceDim
	var gPoint, qPoint gridgen.GridGenerator
	var extra []gridgen.GridGenerator
	for _, gg := range g.genSys.GridGenerators() {
		if gg.Kind() == gridgen.Point {
			gPoint = gg
		} else {
			extra = append(extra, gg)
		}
	}
	for _, gg := range qClone.genSys.GridGenerators() {
		if gg.Kind() == gridgen.Point {
			qPoint = gg
		} else {
			extra = append(extra, gg)
		}
	}

	gScale, qScale := qPoint.Divisor(), gPoint.Divisor()
	divisor := gPoint.Divisor().Mul(qPoint.Divisor())

	pe, conn := linexpr.NewExpression(n), linexpr.NewExpression(n)
	for i := 0; i < n; i++ {
		vi := variable.Variable(i)
		gVal := gPoint.Coefficient(vi).Mul(gScale)
		qVal := qPoint.Coefficient(vi).Mul(qScale)
		pe = pe.WithCoefficient(vi, gVal)
		conn = conn.WithCoefficient(vi, qVal.Sub(gVal))
	}

	newGS := system.NewGridGeneratorSystem(n)
	pt, err := gridgen.NewPoint(pe, divisor)
	if err != nil {
		return ErrInternalBroken
	}
	if err := newGS.Insert(pt); err != nil {
		return ErrInternalBroken
	}
	if !isZeroExpr(conn) {
		_ = newGS.Insert(gridgen.NewParameter(conn))
	}
	for _, eg := range extra {
		_ = newGS.Insert(eg)
	}
	g.genSys = newGS
	g.conSys = system.NewCongruenceSystem(n)
	g.st = gUpToDate
	return nil
}

// AffineImage applies x[v <- (e.x + b)/d] to every point of g.
func (g *Grid) AffineImage(v variable.Variable, e linexpr.Expression, d coefficient.Coefficient) error {
	return g.affineTransform(v, e, d, false)
}

// AffinePreimage applies the inverse transform of AffineImage.
func (g *Grid) AffinePreimage(v variable.Variable, e linexpr.Expression, d coefficient.Coefficient) error {
	return g.affineTransform(v, e, d, true)
}

func (g *Grid) affineTransform(v variable.Variable, e linexpr.Expression, d coefficient.Coefficient, preimage bool) error {
	if d.IsZero() {
		return ErrDivByZero
	}
	if err := checkDim(g, e.SpaceDimension()); err != nil {
		return err
	}
	if err := checkDim(g, v.SpaceDimension()); err != nil {
		return err
	}
	if g.IsEmpty() {
		return nil
	}
	g.Minimize()

	if !preimage {
		newGS := system.NewGridGeneratorSystem(g.spaceDim)
		for _, gg := range g.genSys.GridGenerators() {
			if err := newGS.InsertPending(transformGridGenerator(gg, v, e, d)); err != nil {
				return err
			}
		}
		newGS.Linsys().UnsetPendingRows()
		g.genSys = newGS
		g.conSys = system.NewCongruenceSystem(g.spaceDim)
		g.st = gUpToDate
		return nil
	}

	newCS := system.NewCongruenceSystem(g.spaceDim)
	for _, c := range g.conSys.Congruences() {
		newCS.InsertPending(transformCongruence(c, v, e, d))
	}
	newCS.UnsetPendingRows()
	g.conSys = newCS
	g.genSys = system.NewGridGeneratorSystem(g.spaceDim)
	g.st = cUpToDate
	return nil
}

// transformGridGenerator mirrors polyhedron.transformGenerator, adapted to
// the Line/Parameter/Point kinds of a grid generator.
func transformGridGenerator(gg gridgen.GridGenerator, v variable.Variable, e linexpr.Expression, d coefficient.Coefficient) gridgen.GridGenerator {
	n := gg.SpaceDimension()
	newExpr := linexpr.NewExpression(n)
	for i := 0; i < n; i++ {
		vi := variable.Variable(i)
		if vi == v {
			continue
		}
		newExpr = newExpr.WithCoefficient(vi, gg.Coefficient(vi).Mul(d))
	}
	// gg.Divisor() is already 0 for Line/Parameter (their inhomogeneous
	// column is zeroed at construction), so a single formula -- mirroring
	// polyhedron.transformGenerator -- naturally skips the affine shift
	// for pure directions and applies it only to the base Point.
	sum := e.InhomogeneousTerm().Mul(gg.Divisor())
	for i := 0; i < n; i++ {
		vi := variable.Variable(i)
		sum = sum.Add(e.Coefficient(vi).Mul(gg.Coefficient(vi)))
	}
	newExpr = newExpr.WithCoefficient(v, sum)

	switch gg.Kind() {
	case gridgen.Line:
		return gridgen.NewLine(newExpr)
	case gridgen.Parameter:
		return gridgen.NewParameter(newExpr)
	default:
		pt, _ := gridgen.NewPoint(newExpr, gg.Divisor())
		return pt
	}
}

// transformCongruence mirrors polyhedron.transformConstraint; the modulus
// scales by |d| (a congruence is invariant under negation, so only the
// magnitude of the scaling matters).
func transformCongruence(c congruence.Congruence, v variable.Variable, e linexpr.Expression, d coefficient.Coefficient) congruence.Congruence {
	n := c.SpaceDimension()
	cv := c.Coefficient(v)
	newExpr := linexpr.NewExpression(n)
	for i := 0; i < n; i++ {
		vi := variable.Variable(i)
		if vi == v {
			newExpr = newExpr.WithCoefficient(vi, cv.Mul(e.Coefficient(vi)))
			continue
		}
		newExpr = newExpr.WithCoefficient(vi, c.Coefficient(vi).Mul(d).Add(cv.Mul(e.Coefficient(vi))))
	}
	newExpr = newExpr.WithInhomogeneousTerm(c.InhomogeneousTerm().Mul(d).Add(cv.Mul(e.InhomogeneousTerm())))
	newModulus := c.Modulus().Mul(d.Abs())
	cc, _ := congruence.New(newExpr, newModulus)
	return cc
}

// AddSpaceDimensionsAndEmbed appends k dimensions, each left free.
func (g *Grid) AddSpaceDimensionsAndEmbed(k int) {
	if k <= 0 {
		return
	}
	g.Minimize()
	g.genSys.Linsys().AddZeroColumns(k)
	for i := 0; i < k; i++ {
		v := variable.Variable(g.spaceDim + i)
		_ = g.genSys.Insert(gridgen.NewLine(linexpr.FromVariable(v)))
	}
	g.spaceDim += k
	g.conSys = system.NewCongruenceSystem(g.spaceDim)
	g.st = g.st.without(cMinimized).without(cUpToDate).with(gMinimized)
}

// RemoveSpaceDimensions existentially quantifies away every variable whose
// id is in s.
func (g *Grid) RemoveSpaceDimensions(s []variable.Variable) error {
	for _, v := range s {
		if err := checkDim(g, v.SpaceDimension()); err != nil {
			return err
		}
	}
	if g.IsEmpty() {
		g.spaceDim -= len(s)
		if g.spaceDim < 0 {
			g.spaceDim = 0
		}
		g.conSys = system.NewCongruenceSystem(g.spaceDim)
		g.genSys = system.NewGridGeneratorSystem(g.spaceDim)
		return nil
	}
	drop := make(map[int]bool, len(s))
	for _, v := range s {
		drop[v.ID()] = true
	}
	keep := make([]int, 0, g.spaceDim-len(s))
	for i := 0; i < g.spaceDim; i++ {
		if !drop[i] {
			keep = append(keep, i)
		}
	}
	g.Minimize()
	newGS := system.NewGridGeneratorSystem(len(keep))
	for _, gg := range g.genSys.GridGenerators() {
		e := linexpr.NewExpression(len(keep))
		for newIdx, oldIdx := range keep {
			e = e.WithCoefficient(variable.Variable(newIdx), gg.Coefficient(variable.Variable(oldIdx)))
		}
		switch gg.Kind() {
		case gridgen.Line:
			newGS.InsertPending(gridgen.NewLine(e))
		case gridgen.Parameter:
			newGS.InsertPending(gridgen.NewParameter(e))
		default:
			pt, _ := gridgen.NewPoint(e, gg.Divisor())
			newGS.InsertPending(pt)
		}
	}
	newGS.Linsys().UnsetPendingRows()
	g.genSys = newGS
	g.conSys = system.NewCongruenceSystem(len(keep))
	g.spaceDim = len(keep)
	g.st = gUpToDate
	return nil
}

// FoldSpaceDimensions computes ⋃_{w ∈ S ∪ {v}} G[v/w] (spec.md §4.5.1,
// the grid analogue of polyhedron.FoldSpaceDimensions).
func (g *Grid) FoldSpaceDimensions(s []variable.Variable, v variable.Variable) error {
	for _, w := range s {
		if w == v {
			return ErrInvalidArg
		}
		if err := checkDim(g, w.SpaceDimension()); err != nil {
			return err
		}
	}
	if err := checkDim(g, v.SpaceDimension()); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	if g.IsEmpty() {
		return g.RemoveSpaceDimensions(s)
	}

	result := g.Clone()
	if err := result.RemoveSpaceDimensions(s); err != nil {
		return err
	}
	for _, w := range s {
		piece := g.renamedCopy(w, v, s)
		if err := result.JoinAssign(piece); err != nil {
			return err
		}
	}
	*g = *result
	return nil
}

// renamedCopy swaps dimensions w and v (via coefficient remapping, since
// CongruenceSystem does not delegate to linsys.System) and projects away
// the rest of s, w included.
func (g *Grid) renamedCopy(w, v variable.Variable, s []variable.Variable) *Grid {
	cp := g.Clone()
	cp.Minimize()
	n := cp.spaceDim
	swap := func(i int) int {
		switch i {
		case w.ID():
			return v.ID()
		case v.ID():
			return w.ID()
		default:
			return i
		}
	}
	newGS := system.NewGridGeneratorSystem(n)
	for _, gg := range cp.genSys.GridGenerators() {
		e := linexpr.NewExpression(n)
		for i := 0; i < n; i++ {
			e = e.WithCoefficient(variable.Variable(swap(i)), gg.Coefficient(variable.Variable(i)))
		}
		switch gg.Kind() {
		case gridgen.Line:
			newGS.InsertPending(gridgen.NewLine(e))
		case gridgen.Parameter:
			newGS.InsertPending(gridgen.NewParameter(e))
		default:
			pt, _ := gridgen.NewPoint(e, gg.Divisor())
			newGS.InsertPending(pt)
		}
	}
	newGS.Linsys().UnsetPendingRows()
	cp.genSys = newGS
	cp.conSys = system.NewCongruenceSystem(n)
	cp.st = gUpToDate
	_ = cp.RemoveSpaceDimensions(s)
	return cp
}

// CongruenceSystem returns the current congruence representation,
// minimizing first.
func (g *Grid) CongruenceSystem() *system.CongruenceSystem {
	g.Minimize()
	return g.conSys.Clone()
}

// GridGeneratorSystem returns the current generator representation,
// minimizing first.
func (g *Grid) GridGeneratorSystem() *system.GridGeneratorSystem {
	g.Minimize()
	return g.genSys.Clone()
}

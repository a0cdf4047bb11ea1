package polyhedron

import (
	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/constraint"
	"github.com/polylat/polylat/generator"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/row"
	"github.com/polylat/polylat/scalarprod"
	"github.com/polylat/polylat/system"
	"github.com/polylat/polylat/variable"
)

// universeGenerators returns the canonical generator system of all of Q^n: a
// point at the origin plus a line along every axis.
func universeGenerators(spaceDim int, topology row.Topology) []generator.Generator {
	out := make([]generator.Generator, 0, spaceDim+1)
	pt, _ := generator.NewPoint(linexpr.Constant(coefficient.Zero()), coefficient.One(), topology)
	out = append(out, pt)
	for i := 0; i < spaceDim; i++ {
		out = append(out, generator.NewLine(linexpr.FromVariable(variable.Variable(i)), topology))
	}
	return out
}

// originConstraints returns the constraint representation of the origin:
// the n coordinate equalities x_i = 0 (the symmetric counterpart of
// universeGenerators, spec.md §4.4.2). Just as converting constraints to
// generators starts the dual at the universe and lets each constraint cut
// it down, converting generators to constraints starts the dual at the
// single point {0} and lets each line/ray/point relax it.
func originConstraints(spaceDim int, topology row.Topology) []constraint.Constraint {
	cs := system.NewConstraintSystem(topology, spaceDim)
	for i := 0; i < spaceDim; i++ {
		_ = cs.Insert(constraint.Equal(linexpr.FromVariable(variable.Variable(i))))
	}
	return cs.Constraints()
}

// dualValue computes the (topology-reduced, epsilon-ignoring) scalar product
// of d against source row r, reusing scalarprod.ReducedAssign: because d
// and r share the same topology/column count,
// stripping d's epsilon column also aligns the zip length so r's epsilon
// column (if any) never enters the sum, which is exactly the product this
// conversion needs (strictness is resolved separately, not during
// Chernikova conversion).
func dualValue(d, r row.Row) coefficient.Coefficient { return scalarprod.ReducedAssign(d, r) }

// combineRows returns wa*a + wb*b, column by column.
func combineRows(a, b row.Row, wa, wb coefficient.Coefficient) row.Row {
	ac := a.Columns()
	bc := b.Columns()
	out := make([]coefficient.Coefficient, len(ac))
	for i := range out {
		out[i] = ac[i].Mul(wa).Add(bc[i].Mul(wb))
	}
	return row.FromColumns(out, a.Topology(), row.RayOrPointOrInequality).StrongNormalize()
}

// chernikovaStep processes one new source row r against the current dual
// system, per spec.md §4.4.2's five-step algorithm. It returns the updated
// dual. An empty returned slice signals that the source system (so far) is
// unsatisfiable.
func chernikovaStep(dual []row.Row, r row.Row) []row.Row {
	var plus, minus, zeroNonLine, linesZero, linesNonZero []row.Row
	for _, d := range dual {
		v := dualValue(d, r)
		if d.Kind() == row.LineOrEquality {
			if v.IsZero() {
				linesZero = append(linesZero, d)
			} else {
				linesNonZero = append(linesNonZero, d)
			}
			continue
		}
		switch v.Sign() {
		case 1:
			plus = append(plus, d)
		case -1:
			minus = append(minus, d)
		default:
			zeroNonLine = append(zeroNonLine, d)
		}
	}

	next := make([]row.Row, 0, len(dual)+len(plus)*len(minus))
	next = append(next, linesZero...)

	// Step 2: eliminate lines whose product with r is non-zero. Pivot on the
	// first such line; every other non-zero-product line is combined with
	// the pivot so the combination saturates r, and the pivot itself is
	// dropped (the lineality space shrinks by exactly one per new
	// constraining row, per spec.md §4.4.2).
	if len(linesNonZero) > 0 {
		pivot := linesNonZero[0]
		pivotValue := dualValue(pivot, r)
		for _, l := range linesNonZero[1:] {
			lv := dualValue(l, r)
			combined := combineRows(l, pivot, pivotValue, lv.Neg()).WithKind(row.LineOrEquality)
			next = append(next, combined)
		}
	}

	next = append(next, zeroNonLine...)
	next = append(next, plus...)

	// Step 3: combine every (d+, d-) pair into a new row saturating r.
	for _, dp := range plus {
		pv := dualValue(dp, r)
		for _, dm := range minus {
			mv := dualValue(dm, r)
			next = append(next, combineRows(dp, dm, mv.Neg(), pv))
		}
	}
	// Step 4 (drop D-) is implicit: minus is never appended to next.
	return next
}

// convert runs the Chernikova conversion driving an initial dual system
// through every row of source, returning the resulting dual rows and
// whether the source system was found unsatisfiable partway through.
func convert(source, initDual []row.Row) (dual []row.Row, empty bool) {
	dual = append([]row.Row(nil), initDual...)
	for _, r := range source {
		dual = chernikovaStep(dual, r)
		if len(dual) == 0 {
			return nil, true
		}
	}
	return dual, false
}

// saturationBitRow computes, for dual row d, the set of source rows it
// saturates (scalar product zero).
func saturationBitRow(d row.Row, source []row.Row) row.BitRow {
	var b row.BitRow
	for j, s := range source {
		if dualValue(d, s).IsZero() {
			b.Set(j)
		}
	}
	return b
}

// minimizeDual drops redundant rows from dual: a non-line row is redundant
// when another row of the same kind saturates a superset of what it
// saturates (the general subset test spec.md §4.4.2 names; the quick
// saturation-count pre-filter it also names is a performance optimization
// this implementation omits).
func minimizeDual(source, dual []row.Row) []row.Row {
	sats := make([]row.BitRow, len(dual))
	for i, d := range dual {
		sats[i] = saturationBitRow(d, source)
	}
	keep := make([]bool, len(dual))
	for i := range keep {
		keep[i] = true
	}
	for i, d := range dual {
		if d.Kind() == row.LineOrEquality {
			continue
		}
		for j, o := range dual {
			if i == j || o.Kind() != d.Kind() {
				continue
			}
			if !sats[i].SubsetOf(sats[j]) {
				continue
			}
			if sats[j].SubsetOf(sats[i]) {
				if j < i {
					keep[i] = false
					break
				}
				continue
			}
			keep[i] = false
			break
		}
	}
	out := make([]row.Row, 0, len(dual))
	for i, d := range dual {
		if keep[i] {
			out = append(out, d)
		}
	}
	return out
}

// Minimize ensures both representations are up-to-date and minimized,
// computing the missing or stale one via Chernikova conversion. It returns
// false iff p is empty.
func (p *Polyhedron) Minimize() bool {
	if p.st.has(statusEmpty) {
		return false
	}
	if p.st.has(zeroDimUniverse) {
		return true
	}
	if p.st.has(cMinimized) && p.st.has(gMinimized) {
		return true
	}

	if !p.st.has(cUpToDate) {
		p.recomputeConstraintsFromGenerators()
	} else if !p.st.has(gUpToDate) {
		p.recomputeGeneratorsFromConstraints()
	}

	if !p.st.has(cMinimized) {
		p.recomputeConstraintsFromGenerators()
	}
	if !p.st.has(gMinimized) {
		p.recomputeGeneratorsFromConstraints()
	}

	if p.genSys.NumRows() == 0 {
		p.st = statusEmpty
		return false
	}
	p.rebuildSaturation()
	return true
}

// recomputeGeneratorsFromConstraints runs Chernikova from the (minimized)
// constraint system to produce the generator system.
func (p *Polyhedron) recomputeGeneratorsFromConstraints() {
	source := rowsOf(p.conSys.Constraints())
	initDual := rowsOf(universeGenerators(p.spaceDim, p.topology))
	dual, empty := convert(source, initDual)
	if empty {
		p.st = statusEmpty
		return
	}
	dual = minimizeDual(source, dual)
	gs := system.NewGeneratorSystem(p.topology, p.spaceDim)
	for _, r := range dual {
		g, err := generator.FromRow(r)
		if err == nil {
			_ = gs.Insert(g)
		}
	}
	p.genSys = gs
	p.st = p.st.without(statusEmpty).with(gUpToDate).with(gMinimized).with(cMinimized)
}

// recomputeConstraintsFromGenerators runs Chernikova from the (minimized)
// generator system to produce the constraint system. The initial dual is
// the constraint representation of the origin (spec.md §4.4.2), mirroring
// how recomputeGeneratorsFromConstraints seeds from universeGenerators.
func (p *Polyhedron) recomputeConstraintsFromGenerators() {
	source := rowsOf(p.genSys.Generators())
	initDual := rowsOf(originConstraints(p.spaceDim, p.topology))
	dual, empty := convert(source, initDual)
	if empty {
		p.st = statusEmpty
		return
	}
	dual = minimizeDual(source, dual)
	cs := system.NewConstraintSystem(p.topology, p.spaceDim)
	for _, r := range dual {
		c, err := constraint.FromRow(r)
		if err == nil {
			_ = cs.Insert(c)
		}
	}
	p.conSys = cs
	p.st = p.st.without(statusEmpty).with(cUpToDate).with(cMinimized).with(gMinimized)
}

// rebuildSaturation recomputes sat_c/sat_g from the current minimized
// representations (spec.md §3.5: sat_c[g][c] == 1 iff c·g != 0).
func (p *Polyhedron) rebuildSaturation() {
	cons := p.conSys.Constraints()
	gens := p.genSys.Generators()
	satC := row.NewBitMatrix(len(gens))
	satG := row.NewBitMatrix(len(cons))
	for gi, g := range gens {
		for ci, c := range cons {
			if dualValue(c.Row(), g.Row()).Sign() != 0 {
				satC.Row(gi).Set(ci)
				satG.Row(ci).Set(gi)
			}
		}
	}
	p.satC = satC
	p.satG = satG
	p.st = p.st.with(satCUpToDate).with(satGUpToDate)
}

func rowsOf[T interface{ Row() row.Row }](xs []T) []row.Row {
	out := make([]row.Row, len(xs))
	for i, x := range xs {
		out[i] = x.Row()
	}
	return out
}

package grid

import (
	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/congruence"
	"github.com/polylat/polylat/gridgen"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/system"
	"github.com/polylat/polylat/variable"
)

// leadingDim returns the index of the first variable with a nonzero
// coefficient in c, or -1 if c's coefficients are all zero (a pure
// inhomogeneous/modulus row).
func leadingDim(c congruence.Congruence) int {
	for i := 0; i < c.SpaceDimension(); i++ {
		if !c.Coefficient(variable.Variable(i)).IsZero() {
			return i
		}
	}
	return -1
}

// congruenceEqual reports whether a and b denote the same congruence:
// same coefficients, same inhomogeneous term, same modulus.
func congruenceEqual(a, b congruence.Congruence) bool {
	if a.SpaceDimension() != b.SpaceDimension() {
		return false
	}
	if !a.Modulus().Equal(b.Modulus()) || !a.InhomogeneousTerm().Equal(b.InhomogeneousTerm()) {
		return false
	}
	for i := 0; i < a.SpaceDimension(); i++ {
		v := variable.Variable(i)
		if !a.Coefficient(v).Equal(b.Coefficient(v)) {
			return false
		}
	}
	return true
}

// WideningAssign sets g := g ⊽ q, the congruence widening spec.md §4.5
// names: keep those congruences of a minimized g whose leading dimension
// and full row match a congruence of minimized q; drop the rest. If every
// congruence is kept, g is left unchanged (the "falls back to returning P"
// case).
func (g *Grid) WideningAssign(q *Grid) error {
	return g.wideningTokens(q, nil)
}

// WideningAssignTokens is WideningAssign with a token budget, mirroring
// polyhedron's H79WideningAssignTokens (spec.md §4.4.7's "widening with
// tokens", applied to the grid's congruence widening).
func (g *Grid) WideningAssignTokens(q *Grid, tokens *int) error {
	return g.wideningTokens(q, tokens)
}

func (g *Grid) wideningTokens(q *Grid, tokens *int) error {
	if g.spaceDim != q.spaceDim {
		return ErrDimIncompat
	}
	if q.IsEmpty() {
		return nil
	}
	if g.IsEmpty() {
		return nil
	}
	g.Minimize()
	q.Minimize()

	qCongs := q.conSys.Congruences()
	var kept []congruence.Congruence
	for _, c := range g.conSys.Congruences() {
		ld := leadingDim(c)
		for _, qc := range qCongs {
			if leadingDim(qc) == ld && congruenceEqual(c, qc) {
				kept = append(kept, c)
				break
			}
		}
	}

	candidateCS := system.NewCongruenceSystem(g.spaceDim)
	for _, c := range kept {
		candidateCS.Insert(c)
	}
	candidate := FromCongruences(candidateCS)
	return g.applyWideningCandidate(candidate, tokens)
}

func (g *Grid) applyWideningCandidate(candidate *Grid, tokens *int) error {
	if tokens != nil && *tokens > 0 {
		same, err := g.Equal(candidate)
		if err != nil {
			return err
		}
		if !same {
			*tokens--
			return nil
		}
	}
	g.conSys = candidate.conSys
	g.genSys = candidate.genSys
	g.spaceDim = candidate.spaceDim
	g.st = candidate.st
	return nil
}

// GeneratorWideningAssign is the generator-side dual of WideningAssign
// (spec.md §4.5's "grid generator widening"): for each parameter of a
// minimized g whose leading dimension and full generator match a parameter
// of minimized q, keep it; every other parameter is relaxed to a line (widening the grid
// by admitting unrestricted movement along that direction).
func (g *Grid) GeneratorWideningAssign(q *Grid) error {
	return g.generatorWideningTokens(q, nil)
}

// GeneratorWideningAssignTokens is GeneratorWideningAssign with a token budget.
func (g *Grid) GeneratorWideningAssignTokens(q *Grid, tokens *int) error {
	return g.generatorWideningTokens(q, tokens)
}

func (g *Grid) generatorWideningTokens(q *Grid, tokens *int) error {
	if g.spaceDim != q.spaceDim {
		return ErrDimIncompat
	}
	if q.IsEmpty() {
		return nil
	}
	if g.IsEmpty() {
		return nil
	}
	g.Minimize()
	q.Minimize()

	qParams := make([]gridgen.GridGenerator, 0)
	for _, gg := range q.genSys.GridGenerators() {
		if gg.Kind() == gridgen.Parameter {
			qParams = append(qParams, gg)
		}
	}

	candidateGS := system.NewGridGeneratorSystem(g.spaceDim)
	for _, gg := range g.genSys.GridGenerators() {
		switch gg.Kind() {
		case gridgen.Point, gridgen.Line:
			_ = candidateGS.Insert(gg)
		case gridgen.Parameter:
			ld := leadingDimGen(gg)
			matched := false
			for _, qp := range qParams {
				if leadingDimGen(qp) == ld && gridGeneratorEqual(gg, qp) {
					matched = true
					break
				}
			}
			if matched {
				_ = candidateGS.Insert(gg)
			} else {
				_ = candidateGS.Insert(gridgen.NewLine(rowExpr(gg)))
			}
		}
	}
	candidate, err := FromGridGenerators(candidateGS)
	if err != nil {
		return err
	}
	return g.applyWideningCandidate(candidate, tokens)
}

func leadingDimGen(gg gridgen.GridGenerator) int {
	for i := 0; i < gg.SpaceDimension(); i++ {
		if !gg.Coefficient(variable.Variable(i)).IsZero() {
			return i
		}
	}
	return -1
}

func gridGeneratorEqual(a, b gridgen.GridGenerator) bool {
	if a.SpaceDimension() != b.SpaceDimension() || a.Kind() != b.Kind() {
		return false
	}
	if !a.Divisor().Equal(b.Divisor()) {
		return false
	}
	for i := 0; i < a.SpaceDimension(); i++ {
		v := variable.Variable(i)
		if !a.Coefficient(v).Equal(b.Coefficient(v)) {
			return false
		}
	}
	return true
}

// rowExpr rebuilds gg's coefficients as a fresh Expression, discarding its
// divisor -- used to relax a parameter into a line, which has no divisor.
func rowExpr(gg gridgen.GridGenerator) linexpr.Expression {
	n := gg.SpaceDimension()
	e := linexpr.NewExpression(n)
	for i := 0; i < n; i++ {
		v := variable.Variable(i)
		e = e.WithCoefficient(v, gg.Coefficient(v))
	}
	return e
}

// LimitedCongruenceExtrapolationAssign performs the ordinary congruence
// widening, then reintroduces every congruence of cs that the pre-widening
// g already satisfied (spec.md §4.4.7's "limited extrapolation", applied
// to grids).
func (g *Grid) LimitedCongruenceExtrapolationAssign(q *Grid, cs *system.CongruenceSystem) error {
	if cs.SpaceDimension() > g.spaceDim {
		return ErrDimIncompat
	}
	before := g.Clone()
	if err := g.WideningAssign(q); err != nil {
		return err
	}
	for _, c := range cs.Congruences() {
		sat, err := before.Satisfies(c)
		if err != nil {
			return err
		}
		if sat {
			if err := g.AddCongruence(c); err != nil {
				return err
			}
		}
	}
	return nil
}

// Satisfies reports whether every point of g satisfies congruence c.
func (g *Grid) Satisfies(c congruence.Congruence) (bool, error) {
	if err := checkDim(g, c.SpaceDimension()); err != nil {
		return false, err
	}
	if g.IsEmpty() {
		return true, nil
	}
	clone := g.Clone()
	if err := clone.AddCongruence(c); err != nil {
		return false, err
	}
	eq, err := clone.Equal(g)
	if err != nil {
		return false, err
	}
	return eq, nil
}

// Equal reports whether g and q denote the same grid.
func (g *Grid) Equal(q *Grid) (bool, error) {
	a, err := g.Contains(q)
	if err != nil {
		return false, err
	}
	b, err := q.Contains(g)
	if err != nil {
		return false, err
	}
	return a && b, nil
}

// Contains reports whether g ⊇ q: every generator of a minimized q
// satisfies every congruence of a minimized g.
func (g *Grid) Contains(q *Grid) (bool, error) {
	if g.spaceDim != q.spaceDim {
		return false, ErrDimIncompat
	}
	if q.IsEmpty() {
		return true, nil
	}
	if g.IsEmpty() {
		return false, nil
	}
	g.Minimize()
	q.Minimize()
	for _, gg := range q.genSys.GridGenerators() {
		for _, c := range g.conSys.Congruences() {
			if !congruenceSatisfiedByGenerator(c, gg) {
				return false, nil
			}
		}
	}
	return true, nil
}

// congruenceSatisfiedByGenerator tests a single grid generator against a
// single congruence. A Point carries an offset (divisor d): e applied to
// p/d reduces to "(sum + c0*d) ≡ 0 (mod m*d)" after clearing denominators.
// A Line or Parameter carries only a direction, no offset: satisfaction is
// purely homogeneous -- a Line must give exactly zero (it moves freely in
// both signs, so any nonzero residue is eventually violated), a Parameter
// (integer multiples only) must give a multiple of the unscaled modulus.
func congruenceSatisfiedByGenerator(c congruence.Congruence, gg gridgen.GridGenerator) bool {
	n := c.SpaceDimension()
	homogeneous := coefficient.Zero()
	for i := 0; i < n; i++ {
		v := variable.Variable(i)
		homogeneous = homogeneous.Add(c.Coefficient(v).Mul(gg.Coefficient(v)))
	}

	switch gg.Kind() {
	case gridgen.Line:
		return homogeneous.IsZero()
	case gridgen.Parameter:
		if c.IsEquality() {
			return homogeneous.IsZero()
		}
		rem, err := homogeneous.DivFloor(c.Modulus())
		if err != nil {
			return homogeneous.IsZero()
		}
		return homogeneous.Sub(rem.Mul(c.Modulus())).IsZero()
	default: // Point
		sum := c.InhomogeneousTerm().Mul(gg.Divisor()).Add(homogeneous)
		if c.IsEquality() {
			return sum.IsZero()
		}
		mod := c.Modulus().Mul(gg.Divisor())
		rem, err := sum.DivFloor(mod)
		if err != nil {
			return sum.IsZero()
		}
		return sum.Sub(rem.Mul(mod)).IsZero()
	}
}

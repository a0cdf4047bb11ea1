package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/congruence"
	"github.com/polylat/polylat/grid"
	"github.com/polylat/polylat/gridgen"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/system"
	"github.com/polylat/polylat/variable"
)

func varVal(i int) variable.Variable { return variable.Variable(i) }

func c(n int64) coefficient.Coefficient { return coefficient.FromInt64(n) }

func fromVar(i int) linexpr.Expression { return linexpr.FromVariable(varVal(i)) }

func constant(n int64) linexpr.Expression { return linexpr.Constant(c(n)) }

// stride builds the congruence "v ≡ r (mod m)" over the given space
// dimension: v - r ≡ 0 (mod m).
func stride(spaceDim, v int, m, r int64) congruence.Congruence {
	e := linexpr.NewExpression(spaceDim).Add(fromVar(v)).Sub(constant(r))
	cc, err := congruence.New(e, c(m))
	if err != nil {
		panic(err)
	}
	return cc
}

func buildGrid(t *testing.T, spaceDim int, cs ...congruence.Congruence) *grid.Grid {
	t.Helper()
	csys := system.NewCongruenceSystem(spaceDim)
	for _, cc := range cs {
		csys.Insert(cc)
	}
	return grid.FromCongruences(csys)
}

// TestUniverseAndEmptyDuals mirrors the polyhedron sanity check: the
// universe grid has no points excluded, the empty grid has none included.
func TestUniverseAndEmptyDuals(t *testing.T) {
	r := require.New(t)
	u := grid.Universe(2)
	r.False(u.IsEmpty())
	r.True(u.IsUniverse())

	e := grid.Empty(2)
	r.True(e.IsEmpty())
	r.False(e.IsUniverse())
}

// TestAddCongruenceNarrows exercises spec.md §4.5.1's add_congruence: a
// grid of every point narrows to the even sublattice under A ≡ 0 (mod 2).
func TestAddCongruenceNarrows(t *testing.T) {
	r := require.New(t)
	g := grid.Universe(1)
	r.NoError(g.AddCongruence(stride(1, 0, 2, 0)))
	r.False(g.IsEmpty())

	contained, err := g.Satisfies(stride(1, 0, 2, 0))
	r.NoError(err)
	r.True(contained)

	violating, err := g.Satisfies(stride(1, 0, 2, 1))
	r.NoError(err)
	r.False(violating)
}

// TestIntersectionAssignNarrows: A ≡ 0 (mod 4) ∩ A ≡ 0 (mod 6) must equal
// the A ≡ 0 (mod 12) sublattice (lcm(4,6) = 12).
func TestIntersectionAssignNarrows(t *testing.T) {
	r := require.New(t)
	g4 := buildGrid(t, 1, stride(1, 0, 4, 0))
	g6 := buildGrid(t, 1, stride(1, 0, 6, 0))

	r.NoError(g4.IntersectionAssign(g6))
	r.False(g4.IsEmpty())

	sat, err := g4.Satisfies(stride(1, 0, 12, 0))
	r.NoError(err)
	r.True(sat)

	notSat, err := g4.Satisfies(stride(1, 0, 12, 4))
	r.NoError(err)
	r.False(notSat)
}

// TestJoinAssignWidens: the grid {A ≡ 0 (mod 4)} joined with the singleton
// point {A = 2} must produce {A ≡ 0 (mod 2)} (the smallest grid
// containing both).
func TestJoinAssignWidens(t *testing.T) {
	r := require.New(t)
	base := buildGrid(t, 1, stride(1, 0, 4, 0))

	pointGS := system.NewGridGeneratorSystem(1)
	pt, err := gridgen.NewPoint(fromVar(0).Times(c(2)), c(1))
	r.NoError(err)
	r.NoError(pointGS.Insert(pt))
	point, err := grid.FromGridGenerators(pointGS)
	r.NoError(err)

	r.NoError(base.JoinAssign(point))

	sat, err := base.Satisfies(stride(1, 0, 2, 0))
	r.NoError(err)
	r.True(sat)

	// the joined grid must still contain the original mod-4 sublattice.
	orig := buildGrid(t, 1, stride(1, 0, 4, 0))
	contains, err := base.Contains(orig)
	r.NoError(err)
	r.True(contains)
}

// TestS6AffineImageShiftsCongruence covers spec.md's scenario S6: the grid
// generator parametric shift. G = {A ≡ 0 (mod 4), B ≡ 0 (mod 2)};
// affine_image(A, A+3, 1) must produce {A ≡ 3 (mod 4), B ≡ 0 (mod 2)}.
func TestS6AffineImageShiftsCongruence(t *testing.T) {
	r := require.New(t)
	g := buildGrid(t, 2, stride(2, 0, 4, 0), stride(2, 1, 2, 0))

	r.NoError(g.AffineImage(varVal(0), fromVar(0).Add(constant(3)), c(1)))

	sat1, err := g.Satisfies(stride(2, 0, 4, 3))
	r.NoError(err)
	r.True(sat1)

	sat2, err := g.Satisfies(stride(2, 1, 2, 0))
	r.NoError(err)
	r.True(sat2)

	// the old congruence A ≡ 0 (mod 4) must no longer hold.
	stillOld, err := g.Satisfies(stride(2, 0, 4, 0))
	r.NoError(err)
	r.False(stillOld)
}

// TestAffinePreimageInverts checks that AffinePreimage undoes the shift
// AffineImage performed, recovering the original congruence.
func TestAffinePreimageInverts(t *testing.T) {
	r := require.New(t)
	g := buildGrid(t, 1, stride(1, 0, 4, 3))
	r.NoError(g.AffinePreimage(varVal(0), fromVar(0).Add(constant(3)), c(1)))

	sat, err := g.Satisfies(stride(1, 0, 4, 0))
	r.NoError(err)
	r.True(sat)
}

// TestRemoveSpaceDimensionsProjectsAway checks that projecting away B from
// {A ≡ 0 (mod 2), B ≡ 0 (mod 3)} leaves exactly {A ≡ 0 (mod 2)} over a
// single dimension.
func TestRemoveSpaceDimensionsProjectsAway(t *testing.T) {
	r := require.New(t)
	g := buildGrid(t, 2, stride(2, 0, 2, 0), stride(2, 1, 3, 0))
	r.NoError(g.RemoveSpaceDimensions([]variable.Variable{varVal(1)}))
	r.Equal(1, g.SpaceDimension())

	sat, err := g.Satisfies(stride(1, 0, 2, 0))
	r.NoError(err)
	r.True(sat)
}

// TestFoldSpaceDimensionsUnionsCopies folds two independent mod-2
// sublattices {A ≡ 0 (mod 2)} and {B ≡ 0 (mod 2)} (with A and B otherwise
// unconstrained) into a single dimension; the fold must contain the image
// of both, i.e. every even integer.
func TestFoldSpaceDimensionsUnionsCopies(t *testing.T) {
	r := require.New(t)
	g := buildGrid(t, 2, stride(2, 0, 2, 0), stride(2, 1, 2, 0))

	r.NoError(g.FoldSpaceDimensions([]variable.Variable{varVal(0)}, varVal(1)))
	r.Equal(1, g.SpaceDimension())

	sat, err := g.Satisfies(stride(1, 0, 2, 0))
	r.NoError(err)
	r.True(sat)
}

// TestWideningAssignStabilisesChain covers spec.md §4.5's congruence
// widening on one step of the ascending chain {A ≡ 0 mod 4} ⊂ {A ≡ 0 mod 2}:
// widening the later iterate by the earlier one must give a grid that
// still contains the earlier iterate.
func TestWideningAssignStabilisesChain(t *testing.T) {
	r := require.New(t)
	p1 := buildGrid(t, 1, stride(1, 0, 4, 0))
	p2 := buildGrid(t, 1, stride(1, 0, 2, 0))

	r.NoError(p2.WideningAssign(p1))

	// p2's A ≡ 0 (mod 2) has no equal congruence in p1 (p1 has mod 4 at
	// the same leading dimension), so widening drops it, leaving p2 the
	// universe, which contains p1.
	contains, err := p2.Contains(p1)
	r.NoError(err)
	r.True(contains)
}

// TestWideningAssignTokensDefersADrop checks that a one-token budget
// blocks a widening step that would otherwise change g, consuming the
// token instead of applying the drop.
func TestWideningAssignTokensDefersADrop(t *testing.T) {
	r := require.New(t)
	p1 := buildGrid(t, 1, stride(1, 0, 4, 0))
	p2 := buildGrid(t, 1, stride(1, 0, 2, 0))

	tokens := 1
	r.NoError(p2.WideningAssignTokens(p1, &tokens))
	r.Equal(0, tokens)

	sat, err := p2.Satisfies(stride(1, 0, 2, 0))
	r.NoError(err)
	r.True(sat)
}

// TestGeneratorWideningRelaxesUnmatchedParameter checks that
// GeneratorWideningAssign relaxes a period vector absent from q into a
// line (spec.md §4.5's generator-side widening dual).
func TestGeneratorWideningRelaxesUnmatchedParameter(t *testing.T) {
	r := require.New(t)

	gGS := system.NewGridGeneratorSystem(1)
	pt, err := gridgen.NewPoint(constant(0), c(1))
	r.NoError(err)
	r.NoError(gGS.Insert(pt))
	r.NoError(gGS.Insert(gridgen.NewParameter(fromVar(0).Times(c(2)))))
	g, err := grid.FromGridGenerators(gGS)
	r.NoError(err)

	qGS := system.NewGridGeneratorSystem(1)
	qpt, err := gridgen.NewPoint(constant(0), c(1))
	r.NoError(err)
	r.NoError(qGS.Insert(qpt))
	r.NoError(qGS.Insert(gridgen.NewParameter(fromVar(0).Times(c(4)))))
	q, err := grid.FromGridGenerators(qGS)
	r.NoError(err)

	r.NoError(g.GeneratorWideningAssign(q))

	// g must now be the universe line (A is free), which contains every
	// point of the mod-4 grid q.
	contains, err := g.Contains(q)
	r.NoError(err)
	r.True(contains)
}

// TestLimitedCongruenceExtrapolationKeepsSatisfiedCongruence checks that
// a limiting congruence the receiver already satisfies before widening is
// restored after an otherwise-destructive widening step.
func TestLimitedCongruenceExtrapolationKeepsSatisfiedCongruence(t *testing.T) {
	r := require.New(t)
	p1 := buildGrid(t, 1, stride(1, 0, 4, 0))
	p2 := buildGrid(t, 1, stride(1, 0, 2, 0))

	limit := system.NewCongruenceSystem(1)
	limit.Insert(stride(1, 0, 2, 0))

	r.NoError(p2.LimitedCongruenceExtrapolationAssign(p1, limit))

	sat, err := p2.Satisfies(stride(1, 0, 2, 0))
	r.NoError(err)
	r.True(sat)
}

// TestAddGridGeneratorRejectsNonPointIntoEmpty checks spec.md §4.5.1's
// edge case: inserting a line or parameter into an empty grid is invalid
// since the grid has no base point to anchor it to.
func TestAddGridGeneratorRejectsNonPointIntoEmpty(t *testing.T) {
	r := require.New(t)
	g := grid.Empty(1)
	err := g.AddGridGenerator(gridgen.NewLine(fromVar(0)))
	r.ErrorIs(err, grid.ErrInvalidArg)
}

// TestAddCongruenceDimIncompat checks the DIM_INCOMPAT failure path.
func TestAddCongruenceDimIncompat(t *testing.T) {
	r := require.New(t)
	g := grid.Universe(1)
	err := g.AddCongruence(stride(2, 1, 2, 0))
	r.ErrorIs(err, grid.ErrDimIncompat)
}

// TestAffineImageDivByZero checks the DIV_BY_ZERO failure path.
func TestAffineImageDivByZero(t *testing.T) {
	r := require.New(t)
	g := grid.Universe(1)
	err := g.AffineImage(varVal(0), fromVar(0), c(0))
	r.ErrorIs(err, grid.ErrDivByZero)
}

// TestEqualReflexive mirrors the polyhedron reflexive-containment property
// for grids (spec.md §8's property 1, applied to grid.Equal/Contains).
func TestEqualReflexive(t *testing.T) {
	r := require.New(t)
	g := buildGrid(t, 1, stride(1, 0, 3, 1))
	eq, err := g.Equal(g.Clone())
	r.NoError(err)
	r.True(eq)

	contains, err := g.Contains(g.Clone())
	r.NoError(err)
	r.True(contains)
}

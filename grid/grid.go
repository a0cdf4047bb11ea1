package grid

import (
	"github.com/polylat/polylat/coefficient"
	"github.com/polylat/polylat/gridgen"
	"github.com/polylat/polylat/linexpr"
	"github.com/polylat/polylat/system"
	"github.com/polylat/polylat/variable"
)

// Grid is a set of points over Qⁿ of the form p + Σ λᵢvᵢ (spec.md §3.6),
// represented by a pair of lazily-synchronized Linear_Systems: a
// Congruence_System and a Grid_Generator_System.
type Grid struct {
	spaceDim int
	conSys   *system.CongruenceSystem
	genSys   *system.GridGeneratorSystem
	st       status
}

// Empty returns the empty grid (no points) of the given space dimension.
func Empty(spaceDim int) *Grid {
	g := &Grid{
		spaceDim: spaceDim,
		conSys:   system.NewCongruenceSystem(spaceDim),
		genSys:   system.NewGridGeneratorSystem(spaceDim),
		st:       statusEmpty,
	}
	return g
}

// Universe returns the grid containing all of Qⁿ.
func Universe(spaceDim int) *Grid {
	g := &Grid{
		spaceDim: spaceDim,
		conSys:   system.NewCongruenceSystem(spaceDim),
		genSys:   system.NewGridGeneratorSystem(spaceDim),
	}
	if spaceDim == 0 {
		g.st = zeroDimUniverse
		return g
	}
	g.populateUniverseGenerators()
	g.st = gUpToDate | gMinimized
	return g
}

func (g *Grid) populateUniverseGenerators() {
	pt, _ := gridgen.NewPoint(linexpr.Constant(coefficient.Zero()), coefficient.One())
	_ = g.genSys.Insert(pt)
	for i := 0; i < g.spaceDim; i++ {
		_ = g.genSys.Insert(gridgen.NewLine(linexpr.FromVariable(variable.Variable(i))))
	}
}

// FromCongruences builds a Grid whose congruence representation is cs. cs
// is cloned; the generator side starts out-of-date.
func FromCongruences(cs *system.CongruenceSystem) *Grid {
	clone := cs.Clone()
	g := &Grid{
		spaceDim: clone.SpaceDimension(),
		conSys:   clone,
		genSys:   system.NewGridGeneratorSystem(clone.SpaceDimension()),
		st:       cUpToDate,
	}
	if clone.NumRows() == 0 {
		if g.spaceDim == 0 {
			g.st = zeroDimUniverse
		} else {
			g.populateUniverseGenerators()
			g.st = cUpToDate | gUpToDate | gMinimized
		}
	}
	return g
}

// FromGridGenerators builds a Grid whose generator representation is gs.
// gs is cloned; the congruence side starts out-of-date.
func FromGridGenerators(gs *system.GridGeneratorSystem) (*Grid, error) {
	if gs.NumRows() > 0 && !gs.HasPoint() {
		return nil, ErrInvalidArg
	}
	clone := gs.Clone()
	g := &Grid{
		spaceDim: clone.SpaceDimension(),
		conSys:   system.NewCongruenceSystem(clone.SpaceDimension()),
		genSys:   clone,
		st:       gUpToDate,
	}
	if clone.NumRows() == 0 {
		g.st = statusEmpty
	}
	return g, nil
}

// Clone returns an independent deep copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{
		spaceDim: g.spaceDim,
		conSys:   g.conSys.Clone(),
		genSys:   g.genSys.Clone(),
		st:       g.st,
	}
}

// SpaceDimension returns n.
func (g *Grid) SpaceDimension() int { return g.spaceDim }

// IsEmpty reports whether g denotes no points, minimizing first if needed.
func (g *Grid) IsEmpty() bool {
	if g.st.has(statusEmpty) {
		return true
	}
	if g.st.has(zeroDimUniverse) {
		return false
	}
	return !g.Minimize()
}

// IsUniverse reports whether g denotes all of Qⁿ: the minimized congruence
// representation (always axis-normal form, see convert.go) has no rows.
func (g *Grid) IsUniverse() bool {
	if g.IsEmpty() {
		return false
	}
	if g.st.has(zeroDimUniverse) {
		return true
	}
	g.Minimize()
	return g.conSys.NumRows() == 0
}

func checkDim(g *Grid, dim int) error {
	if dim > g.spaceDim {
		return ErrDimIncompat
	}
	return nil
}

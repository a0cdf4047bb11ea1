package system

import (
	"github.com/polylat/polylat/gridgen"
	"github.com/polylat/polylat/linsys"
	"github.com/polylat/polylat/row"
)

// GridGeneratorSystem is a Linear_System of GridGenerator rows (line,
// parameter, point). Grid_Generator_System always carries
// NecessarilyClosed rows: grids have no strict-inequality/epsilon concept
// (spec.md §3.6).
type GridGeneratorSystem struct {
	sys *linsys.System
}

// NewGridGeneratorSystem returns an empty GridGeneratorSystem over the
// given space dimension.
func NewGridGeneratorSystem(spaceDim int) *GridGeneratorSystem {
	return &GridGeneratorSystem{sys: linsys.New(row.NecessarilyClosed, spaceDim+1)}
}

// SpaceDimension returns the number of variable columns.
func (gs *GridGeneratorSystem) SpaceDimension() int { return gs.sys.NumColumns() - 1 }

// NumRows returns the total row count (pending included).
func (gs *GridGeneratorSystem) NumRows() int { return gs.sys.NumRows() }

// Insert appends g, adjusting its size to the system's. The first
// generator of an empty system must be the grid's base Point.
func (gs *GridGeneratorSystem) Insert(g gridgen.GridGenerator) error {
	if gs.sys.NumRows() == 0 && g.Kind() != gridgen.Point {
		return ErrInvalidGenerator
	}
	return gs.sys.Insert(g.Row())
}

// InsertPending is Insert's pending-row counterpart.
func (gs *GridGeneratorSystem) InsertPending(g gridgen.GridGenerator) error {
	return gs.sys.InsertPending(g.Row())
}

// GridGenerators returns every row (pending included) as a GridGenerator.
func (gs *GridGeneratorSystem) GridGenerators() []gridgen.GridGenerator {
	rows := gs.sys.Rows()
	out := make([]gridgen.GridGenerator, 0, len(rows))
	for _, r := range rows {
		g, err := gridgen.FromRow(r)
		if err == nil {
			out = append(out, g)
		}
	}
	return out
}

// HasPoint reports whether the system contains the grid's base point.
func (gs *GridGeneratorSystem) HasPoint() bool {
	for _, g := range gs.GridGenerators() {
		if g.Kind() == gridgen.Point {
			return true
		}
	}
	return false
}

// Linsys exposes the underlying linsys.System for use by the grid engine's
// conversion/minimization routines.
func (gs *GridGeneratorSystem) Linsys() *linsys.System { return gs.sys }

// Clone returns an independent deep copy.
func (gs *GridGeneratorSystem) Clone() *GridGeneratorSystem {
	return &GridGeneratorSystem{sys: gs.sys.Clone()}
}

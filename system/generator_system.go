package system

import (
	"github.com/polylat/polylat/generator"
	"github.com/polylat/polylat/linsys"
	"github.com/polylat/polylat/row"
)

// GeneratorSystem is a Linear_System of Generator rows. spec.md §4.2
// requires at least one Point for a non-empty closed polyhedron, and a
// matching ClosurePoint for every Point in an NNC one; Validate checks
// both once the caller has finished inserting.
type GeneratorSystem struct {
	sys *linsys.System
}

// NewGeneratorSystem returns an empty GeneratorSystem of the given
// topology and space dimension.
func NewGeneratorSystem(topology row.Topology, spaceDim int) *GeneratorSystem {
	return &GeneratorSystem{sys: linsys.New(topology, spaceDim+topology.Delta())}
}

// Topology returns the system's topology.
func (gs *GeneratorSystem) Topology() row.Topology { return gs.sys.Topology() }

// SpaceDimension returns the number of variable columns.
func (gs *GeneratorSystem) SpaceDimension() int { return gs.sys.NumColumns() - gs.sys.Topology().Delta() }

// NumRows returns the total generator count (pending included).
func (gs *GeneratorSystem) NumRows() int { return gs.sys.NumRows() }

// Insert appends g, adjusting its topology/size to the system's. The first
// generator ever inserted into an empty system must be a Point, since an
// empty generator system denotes the empty polyhedron and only a Point can
// make it non-empty (spec.md §4.4.1's add_generator contract).
func (gs *GeneratorSystem) Insert(g generator.Generator) error {
	if gs.sys.NumRows() == 0 && g.Kind() != generator.Point {
		return ErrInvalidGenerator
	}
	return gs.sys.Insert(g.Row())
}

// InsertPending is Insert's pending-row counterpart; it does not enforce
// the first-generator-is-a-point rule, since pending rows are not yet
// part of the system's observable state.
func (gs *GeneratorSystem) InsertPending(g generator.Generator) error {
	return gs.sys.InsertPending(g.Row())
}

// Generators returns every row (pending included) reinterpreted as Generator.
func (gs *GeneratorSystem) Generators() []generator.Generator {
	rows := gs.sys.Rows()
	out := make([]generator.Generator, 0, len(rows))
	for _, r := range rows {
		g, err := generator.FromRow(r)
		if err == nil {
			out = append(out, g)
		}
	}
	return out
}

// HasPoint reports whether the system contains at least one Point.
func (gs *GeneratorSystem) HasPoint() bool {
	for _, g := range gs.Generators() {
		if g.Kind() == generator.Point {
			return true
		}
	}
	return false
}

// PointsMatchClosurePoints reports whether, for an NNC system, every Point
// has a ClosurePoint at the same coordinates and vice versa.
func (gs *GeneratorSystem) PointsMatchClosurePoints() bool {
	if gs.sys.Topology() != row.NotNecessarilyClosed {
		return true
	}
	gens := gs.Generators()
	var points, closures []generator.Generator
	for _, g := range gens {
		switch g.Kind() {
		case generator.Point:
			points = append(points, g)
		case generator.ClosurePoint:
			closures = append(closures, g)
		}
	}
	if len(points) != len(closures) {
		return false
	}
	used := make([]bool, len(closures))
	for _, p := range points {
		matched := false
		for i, cp := range closures {
			if used[i] {
				continue
			}
			if p.SameCoordinates(cp) {
				used[i] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// Validate checks the non-empty-closed and NNC invariants spec.md §4.2
// assigns to generator systems. An empty system (denoting the empty
// polyhedron) always validates.
func (gs *GeneratorSystem) Validate() error {
	if gs.sys.NumRows() == 0 {
		return nil
	}
	if gs.sys.Topology() == row.NecessarilyClosed && !gs.HasPoint() {
		return ErrMissingPoint
	}
	if !gs.PointsMatchClosurePoints() {
		return ErrMismatchedClosurePoint
	}
	return nil
}

// Linsys exposes the underlying linsys.System for use by the polyhedron
// engine's conversion/minimization routines.
func (gs *GeneratorSystem) Linsys() *linsys.System { return gs.sys }

// Clone returns an independent deep copy.
func (gs *GeneratorSystem) Clone() *GeneratorSystem {
	return &GeneratorSystem{sys: gs.sys.Clone()}
}

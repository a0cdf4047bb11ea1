package polyhedron

import (
	"github.com/polylat/polylat/row"
	"github.com/polylat/polylat/system"
)

// Polyhedron is a convex set over Q^n (or Z^n when queried with
// contains_integer_point), represented by a pair of Linear_Systems kept
// lazily synchronized (spec.md §3.5).
type Polyhedron struct {
	spaceDim int
	topology row.Topology
	conSys   *system.ConstraintSystem
	genSys   *system.GeneratorSystem
	satC     row.BitMatrix // rows indexed by generators, columns by constraints
	satG     row.BitMatrix // rows indexed by constraints, columns by generators
	st       status
}

// Empty returns the empty polyhedron of the given space dimension and topology.
func Empty(spaceDim int, topology row.Topology) *Polyhedron {
	p := &Polyhedron{
		spaceDim: spaceDim,
		topology: topology,
		conSys:   system.NewConstraintSystem(topology, spaceDim),
		genSys:   system.NewGeneratorSystem(topology, spaceDim),
		st:       statusEmpty,
	}
	return p
}

// Universe returns the universe polyhedron (all of Q^n) of the given space
// dimension and topology.
func Universe(spaceDim int, topology row.Topology) *Polyhedron {
	p := &Polyhedron{
		spaceDim: spaceDim,
		topology: topology,
		conSys:   system.NewConstraintSystem(topology, spaceDim),
		genSys:   system.NewGeneratorSystem(topology, spaceDim),
	}
	if spaceDim == 0 {
		p.st = zeroDimUniverse
		return p
	}
	p.populateUniverseGenerators()
	p.st = gUpToDate | gMinimized
	return p
}

// populateUniverseGenerators fills genSys with the canonical universe
// generator system: a point at the origin plus a line along every axis.
func (p *Polyhedron) populateUniverseGenerators() {
	for _, g := range universeGenerators(p.spaceDim, p.topology) {
		_ = p.genSys.Insert(g)
	}
}

// FromConstraints builds a Polyhedron whose constraint representation is cs.
// cs is cloned; the generator side starts out-of-date.
func FromConstraints(cs *system.ConstraintSystem) *Polyhedron {
	clone := cs.Clone()
	p := &Polyhedron{
		spaceDim: clone.SpaceDimension(),
		topology: clone.Topology(),
		conSys:   clone,
		genSys:   system.NewGeneratorSystem(clone.Topology(), clone.SpaceDimension()),
		st:       cUpToDate,
	}
	if clone.NumRows() == 0 {
		if p.spaceDim == 0 {
			p.st = zeroDimUniverse
		} else {
			p.populateUniverseGenerators()
			p.st = cUpToDate | gUpToDate | gMinimized
		}
	}
	return p
}

// FromGenerators builds a Polyhedron whose generator representation is gs.
// gs is cloned; the constraint side starts out-of-date. An invalid gs
// (missing required point / mismatched closure points) yields ErrInvalidArg.
func FromGenerators(gs *system.GeneratorSystem) (*Polyhedron, error) {
	if err := gs.Validate(); err != nil {
		return nil, ErrInvalidArg
	}
	clone := gs.Clone()
	p := &Polyhedron{
		spaceDim: clone.SpaceDimension(),
		topology: clone.Topology(),
		conSys:   system.NewConstraintSystem(clone.Topology(), clone.SpaceDimension()),
		genSys:   clone,
		st:       gUpToDate,
	}
	if clone.NumRows() == 0 {
		p.st = statusEmpty
	}
	return p, nil
}

// Clone returns an independent deep copy of p.
func (p *Polyhedron) Clone() *Polyhedron {
	return &Polyhedron{
		spaceDim: p.spaceDim,
		topology: p.topology,
		conSys:   p.conSys.Clone(),
		genSys:   p.genSys.Clone(),
		satC:     p.satC.Clone(),
		satG:     p.satG.Clone(),
		st:       p.st,
	}
}

// SpaceDimension returns n.
func (p *Polyhedron) SpaceDimension() int { return p.spaceDim }

// Topology returns the polyhedron's topology.
func (p *Polyhedron) Topology() row.Topology { return p.topology }

// IsEmpty reports whether p denotes the empty set, minimizing first if needed.
func (p *Polyhedron) IsEmpty() bool {
	if p.st.has(statusEmpty) {
		return true
	}
	if p.st.has(zeroDimUniverse) {
		return false
	}
	ok := p.Minimize()
	return !ok
}

// IsUniverse reports whether p denotes all of Q^n.
func (p *Polyhedron) IsUniverse() bool {
	if p.IsEmpty() {
		return false
	}
	if p.st.has(zeroDimUniverse) {
		return true
	}
	p.Minimize()
	for _, c := range p.conSys.Constraints() {
		if !c.IsTriviallyTrue() {
			return false
		}
	}
	return true
}

func checkDim(p *Polyhedron, dim int) error {
	if dim > p.spaceDim {
		return ErrDimIncompat
	}
	return nil
}

func checkTopology(a, b row.Topology) error {
	if a != b {
		return ErrTopoIncompat
	}
	return nil
}

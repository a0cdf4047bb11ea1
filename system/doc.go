// Package system layers domain invariants on top of linsys.System: the
// insert-time policies spec.md §4.2 assigns to each typed row kind
// (Constraint, Generator, Congruence, Grid_Generator).
//
// ConstraintSystem, GeneratorSystem, and GridGeneratorSystem delegate row
// storage to a wrapped *linsys.System, since constraint/generator/gridgen
// rows are plain row.Row views with no auxiliary per-row data. Congruence
// carries a modulus that row.Row has no column for, so CongruenceSystem
// keeps its own slice instead of delegating; see congruence_system.go.
package system

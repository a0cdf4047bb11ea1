// Package linsys implements Linear_System: an ordered collection of
// row.Row values of one topology, split into a non-pending prefix and a
// pending tail, with a sortedness flag over the non-pending prefix.
//
// System is a mutable container (like bytes.Buffer): its mutators operate
// in place via a pointer receiver rather than returning a modified copy,
// per spec.md §9's guidance against row-level copy-on-write. Callers that
// need an independent copy (Polyhedron's value semantics at the public
// surface, spec.md §5) call Clone explicitly.
package linsys

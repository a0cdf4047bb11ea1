// Package polyhedron implements the double-description convex polyhedron
// domain: a value owns a Constraint_System and a Generator_System connected
// by the Chernikova conversion (spec.md §4.4), kept lazily in sync via a
// small status bitset rather than eagerly recomputed on every mutation.
//
// Grounded on spec.md §3.5/§4.4 directly; the surrounding package shape
// (doc.go/errors.go/sentinel-error style, functional-options-free value
// methods) follows the rest of this module, which in turn follows the
// teacher's conventions (see DESIGN.md).
package polyhedron

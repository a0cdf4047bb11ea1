// Package engine owns the one piece of process-wide-shaped shared state
// spec.md §5 calls out: a reusable scratch buffer used while counting
// saturators during simplify/minimization. Rather than a package-level
// global, it is an explicit value, confined to one goroutine at a time per
// spec.md's concurrency contract. No Polyhedron or Grid operation takes an
// Engine.
//
// Lifecycle mirrors spec.md §5's initialize()/finalize() pair: New
// allocates, Close releases. Acquire/Release mark an Engine as exclusively
// held for the duration of a call.
package engine

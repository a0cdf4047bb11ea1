// Package grid implements the integer grid abstract domain (spec.md §3.6,
// §4.5): a set of points p + Σ λᵢvᵢ, p a rational base point, vᵢ either a
// Parameter (period vector, λᵢ ∈ ℤ) or a Line (λᵢ ∈ ℚ, fully free). It
// mirrors the polyhedron package's dual-representation skeleton --
// Congruence_System and Grid_Generator_System kept lazily synchronized --
// but conversion between them is an axis-wise Hermite-like reduction
// instead of Chernikova's cone-doubling (see convert.go for the scope this
// reduction covers exactly and where it soundly over-approximates).
package grid

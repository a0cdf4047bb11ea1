// Package mip implements a small bounded exact-rational mixed integer
// program solver (spec.md §4.6), used by the polyhedron package to answer
// contains_integer_point queries. Arithmetic is done entirely with
// math/big.Rat; no floating point is used anywhere, and the solver is
// deterministic (Bland's pivoting rule, sorted branching order).
package mip

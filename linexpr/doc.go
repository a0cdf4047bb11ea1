// Package linexpr implements Linear_Expression: an affine form
// sum(a_i * x_i) + b over Coefficient, stored as a dense column vector
// indexed by variable plus one inhomogeneous column at index 0.
//
// Expression values are immutable: every combinator (Add, Sub, Times,
// WithCoefficient) returns a new Expression rather than mutating the
// receiver, so Expression can be freely shared across Row construction.
package linexpr

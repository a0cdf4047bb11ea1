// Package variable defines Variable, the opaque zero-based index identifying
// a space dimension, and small helpers for reasoning about the space
// dimension of a collection of variables.
package variable

// Package constraint provides Constraint, a typed view over row.Row
// interpreting it as e = 0 (equality), e >= 0 (non-strict inequality), or
// (topology permitting) e > 0 (strict inequality).
package constraint

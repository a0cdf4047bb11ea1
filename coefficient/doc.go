// Package coefficient provides an arbitrary-precision signed integer type,
// Coefficient, used throughout polylat as the exact scalar underlying every
// linear form, constraint, generator, and congruence.
//
// All polyhedral and grid arithmetic is exact: Coefficient never rounds
// except via the two explicitly named division modes (DivFloor, DivTrunc).
// There is no floating-point variant and none is planned (see the
// project's Non-goals).
package coefficient

// Package scalarprod implements Scalar_Products: the family of homogeneous,
// reduced, and plain inner products between rows, plus the topology-adjusted
// sign function used by the Chernikova conversion to decide whether a
// generator satisfies a constraint.
//
// Grounded on _examples/original_source/src/Scalar_Products.defs.hh, which
// fixes the exact function family (assign/sign, each in plain/reduced/
// homogeneous flavors, over every ordered pair of row-like types the core
// needs). Go has no overloading, so each (type, type) pair gets its own
// named function; Go generics are not used here because the three flavors
// differ in which columns they skip, not in the element type.
package scalarprod

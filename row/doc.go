// Package row implements Linear_Row, the primitive storage shared by
// constraints, generators, and congruences, along with the Bit_Row/Bit_Matrix
// bitsets used to record saturation information between dual systems.
//
// A Row owns a column vector of Coefficient values plus a Topology flag
// (NecessarilyClosed rows have no epsilon column; NotNecessarilyClosed rows
// carry one extra trailing column at index space_dim+1) and a Kind flag
// (LineOrEquality vs RayOrPointOrInequality) recording how the row's owner
// should interpret it. Row itself does not enforce domain invariants
// (Constraint/Generator/Congruence do); it only provides the shared column
// storage, strong normalization, and lexicographic ordering.
package row

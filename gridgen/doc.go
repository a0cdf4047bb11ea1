// Package gridgen provides GridGenerator: a line, parameter, or point used
// to describe a grid as { p + sum(lambda_i * v_i) : lambda_i in Z }. Grid
// generators never carry a strict/NNC flavor, so the underlying row.Row is
// always NecessarilyClosed.
package gridgen

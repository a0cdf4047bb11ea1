// Package generator provides Generator, a typed view over row.Row
// interpreting it as a line, ray, point, or (NotNecessarilyClosed only)
// closure point, per spec.md §3.3.
package generator

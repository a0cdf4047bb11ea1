// Package ascii implements a textual tokenizer/writer for the
// ascii_dump/ascii_load shape of spec.md §6.1 (space_dim, status tokens,
// con_sys/gen_sys blocks, sat_c/sat_g bit rows). Polyhedron and Grid have
// no dump/load methods and do not import this package.
//
// There is no third-party tokenizer in the retrieval pack suited to a
// private, whitespace-delimited integer/token format: bufio.Scanner with
// ScanWords is the standard, idiomatic choice for exactly this shape, so
// this package is built on it directly rather than reaching for a
// general-purpose parser library.
package ascii

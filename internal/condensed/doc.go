// Package condensed converts between the condensed pairwise vector and the
// dense symmetric matrix it encodes.
//
// The condensed vector stores the strict upper triangle row by row:
// (0,1),(0,2),…,(0,N-1),(1,2),…,(N-2,N-1). Pairs returns that order and
// the pairwise engine fills its output by it, so Assemble can walk the
// vector with a single counter.
package condensed

// Package metric holds the pairwise scores used to build a distance matrix
// from aligned sequences. Every function is pure and safe for concurrent use;
// the pairwise engine shares the input slices across workers without locks.
//
// Identity and Similarity are gap-compressed: a run of consecutive indel
// columns counts as a single difference, and gap/gap columns are ignored.
package metric

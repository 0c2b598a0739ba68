// Package pairwise evaluates a metric over every unordered pair of sequences.
//
// The worker pool is sized by Config and owned by the Engine; nothing here
// reads global state. Workers receive contiguous ranges of the canonical pair
// list and write each score into its own output slot, so the condensed vector
// comes back in canonical order whatever the completion order was.
package pairwise

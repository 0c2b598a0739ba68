// Package align checks that a set of sequences forms a rectangular alignment.
package align

import (
	"errors"
	"fmt"
)

// ErrUnequalLength is returned when sequences differ in length.
var ErrUnequalLength = errors.New("align: sequences differ in length")

// Check returns nil when every sequence has the length of the first one.
// Otherwise the error names the first offending sequence by ids[i]
// (or its index when ids is short).
func Check(ids []string, seqs [][]byte) error {
	if len(seqs) < 2 {
		return nil
	}
	want := len(seqs[0])
	for i := 1; i < len(seqs); i++ {
		if got := len(seqs[i]); got != want {
			return fmt.Errorf("%w: %s has %d columns, %s has %d",
				ErrUnequalLength, name(ids, i), got, name(ids, 0), want)
		}
	}
	return nil
}

// Width returns the alignment length (the longest sequence).
func Width(seqs [][]byte) int {
	w := 0
	for _, s := range seqs {
		w = max(w, len(s))
	}
	return w
}

func name(ids []string, i int) string {
	if i < len(ids) && ids[i] != "" {
		return fmt.Sprintf("%q", ids[i])
	}
	return fmt.Sprintf("#%d", i+1)
}

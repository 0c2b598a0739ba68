package writers

import (
	"strconv"

	"distmat/internal/condensed"
)

// Table is a labelled square matrix ready for output. Exactly one of Ints
// and Floats is set. Rows are emitted for Names only, so a matrix larger
// than len(Names) (the 1×1 result of an empty input) is clipped.
type Table struct {
	Names      []string
	Method     string
	Diagonal   float64
	Invocation string // "# ..." comment line in TSV; empty omits the value
	Source     string // input path, JSON only

	Ints   *condensed.Matrix[int]
	Floats *condensed.Matrix[float64]
}

// N returns the number of labelled rows.
func (t *Table) N() int { return len(t.Names) }

// Value returns cell (i,j) as float64.
func (t *Table) Value(i, j int) float64 {
	if t.Ints != nil {
		return float64(t.Ints.At(i, j))
	}
	return t.Floats.At(i, j)
}

// Text returns cell (i,j) formatted for TSV: integers as-is, floats with
// the shortest decimal that round-trips.
func (t *Table) Text(i, j int) string {
	if t.Ints != nil {
		return strconv.Itoa(t.Ints.At(i, j))
	}
	return strconv.FormatFloat(t.Floats.At(i, j), 'f', -1, 64)
}

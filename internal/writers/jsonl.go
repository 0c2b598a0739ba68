package writers

import (
	"io"

	"distmat/internal/condensed"
	"distmat/internal/jsonlutil"
	"distmat/pkg/api"
)

// WritePairs streams one api.PairV1 line per unordered pair, in canonical
// condensed order. The diagonal is not emitted.
func WritePairs(w io.Writer, t *Table) error {
	s := jsonlutil.Start[condensed.Pair](w, 256, func(p condensed.Pair) any {
		return api.PairV1{
			A:     t.Names[p.I],
			B:     t.Names[p.J],
			Score: t.Value(p.I, p.J),
		}
	}, IsBrokenPipe)
	for _, p := range condensed.Pairs(t.N()) {
		s.Send(p)
	}
	return s.Close()
}

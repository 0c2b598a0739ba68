package writers

import (
	"io"

	"distmat/internal/jsonutil"
	"distmat/internal/version"
	"distmat/pkg/api"
)

// ToAPI converts t to the v1 wire type.
func ToAPI(t *Table) api.MatrixV1 {
	n := t.N()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = t.Value(i, j)
		}
	}
	names := t.Names
	if names == nil {
		names = []string{}
	}
	return api.MatrixV1{
		Method:   t.Method,
		Diagonal: t.Diagonal,
		Names:    names,
		Matrix:   rows,
		Source:   t.Source,
		Version:  version.Version,
	}
}

// WriteJSON writes t as indented api.MatrixV1.
func WriteJSON(w io.Writer, t *Table) error {
	return jsonutil.EncodePretty(w, ToAPI(t))
}

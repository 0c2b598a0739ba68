package condensed

// Matrix is a square row-major matrix rebuilt from a condensed vector.
// It is not modified after Assemble returns.
type Matrix[T any] struct {
	n    int
	data []T
}

// Assemble rebuilds the N×N symmetric matrix encoded by vec, with diag on
// the diagonal. Both mirrored cells are written from the same element so the
// result is exactly symmetric. An empty vec yields a 1×1 matrix.
func Assemble[T any](vec []T, diag T) (*Matrix[T], error) {
	n, err := Size(len(vec))
	if err != nil {
		return nil, err
	}
	data := make([]T, n*n)
	for i := range data {
		data[i] = diag
	}
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			data[i*n+j] = vec[k]
			data[j*n+i] = vec[k]
			k++
		}
	}
	return &Matrix[T]{n: n, data: data}, nil
}

// N returns the matrix dimension.
func (m *Matrix[T]) N() int { return m.n }

// At returns element (i,j). It panics on out-of-range indices like a slice.
func (m *Matrix[T]) At(i, j int) T {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic("condensed: index out of range")
	}
	return m.data[i*m.n+j]
}

// Row returns a copy of row i.
func (m *Matrix[T]) Row(i int) []T {
	out := make([]T, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])
	return out
}

// Rows returns the matrix as a fresh slice of row copies.
func (m *Matrix[T]) Rows() [][]T {
	out := make([][]T, m.n)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

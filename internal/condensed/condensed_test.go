package condensed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"distmat/internal/condensed"
)

func TestAssemble_Reference(t *testing.T) {
	m, err := condensed.Assemble([]int{5, 11, 8}, 0)
	require.NoError(t, err)
	require.Equal(t, 3, m.N())
	require.Equal(t, [][]int{{0, 5, 11}, {5, 0, 8}, {11, 8, 0}}, m.Rows())
}

func TestAssemble_TriangularLengths(t *testing.T) {
	for n := 0; n <= 40; n++ {
		l := condensed.Len(n)
		vec := make([]float64, l)
		for k := range vec {
			vec[k] = float64(k) + 0.5
		}
		m, err := condensed.Assemble(vec, 100.0)
		require.NoError(t, err, "n=%d", n)
		want := n
		if n == 0 {
			want = 1
		}
		require.Equal(t, want, m.N())
		for i := 0; i < m.N(); i++ {
			require.Equal(t, 100.0, m.At(i, i))
			for j := 0; j < m.N(); j++ {
				require.Equal(t, m.At(i, j), m.At(j, i))
				if i != j {
					require.Equal(t, vec[condensed.Index(i, j, n)], m.At(i, j))
				}
			}
		}
	}
}

func TestAssemble_RejectsNonTriangular(t *testing.T) {
	valid := map[int]bool{}
	for n := 0; n < 50; n++ {
		valid[condensed.Len(n)] = true
	}
	for l := 0; l < 1000; l++ {
		_, err := condensed.Assemble(make([]int, l), 0)
		if valid[l] {
			require.NoError(t, err, "l=%d", l)
		} else {
			require.ErrorIs(t, err, condensed.ErrNotTriangular, "l=%d", l)
		}
	}
}

func TestSize(t *testing.T) {
	n, err := condensed.Size(4950)
	require.NoError(t, err)
	require.Equal(t, 100, n)

	_, err = condensed.Size(-1)
	require.ErrorIs(t, err, condensed.ErrNotTriangular)
}

func TestPairs_CanonicalOrder(t *testing.T) {
	require.Empty(t, condensed.Pairs(0))
	require.Empty(t, condensed.Pairs(1))
	require.Equal(t, []condensed.Pair{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, condensed.Pairs(4))

	ps := condensed.Pairs(7)
	require.Len(t, ps, condensed.Len(7))
	for k, p := range ps {
		require.Equal(t, k, condensed.Index(p.I, p.J, 7))
		require.Equal(t, k, condensed.Index(p.J, p.I, 7))
	}
}

func TestIndex_PanicsOnDiagonal(t *testing.T) {
	require.Panics(t, func() { condensed.Index(2, 2, 4) })
	require.Panics(t, func() { condensed.Index(0, 4, 4) })
}

func TestRow_ReturnsCopy(t *testing.T) {
	m, err := condensed.Assemble([]int{1}, 9)
	require.NoError(t, err)
	r := m.Row(0)
	r[1] = 42
	require.Equal(t, 1, m.At(0, 1))
}

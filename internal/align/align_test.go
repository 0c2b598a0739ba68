package align_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"distmat/internal/align"
)

func TestCheck(t *testing.T) {
	require.NoError(t, align.Check(nil, nil))
	require.NoError(t, align.Check([]string{"a"}, [][]byte{[]byte("ACG")}))
	require.NoError(t, align.Check([]string{"a", "b"}, [][]byte{[]byte("ACG"), []byte("A-G")}))

	err := align.Check([]string{"a", "b", "c"}, [][]byte{[]byte("ACG"), []byte("ACG"), []byte("AC")})
	require.ErrorIs(t, err, align.ErrUnequalLength)
	require.Contains(t, err.Error(), `"c" has 2 columns`)

	err = align.Check(nil, [][]byte{[]byte("A"), []byte("AC")})
	require.ErrorIs(t, err, align.ErrUnequalLength)
	require.Contains(t, err.Error(), "#2")
}

func TestWidth(t *testing.T) {
	require.Equal(t, 0, align.Width(nil))
	require.Equal(t, 4, align.Width([][]byte{[]byte("AC"), []byte("ACGT")}))
}

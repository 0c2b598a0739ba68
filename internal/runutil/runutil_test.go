package runutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClampThreads(t *testing.T) {
	cases := []struct{ req, cores, want int }{
		{0, 8, 8},
		{-2, 8, 8},
		{3, 8, 3},
		{8, 8, 8},
		{9, 8, 8},
		{4, 0, 1},
	}
	for _, c := range cases {
		require.Equal(t, c.want, clampThreads(c.req, c.cores), "req=%d cores=%d", c.req, c.cores)
	}
}

func TestEffectiveThreads(t *testing.T) {
	cores := PhysicalCores()
	require.GreaterOrEqual(t, cores, 1)
	require.Equal(t, cores, EffectiveThreads(0))
	require.Equal(t, 1, EffectiveThreads(1))
}

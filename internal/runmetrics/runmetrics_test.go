package runmetrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRecorder_WriteFile(t *testing.T) {
	r := New()
	r.Input(3, 16)
	r.Computed("hamming", 2, 3, 5*time.Millisecond)

	mfs, err := r.Gatherer().Gather()
	require.NoError(t, err)
	byName := map[string]bool{}
	for _, mf := range mfs {
		byName[mf.GetName()] = true
	}
	for _, n := range []string{"distmat_sequences", "distmat_alignment_length", "distmat_threads", "distmat_pairs_total", "distmat_compute_seconds"} {
		require.True(t, byName[n], n)
	}

	path := filepath.Join(t.TempDir(), "distmat.prom")
	require.NoError(t, r.WriteFile(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), `distmat_pairs_total{method="hamming"} 3`)
	require.Contains(t, string(b), "distmat_sequences 3")
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	r.Input(1, 1)
	r.Computed("identity", 1, 0, 0)
	require.NoError(t, r.WriteFile(filepath.Join(t.TempDir(), "x.prom")))
}

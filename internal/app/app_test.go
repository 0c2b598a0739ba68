package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"distmat/internal/cli"
	"distmat/internal/condensed"
	"distmat/internal/metric"
	"distmat/internal/pairwise"
)

func TestAssemble_DiagonalPerMethod(t *testing.T) {
	ids := []string{"a", "b", "c"}

	tbl, err := assemble(pairwise.Result{Kind: metric.KindHamming, Ints: []int{5, 11, 8}}, ids)
	require.NoError(t, err)
	require.Equal(t, 0, tbl.Ints.At(2, 2))
	require.Equal(t, 8, tbl.Ints.At(2, 1))
	require.Nil(t, tbl.Floats)

	tbl, err = assemble(pairwise.Result{Kind: metric.KindIdentity, Floats: []float64{1, 2, 3}}, ids)
	require.NoError(t, err)
	require.Equal(t, 100.0, tbl.Floats.At(1, 1))
	require.Equal(t, 100.0, tbl.Diagonal)
	require.Equal(t, "identity", tbl.Method)
}

func TestAssemble_BadLength(t *testing.T) {
	_, err := assemble(pairwise.Result{Kind: metric.KindSimilarity, Floats: []float64{1, 2}}, []string{"a", "b"})
	require.ErrorIs(t, err, condensed.ErrNotTriangular)
}

func TestRun_PairsFormat(t *testing.T) {
	var out, errBuf bytes.Buffer
	code := Run([]string{"-q", "-m", "hamming", "-f", "pairs", filepath.Join("testdata", "toy.fa")}, &out, &errBuf)
	require.Equal(t, 0, code, errBuf.String())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Equal(t, []string{
		`{"a":"seq1","b":"seq2","score":5}`,
		`{"a":"seq1","b":"seq3","score":11}`,
		`{"a":"seq2","b":"seq3","score":8}`,
	}, lines)
}

func TestExecute_UnknownMethodIsUsageError(t *testing.T) {
	var out, errBuf bytes.Buffer
	opts := cli.Options{
		Input:   filepath.Join("testdata", "toy.fa"),
		Method:  "kimura",
		Outfile: "-",
		Format:  "tsv",
	}
	code := execute(context.Background(), opts, nil, &out, &errBuf)
	require.Equal(t, exitUsage, code)
	require.Empty(t, out.String())
	require.Contains(t, errBuf.String(), "kimura")
}

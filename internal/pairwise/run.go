package pairwise

import "distmat/internal/metric"

// Result is a condensed vector tagged with the metric that produced it.
// Exactly one of Ints and Floats is set, depending on Kind.Integral.
type Result struct {
	Kind   metric.Kind
	Ints   []int
	Floats []float64
}

// Run dispatches kind to its metric and computes the condensed vector.
func Run(e *Engine, kind metric.Kind, seqs [][]byte) Result {
	switch kind {
	case metric.KindHamming:
		return Result{Kind: kind, Ints: Compute(e, seqs, metric.Hamming)}
	case metric.KindSimilarity:
		return Result{Kind: kind, Floats: Compute(e, seqs, metric.Similarity)}
	default:
		return Result{Kind: metric.KindIdentity, Floats: Compute(e, seqs, metric.Identity)}
	}
}

// Len returns the number of pairs scored.
func (r Result) Len() int {
	if r.Kind.Integral() {
		return len(r.Ints)
	}
	return len(r.Floats)
}

// Float64 returns the vector widened to float64.
func (r Result) Float64() []float64 {
	if !r.Kind.Integral() {
		return r.Floats
	}
	out := make([]float64, len(r.Ints))
	for i, v := range r.Ints {
		out[i] = float64(v)
	}
	return out
}

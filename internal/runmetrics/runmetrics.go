// Package runmetrics records per-run figures in a private Prometheus
// registry and writes them in the node_exporter textfile format.
package runmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds the collectors for one run. The zero value is not usable;
// call New. A nil *Recorder is valid and records nothing.
type Recorder struct {
	reg *prometheus.Registry

	sequences prometheus.Gauge
	width     prometheus.Gauge
	threads   prometheus.Gauge
	pairs     *prometheus.CounterVec
	compute   *prometheus.HistogramVec
}

// New returns a Recorder backed by a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Recorder{
		reg: reg,
		sequences: f.NewGauge(prometheus.GaugeOpts{
			Name: "distmat_sequences",
			Help: "Number of sequences read from the input alignment",
		}),
		width: f.NewGauge(prometheus.GaugeOpts{
			Name: "distmat_alignment_length",
			Help: "Number of columns in the longest input sequence",
		}),
		threads: f.NewGauge(prometheus.GaugeOpts{
			Name: "distmat_threads",
			Help: "Worker threads used for the pairwise computation",
		}),
		pairs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "distmat_pairs_total",
			Help: "Sequence pairs scored, by method",
		}, []string{"method"}),
		compute: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "distmat_compute_seconds",
			Help:    "Wall time of the pairwise computation, by method",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms to ~4.4min
		}, []string{"method"}),
	}
}

// Input records the shape of the alignment.
func (r *Recorder) Input(sequences, width int) {
	if r == nil {
		return
	}
	r.sequences.Set(float64(sequences))
	r.width.Set(float64(width))
}

// Computed records one pairwise run.
func (r *Recorder) Computed(method string, threads, pairs int, took time.Duration) {
	if r == nil {
		return
	}
	r.threads.Set(float64(threads))
	r.pairs.WithLabelValues(method).Add(float64(pairs))
	r.compute.WithLabelValues(method).Observe(took.Seconds())
}

// Gatherer exposes the registry, mainly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.reg }

// WriteFile writes all metrics to path atomically (temp file + rename).
func (r *Recorder) WriteFile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.reg)
}

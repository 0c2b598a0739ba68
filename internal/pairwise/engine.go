package pairwise

import (
	"sync"

	"distmat/internal/condensed"
	"distmat/internal/metric"
)

// Config controls the worker pool.
type Config struct {
	Threads   int // number of worker goroutines (>=1)
	BatchSize int // pairs per job; 0 picks a size from the pair count
}

// Engine maps a metric over all sequence pairs with a fixed pool size.
type Engine struct{ cfg Config }

// New returns an Engine. Threads < 1 is treated as 1.
func New(c Config) *Engine {
	if c.Threads < 1 {
		c.Threads = 1
	}
	if c.BatchSize < 0 {
		c.BatchSize = 0
	}
	return &Engine{cfg: c}
}

// Threads reports the pool size.
func (e *Engine) Threads() int { return e.cfg.Threads }

// batch picks the job size for total pairs: roughly eight jobs per worker,
// never fewer than one pair.
func (e *Engine) batch(total int) int {
	if e.cfg.BatchSize > 0 {
		return e.cfg.BatchSize
	}
	b := total / (e.cfg.Threads * 8)
	if b < 1 {
		b = 1
	}
	return b
}

// Compute returns f(seqs[i], seqs[j]) for every i<j in canonical order.
// Fewer than two sequences yield an empty, non-nil slice.
func Compute[T metric.Score](e *Engine, seqs [][]byte, f metric.Func[T]) []T {
	pairs := condensed.Pairs(len(seqs))
	out := make([]T, len(pairs))
	if len(pairs) == 0 {
		return out
	}

	if e.cfg.Threads == 1 {
		for k, p := range pairs {
			out[k] = f(seqs[p.I], seqs[p.J])
		}
		return out
	}

	type job struct{ lo, hi int }
	jobs := make(chan job, e.cfg.Threads*2)

	var wg sync.WaitGroup
	wg.Add(e.cfg.Threads)
	for w := 0; w < e.cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				for k := j.lo; k < j.hi; k++ {
					p := pairs[k]
					out[k] = f(seqs[p.I], seqs[p.J])
				}
			}
		}()
	}

	step := e.batch(len(pairs))
	for lo := 0; lo < len(pairs); lo += step {
		jobs <- job{lo: lo, hi: min(lo+step, len(pairs))}
	}
	close(jobs)
	wg.Wait()

	return out
}

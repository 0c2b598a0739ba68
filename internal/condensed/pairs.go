package condensed

import (
	"fmt"
	"math"
)

// Pair is an unordered index pair with I < J.
type Pair struct {
	I, J int
}

// Len returns the condensed length for n items, n(n-1)/2.
func Len(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// Pairs enumerates all i<j pairs for n items in canonical order.
func Pairs(n int) []Pair {
	out := make([]Pair, 0, Len(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Pair{I: i, J: j})
		}
	}
	return out
}

// tolerance bounds the rounding error accepted when inverting L = N(N-1)/2.
const tolerance = 1e-6

// Size recovers N from a condensed length L using N = (1+sqrt(1+8L))/2.
func Size(l int) (int, error) {
	if l < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNotTriangular, l)
	}
	t := (1 + math.Sqrt(float64(1+8*l))) / 2
	if math.Abs(t-math.Round(t)) >= tolerance {
		return 0, fmt.Errorf("%w: %d", ErrNotTriangular, l)
	}
	return int(math.Round(t)), nil
}

// Index returns the condensed offset of (i,j) for n items. Order of i and j
// does not matter. Diagonal or out-of-range indices panic.
func Index(i, j, n int) int {
	if i == j || i < 0 || j < 0 || i >= n || j >= n {
		panic(fmt.Sprintf("condensed: invalid pair (%d,%d) for n=%d", i, j, n))
	}
	if i > j {
		i, j = j, i
	}
	// rows 0..i-1 contribute (n-1)+(n-2)+…+(n-i) entries
	return i*n - i*(i+1)/2 + (j - i - 1)
}

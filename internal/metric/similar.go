package metric

// similarPairs lists the residue pairs Similarity treats as matches.
// Each pair is symmetric.
var similarPairs = [...]string{
	"RK", "DE", "ND", "QE", "QN", "ST", "SA", "VI", "IL", "LM", "FY",
}

var similar [256][256]bool

func init() {
	for _, p := range similarPairs {
		similar[p[0]][p[1]] = true
		similar[p[1]][p[0]] = true
	}
}

// Similar reports whether a and b are a distinct but similar residue pair.
// The relation is symmetric and case-sensitive (upper-case one-letter codes).
func Similar(a, b byte) bool { return similar[a][b] }

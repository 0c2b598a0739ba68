package metric

// Gap is the alignment gap symbol.
const Gap = '-'

// Score is the set of result types a metric may produce.
type Score interface {
	~int | ~float64
}

// Func scores one pair of aligned sequences. Residues are single-byte
// codes; multi-byte UTF-8 input is compared byte by byte.
type Func[T Score] func(a, b []byte) T

// Hamming counts positions where a and b differ. Gaps are ordinary
// characters here. Comparison stops at the shorter sequence.
func Hamming(a, b []byte) int {
	n := min(len(a), len(b))
	d := 0
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

// Identity returns the gap-compressed percent identity of a and b (0..100).
// An alignment with no scorable column yields 0.
func Identity(a, b []byte) float64 {
	return gapCompressed(a, b, nil)
}

// Similarity is Identity with biochemically similar residue pairs
// (see Similar) also counted as matches.
func Similarity(a, b []byte) float64 {
	return gapCompressed(a, b, &similar)
}

// gapCompressed scans the aligned columns once. When sim is non-nil,
// distinct residues listed in it count as matched.
func gapCompressed(a, b []byte, sim *[256][256]bool) float64 {
	n := min(len(a), len(b))
	var matched, total int
	indel := false
	for i := 0; i < n; i++ {
		x, y := a[i], b[i]
		switch {
		case x == Gap && y == Gap:
			// empty column; indel state carries over
		case x == Gap || y == Gap:
			if !indel {
				indel = true
				total++
			}
		case x == y || (sim != nil && sim[x][y]):
			matched++
			total++
			indel = false
		default:
			total++
			indel = false
		}
	}
	if total == 0 {
		return 0
	}
	return float64(matched) * 100 / float64(total)
}

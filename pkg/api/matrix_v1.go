package api

// MatrixV1 is the stable JSON schema for a distance matrix.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MatrixV1 struct {
	Method   string      `json:"method"` // "hamming" | "identity" | "similarity"
	Diagonal float64     `json:"diagonal"`
	Names    []string    `json:"names"`
	Matrix   [][]float64 `json:"matrix"`
	Source   string      `json:"source,omitempty"`
	Version  string      `json:"version,omitempty"`
}

// PairV1 is one line of the "pairs" JSONL output.
type PairV1 struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Score float64 `json:"score"`
}

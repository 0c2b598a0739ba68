package condensed

import "errors"

// ErrNotTriangular means a condensed vector length is not N(N-1)/2 for any N.
// It indicates mismatched data from the caller and cannot be repaired.
var ErrNotTriangular = errors.New("condensed: length is not a triangular number")

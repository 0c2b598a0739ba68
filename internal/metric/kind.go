package metric

import (
	"errors"
	"fmt"
	"strings"
)

// Kind selects one of the supported metrics.
type Kind int

const (
	KindIdentity Kind = iota
	KindSimilarity
	KindHamming
)

// ErrUnknownKind is returned by ParseKind for an unrecognised name.
var ErrUnknownKind = errors.New("metric: unknown method")

var kindNames = map[Kind]string{
	KindIdentity:   "identity",
	KindSimilarity: "similarity",
	KindHamming:    "hamming",
}

// Names lists the accepted method names in help order.
func Names() []string { return []string{"hamming", "identity", "similarity"} }

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a method name to a Kind. The empty string selects identity.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "identity":
		return KindIdentity, nil
	case "similarity":
		return KindSimilarity, nil
	case "hamming":
		return KindHamming, nil
	}
	return 0, fmt.Errorf("%w %q (want %s)", ErrUnknownKind, s, strings.Join(Names(), " | "))
}

// Integral reports whether the metric produces counts rather than percentages.
func (k Kind) Integral() bool { return k == KindHamming }

// DiagFill is the value placed on the matrix diagonal for this metric:
// zero distance for hamming, full identity for the percentage metrics.
func (k Kind) DiagFill() float64 {
	if k == KindHamming {
		return 0
	}
	return 100
}

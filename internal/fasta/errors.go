package fasta

import (
	"errors"
	"fmt"
)

var (
	// ErrIO marks failures to open or read an input.
	ErrIO = errors.New("fasta: io error")
	// ErrFormat marks input that is not FASTA (e.g. sequence before any header).
	ErrFormat = errors.New("fasta: malformed input")
)

// Error carries the offending path and the error kind (ErrIO or ErrFormat).
// errors.Is matches both the kind and the underlying cause.
type Error struct {
	Path string
	Kind error
	Line int // 0 when not tied to a line
	Err  error
}

func (e *Error) Error() string {
	name := e.Path
	if name == "-" {
		name = "<stdin>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", name, e.Line, e.Err)
	}
	return fmt.Sprintf("couldn't read %s: %v", name, e.Err)
}

func (e *Error) Unwrap() []error { return []error{e.Kind, e.Err} }

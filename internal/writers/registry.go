package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"
)

// Writer renders a Table in one output format.
type Writer func(w io.Writer, t *Table) error

// formats maps format name to handler. Register adds to it (last wins).
var formats = map[string]Writer{}

func init() {
	Register("tsv", WriteTSV)
	Register("json", WriteJSON)
	Register("pairs", WritePairs)
}

// Register installs fn under format.
func Register(format string, fn Writer) { formats[format] = fn }

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(formats))
	for k := range formats {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, t *Table) error {
	fn, ok := formats[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, t)
}

// IsBrokenPipe reports whether err is a broken or closed pipe, as when a
// downstream `head` exits early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

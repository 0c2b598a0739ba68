// Package jsonlutil streams values as JSON Lines from a background goroutine.
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// bwPool shares 64 KiB buffered writers between streams.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Stream encodes values of type T, one per line, in the order they are sent.
type Stream[T any] struct {
	in   chan T
	done chan error
}

// Start launches the encoder goroutine writing to out. convert maps a value
// to its wire form. Errors matched by ignore (e.g. broken pipe) are dropped.
func Start[T any](out io.Writer, bufSize int, convert func(T) any, ignore func(error) bool) *Stream[T] {
	if bufSize <= 0 {
		bufSize = 64
	}
	s := &Stream[T]{in: make(chan T, bufSize), done: make(chan error, 1)}

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		enc.SetEscapeHTML(false)

		var err error
		for v := range s.in {
			if err != nil {
				continue // drain so senders never block
			}
			err = enc.Encode(convert(v))
		}
		if err == nil {
			err = bw.Flush()
		}
		if err != nil && ignore != nil && ignore(err) {
			err = nil
		}
		s.done <- err
	}()
	return s
}

// Send queues v for encoding.
func (s *Stream[T]) Send(v T) { s.in <- v }

// Close flushes the stream and returns the first encode or write error.
func (s *Stream[T]) Close() error {
	close(s.in)
	return <-s.done
}

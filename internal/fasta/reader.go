package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
)

// Record is one FASTA entry.
type Record struct {
	ID     string // first whitespace-delimited word of the header
	Header string // full header line without '>' (trimmed)
	Seq    []byte
}

// maxLine allows very long single-line alignments (64 MiB).
const maxLine = 64 * 1024 * 1024

// ReadFile reads every record from path ("-" for stdin, gzip detected).
func ReadFile(path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, &Error{Path: path, Kind: ErrIO, Err: err}
	}
	defer rc.Close()

	recs, err := Read(rc)
	if err != nil {
		var fe *Error
		if errors.As(err, &fe) {
			fe.Path = path
			return nil, fe
		}
		return nil, &Error{Path: path, Kind: ErrIO, Err: err}
	}
	return recs, nil
}

// Read parses FASTA from r. Sequence lines are concatenated with all
// whitespace removed; residue case is preserved. Blank lines are ignored.
func Read(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		recs   []Record
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			hdr := string(bytes.TrimSpace(line[1:]))
			recs = append(recs, Record{ID: headerID(hdr), Header: hdr, Seq: []byte{}})
			continue
		}
		if len(recs) == 0 {
			return nil, &Error{Kind: ErrFormat, Line: lineNo, Err: errors.New("sequence data before first '>' header")}
		}
		last := &recs[len(recs)-1]
		last.Seq = appendResidues(last.Seq, line)
	}
	if err := sc.Err(); err != nil {
		return nil, &Error{Kind: ErrIO, Err: err}
	}
	return recs, nil
}

// headerID returns the first word of a header.
func headerID(hdr string) string {
	f := strings.Fields(hdr)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}

// appendResidues appends line to dst, dropping interior whitespace.
func appendResidues(dst, line []byte) []byte {
	for _, c := range line {
		switch c {
		case ' ', '\t', '\r':
			continue
		}
		dst = append(dst, c)
	}
	return dst
}

// IDs returns the record IDs in order.
func IDs(recs []Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

// Seqs returns the record sequences in order. The slices are shared.
func Seqs(recs []Record) [][]byte {
	out := make([][]byte, len(recs))
	for i, r := range recs {
		out[i] = r.Seq
	}
	return out
}

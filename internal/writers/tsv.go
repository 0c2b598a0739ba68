package writers

import (
	"bufio"
	"io"
	"strings"
)

// WriteTSV writes the tab-separated matrix:
//
//	# <invocation>
//	#
//	seqs	<name1>	<name2>	...
//	<name1>	<v11>	<v12>	...
func WriteTSV(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	_, _ = bw.WriteString("# " + t.Invocation + "\n")
	_, _ = bw.WriteString("#\n")
	_, _ = bw.WriteString("seqs")
	for _, n := range t.Names {
		_ = bw.WriteByte('\t')
		_, _ = bw.WriteString(n)
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	n := t.N()
	cells := make([]string, n)
	for i, name := range t.Names {
		for j := 0; j < n; j++ {
			cells[j] = t.Text(i, j)
		}
		_, _ = bw.WriteString(name)
		if n > 0 {
			_ = bw.WriteByte('\t')
			_, _ = bw.WriteString(strings.Join(cells, "\t"))
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// TestImportBoundaries keeps the scoring core free of I/O and CLI layers.
func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Skipf("go list unavailable: %v", err)
	}
	dec := json.NewDecoder(&out)

	outer := []string{
		"distmat/internal/app", "distmat/internal/cli", "distmat/internal/writers",
		"distmat/internal/fasta", "distmat/internal/runmetrics", "distmat/cmd/",
	}
	bans := map[string][]string{
		"distmat/internal/metric":    append([]string{"distmat/internal/pairwise", "distmat/internal/condensed"}, outer...),
		"distmat/internal/condensed": append([]string{"distmat/internal/pairwise", "distmat/internal/metric"}, outer...),
		"distmat/internal/pairwise":  outer,
		"distmat/internal/writers":   {"distmat/internal/app", "distmat/internal/cli", "distmat/internal/pairwise", "distmat/cmd/"},
		"distmat/internal/fasta":     {"distmat/internal/app", "distmat/internal/cli", "distmat/internal/writers", "distmat/cmd/"},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "distmat/") {
			continue
		}
		forbidden, ok := bans[p.ImportPath]
		if !ok {
			continue
		}
		for _, dep := range p.Imports {
			for _, ban := range forbidden {
				if strings.HasPrefix(dep, ban) {
					violations = append(violations, p.ImportPath+" → "+dep)
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}

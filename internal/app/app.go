package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"distmat/internal/align"
	"distmat/internal/cli"
	"distmat/internal/cmdutil"
	"distmat/internal/condensed"
	"distmat/internal/fasta"
	"distmat/internal/metric"
	"distmat/internal/pairwise"
	"distmat/internal/runmetrics"
	"distmat/internal/runutil"
	"distmat/internal/version"
	"distmat/internal/writers"
)

const name = "distmat"

// Exit codes.
const (
	exitOK       = 0
	exitUsage    = 2
	exitFailure  = 3
	exitCanceled = 130
)

// RunContext runs distmat with argv (without the program name) and returns
// the process exit code. Cancellation of parent is honoured until the
// pairwise computation starts; after that the run completes.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		code := exitOK
		if !errors.Is(err, flag.ErrHelp) {
			_, _ = fmt.Fprintln(stderr, err)
			code = exitUsage
		}
		return printUsage(fs, stdout, stderr, code)
	}
	if opts.Version {
		if _, err := fmt.Fprintf(stdout, "%s version %s\n", name, version.Version); err != nil && !writers.IsBrokenPipe(err) {
			return exitFailure
		}
		return exitOK
	}
	return execute(parent, opts, argv, stdout, stderr)
}

// execute runs one distance-matrix job for already parsed options.
func execute(parent context.Context, opts cli.Options, argv []string, stdout, stderr io.Writer) int {
	kind, err := metric.ParseKind(opts.Method)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return exitUsage
	}
	var rec *runmetrics.Recorder
	if opts.MetricsFile != "" {
		rec = runmetrics.New()
	}

	threads := runutil.EffectiveThreads(opts.Threads)
	cmdutil.Infof(stderr, opts.Quiet, "nthread: %d", threads)

	cmdutil.Infof(stderr, opts.Quiet, "Using input file: %s", opts.Input)
	recs, err := fasta.ReadFile(opts.Input)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return exitFailure
	}
	ids, seqs := fasta.IDs(recs), fasta.Seqs(recs)
	rec.Input(len(seqs), align.Width(seqs))

	if err := align.Check(ids, seqs); err != nil {
		if opts.Strict {
			cmdutil.Errorf(stderr, "%v", err)
			return exitFailure
		}
		cmdutil.Warnf(stderr, opts.Quiet, "%v; scores use the shorter length of each pair", err)
	}

	if parent.Err() != nil {
		return exitCanceled
	}

	cmdutil.Infof(stderr, opts.Quiet, "Distance method: %s", kind)
	eng := pairwise.New(pairwise.Config{Threads: threads})
	start := time.Now()
	res := pairwise.Run(eng, kind, seqs)
	rec.Computed(kind.String(), eng.Threads(), res.Len(), time.Since(start))

	tbl, err := assemble(res, ids)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return exitFailure
	}
	tbl.Invocation = strings.Join(append([]string{name}, argv...), " ")
	tbl.Source = opts.Input

	cmdutil.Infof(stderr, opts.Quiet, "Writing output file: %s", opts.Outfile)
	if err := writeOutput(opts.Outfile, opts.Format, stdout, tbl); err != nil {
		if writers.IsBrokenPipe(err) {
			return exitOK
		}
		cmdutil.Errorf(stderr, "%v", err)
		return exitFailure
	}

	if opts.MetricsFile != "" {
		if err := rec.WriteFile(opts.MetricsFile); err != nil {
			cmdutil.Errorf(stderr, "write metrics: %v", err)
			return exitFailure
		}
	}
	return exitOK
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// assemble turns a condensed result into a labelled matrix.
func assemble(res pairwise.Result, ids []string) (*writers.Table, error) {
	tbl := &writers.Table{
		Names:    ids,
		Method:   res.Kind.String(),
		Diagonal: res.Kind.DiagFill(),
	}
	var err error
	if res.Kind.Integral() {
		tbl.Ints, err = condensed.Assemble(res.Ints, int(res.Kind.DiagFill()))
	} else {
		tbl.Floats, err = condensed.Assemble(res.Floats, res.Kind.DiagFill())
	}
	if err != nil {
		return nil, fmt.Errorf("assemble %d×%d matrix: %w", len(ids), len(ids), err)
	}
	return tbl, nil
}

// writeOutput renders tbl to path, or to stdout when path is "-".
func writeOutput(path, format string, stdout io.Writer, tbl *writers.Table) error {
	if path == "-" {
		bw := bufio.NewWriter(stdout)
		if err := writers.Write(format, bw, tbl); err != nil {
			return err
		}
		return bw.Flush()
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("couldn't create %s: %w", path, err)
	}
	if err := writers.Write(format, fh, tbl); err != nil {
		_ = fh.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func printUsage(fs *flag.FlagSet, stdout, stderr io.Writer, code int) int {
	outw := bufio.NewWriter(stdout)
	fs.SetOutput(outw)
	fs.Usage()
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitFailure
	}
	return code
}

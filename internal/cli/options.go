package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"distmat/internal/metric"
	"distmat/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Input string

	// Scoring
	Method string
	Strict bool

	// Performance
	Threads int // 0 = all physical cores

	// Output
	Outfile     string // "-" = stdout
	Format      string // tsv | json | pairs
	MetricsFile string

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a ContinueOnError FlagSet with the distmat usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() { usage(fs.Output(), name, fs) }
	return fs
}

func usage(out io.Writer, name string, fs *flag.FlagSet) {
	def := func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}
	fmt.Fprintf(out, "%s – pairwise distance matrix for aligned sequences\n\n", name)
	fmt.Fprintln(out, "License: MIT")
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)

	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s [options] alignment.fa[.gz]\n", name)
	fmt.Fprintf(out, "  %s [options] -m hamming -o dist.tsv - < alignment.fa\n", name)

	fmt.Fprintln(out, "\nInput:")
	fmt.Fprintln(out, "  -i, --input file            Aligned FASTA (or positional; '-' for STDIN) [*]")

	fmt.Fprintln(out, "\nScoring:")
	fmt.Fprintf(out, "  -m, --method string         %s [%s]\n", strings.Join(metric.Names(), " | "), def("method"))
	fmt.Fprintf(out, "      --strict                Fail when sequences differ in length [%s]\n", def("strict"))

	fmt.Fprintln(out, "\nPerformance:")
	fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all physical cores) [%s]\n", def("threads"))

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintf(out, "  -o, --outfile file          Output path ('-'=STDOUT) [%s]\n", def("outfile"))
	fmt.Fprintf(out, "  -f, --format string         Output: tsv | json | pairs [%s]\n", def("format"))
	fmt.Fprintln(out, "      --metrics-file file     Write Prometheus textfile metrics")

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintf(out, "  -q, --quiet                 Suppress progress messages [%s]\n", def("quiet"))
	fmt.Fprintln(out, "  -v, --version               Print version and exit")
	fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
}

// ParseArgs registers and parses all flags, returns an Options struct.
// It returns flag.ErrHelp when help was requested.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.StringVar(&opt.Input, "input", "", "aligned FASTA file or '-'")
	fs.StringVar(&opt.Input, "i", "", "alias of --input")

	fs.StringVar(&opt.Method, "method", "identity", "hamming | identity | similarity")
	fs.StringVar(&opt.Method, "m", "identity", "alias of --method")
	fs.BoolVar(&opt.Strict, "strict", false, "fail when sequences differ in length")

	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0=all physical cores)")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")
	fs.IntVar(&opt.Threads, "nthread", 0, "alias of --threads")

	fs.StringVar(&opt.Outfile, "outfile", "-", "output path ('-'=stdout)")
	fs.StringVar(&opt.Outfile, "o", "-", "alias of --outfile")
	fs.StringVar(&opt.Format, "format", "tsv", "output: tsv | json | pairs")
	fs.StringVar(&opt.Format, "f", "tsv", "alias of --format")
	fs.StringVar(&opt.MetricsFile, "metrics-file", "", "Prometheus textfile output")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress messages")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")

	flagArgs, posArgs := splitArgs(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}

	switch {
	case len(posArgs) > 1:
		return opt, fmt.Errorf("expected one input file, got %d: %s", len(posArgs), strings.Join(posArgs, " "))
	case len(posArgs) == 1 && opt.Input != "":
		return opt, errors.New("--input conflicts with a positional input file")
	case len(posArgs) == 1:
		opt.Input = posArgs[0]
	}
	return opt, Validate(&opt)
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	if o.Input == "" {
		return errors.New("an input alignment is required")
	}
	if _, err := metric.ParseKind(o.Method); err != nil {
		return err
	}
	switch o.Format {
	case "tsv", "json", "pairs":
	default:
		return fmt.Errorf("invalid --format %q", o.Format)
	}
	if o.Outfile == "" {
		o.Outfile = "-"
	}
	return nil
}

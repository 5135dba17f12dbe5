// internal/pqrcli/options.go
package pqrcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"strucsum-core/pqr"

	"strucsum/internal/clibase"
	"strucsum/internal/cliutil"
	"strucsum/internal/summary"
)

// Options holds all flags and inputs for the net-charge summary tool.
type Options struct {
	clibase.Common

	Inputs        []string // files, directories, or glob results
	Recursive     bool
	Layout        pqr.Layout
	WarnThreshold float64
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "net charge per structure file", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] file.pqr dir/ 'models/*.pqr.gz' ...\n", name)
		_, _ = fmt.Fprintln(out, "  inputs may be files, directories, globs, or '-' for STDIN")

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintf(out, "  -r, --recursive            Recurse into directories [%s]\n", def("recursive"))
		_, _ = fmt.Fprintf(out, "      --layout string        Charge column layout: fixed | tolerant [%s]\n", def("layout"))
		_, _ = fmt.Fprintf(out, "      --warn-threshold float Absolute net charge above which to warn [%s]\n", def("warn-threshold"))
	})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments (the inputs) may be interleaved with flags.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool
	var layout string

	noHeader := clibase.Register(fs, &o.Common, summary.FormatCSV, 3)

	fs.BoolVar(&o.Recursive, "recursive", false, "recurse into directories [false]")
	fs.BoolVar(&o.Recursive, "r", false, "alias of --recursive")
	fs.StringVar(&layout, "layout", "tolerant", "charge column layout: fixed | tolerant [tolerant]")
	fs.Float64Var(&o.WarnThreshold, "warn-threshold", 1000.0, "absolute net charge above which to warn [1000]")
	fs.BoolVar(&help, "h", false, "show this help [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}

	if err := clibase.AfterParse(&o.Common, noHeader,
		summary.FormatCSV, summary.FormatTSV, summary.FormatLegacy); err != nil {
		return o, err
	}
	var err error
	if o.Layout, err = pqr.ParseLayout(layout); err != nil {
		return o, err
	}
	if o.WarnThreshold < 0 {
		return o, errors.New("--warn-threshold must be >= 0")
	}
	if o.Inputs, err = cliutil.ExpandPositionals(posArgs); err != nil {
		return o, err
	}
	if len(o.Inputs) == 0 {
		return o, errors.New("at least one input file, directory, or glob is required")
	}
	return o, nil
}

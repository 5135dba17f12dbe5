// internal/pqrapp/app.go
package pqrapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"strucsum-core/pqr"

	"strucsum/internal/cmdutil"
	"strucsum/internal/pqrcli"
	"strucsum/internal/summary"
	"strucsum/internal/version"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := pqrcli.NewFlagSet("pqrsum")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 0)
	}

	opts, err := pqrcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		cmdutil.Errorf(stderr, "%v", err)
		return flushCode(outw, stderr, 2)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "pqrsum version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	return flushCode(outw, stderr, run(parent, opts, outw, stderr))
}

func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); cmdutil.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return 4
	}
	return code
}

func run(ctx context.Context, opts pqrcli.Options, outw io.Writer, stderr io.Writer) int {
	files, err := collectInputs(opts.Inputs, opts.Recursive)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return 2
	}
	if len(files) == 0 {
		cmdutil.Errorf(stderr, "no input files found")
		return 1
	}

	var rows []summary.FileCharge
	var grandAtoms int
	var grandCharge float64
	for _, path := range files {
		if ctx.Err() != nil {
			return 130
		}
		s, err := pqr.SumFile(path, opts.Layout)
		if err != nil {
			cmdutil.Skipf(stderr, "%v", err)
			continue
		}
		if abs(s.NetCharge) > opts.WarnThreshold {
			cmdutil.Warnf(stderr, opts.Quiet,
				"suspicious net charge (%g) in %s; this often means the wrong column layout",
				s.NetCharge, filepath.Base(path))
		}
		rows = append(rows, summary.FileCharge{
			Name:      filepath.Base(path),
			Atoms:     s.Atoms,
			NetCharge: s.NetCharge,
		})
		grandAtoms += s.Atoms
		grandCharge += s.NetCharge
	}
	if len(rows) == 0 {
		cmdutil.Errorf(stderr, "no charges summed from %d input file(s)", len(files))
		return 3
	}

	out := outw
	var fh *os.File
	if opts.Out != "" && opts.Out != "-" {
		if fh, err = summary.Create(opts.Out); err != nil {
			cmdutil.Errorf(stderr, "%v", err)
			return 4
		}
		out = fh
	}
	werr := writeRows(out, rows, opts)
	if fh != nil {
		if cerr := fh.Close(); werr == nil {
			werr = cerr
		}
	}
	if cmdutil.IsBrokenPipe(werr) {
		return 0
	}
	if werr != nil {
		cmdutil.Errorf(stderr, "%v", werr)
		return 4
	}

	// Grand total goes to stderr so it never pollutes the table.
	v := strconv.FormatFloat(grandCharge, 'f', opts.Digits, 64)
	_, _ = fmt.Fprintf(stderr, "TOTAL\tatoms=%d\tnet_charge=%s\n", grandAtoms, v)
	return 0
}

func writeRows(w io.Writer, rows []summary.FileCharge, opts pqrcli.Options) error {
	if opts.Output == summary.FormatLegacy {
		entries := make([]summary.NetCharge, 0, len(rows))
		for _, r := range rows {
			entries = append(entries, summary.NetCharge{Name: r.Name, Value: r.NetCharge})
		}
		return summary.WriteNetCharges(w, entries, opts.Digits)
	}
	return summary.WriteChargeTable(w, rows, summary.Options{
		Format: opts.Output,
		Header: opts.Header,
		Digits: opts.Digits,
	})
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func isPQRName(name string) bool {
	return strings.HasSuffix(name, ".pqr") || strings.HasSuffix(name, ".pqr.gz")
}

// collectInputs resolves files, directories, and already-expanded globs
// into a de-duplicated file list, preserving first-seen order. Directories
// contribute their .pqr/.pqr.gz members sorted; explicit files are taken
// as given.
func collectInputs(inputs []string, recursive bool) ([]string, error) {
	var files []string
	for _, item := range inputs {
		if item == "-" {
			files = append(files, item)
			continue
		}
		info, err := os.Stat(item)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, item)
			continue
		}
		var found []string
		if recursive {
			err = filepath.WalkDir(item, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && isPQRName(d.Name()) {
					found = append(found, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		} else {
			entries, err := os.ReadDir(item)
			if err != nil {
				return nil, err
			}
			for _, e := range entries {
				if !e.IsDir() && isPQRName(e.Name()) {
					found = append(found, filepath.Join(item, e.Name()))
				}
			}
		}
		sort.Strings(found)
		files = append(files, found...)
	}

	seen := make(map[string]bool, len(files))
	unique := files[:0]
	for _, f := range files {
		if !seen[f] {
			seen[f] = true
			unique = append(unique, f)
		}
	}
	return unique, nil
}

// internal/labelapp/app.go
package labelapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"strucsum-core/resolve"
	"strucsum-core/species"

	"strucsum/internal/cmdutil"
	"strucsum/internal/labelcli"
	"strucsum/internal/summary"
	"strucsum/internal/version"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := labelcli.NewFlagSet("chargelabel")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return 0
	}

	opts, err := labelcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		cmdutil.Errorf(stderr, "%v", err)
		fs.SetOutput(outw)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "chargelabel version %s\n", version.Version)
		return 0
	}

	return run(opts, outw, stderr)
}

func run(opts labelcli.Options, out, stderr io.Writer) int {
	tbl, err := species.Load(opts.AccessionMap, opts.SpeciesKey)
	if err != nil {
		cmdutil.Errorf(stderr, "loading lookups: %v", err)
		return 2
	}

	fh, err := os.Open(opts.Charges)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return 2
	}
	entries, err := summary.ReadNetCharges(fh)
	_ = fh.Close()
	if err != nil {
		cmdutil.Errorf(stderr, "%s: %v", opts.Charges, err)
		return 3
	}

	// Rows keep the charge table's own order; it is already deterministic
	// for a given input file.
	rows := make([]summary.LabeledCharge, 0, len(entries))
	byStatus := make(map[string]int)
	for _, e := range entries {
		acc := resolve.Key(e.Name)
		row := summary.LabeledCharge{
			Name:      e.Name,
			NetCharge: e.Value,
			Accession: acc,
			Abbr:      tbl.Abbr(acc),
			Status:    tbl.Status(acc),
		}
		rows = append(rows, row)
		byStatus[row.Status]++
	}

	dst, err := summary.Create(opts.Out)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return 4
	}
	werr := summary.WriteLabeledTable(dst, rows, summary.Options{
		Format: opts.Output,
		Header: opts.Header,
		Digits: opts.Digits,
	})
	if cerr := dst.Close(); werr == nil {
		werr = cerr
	}
	if cmdutil.IsBrokenPipe(werr) {
		return 0
	}
	if werr != nil {
		cmdutil.Errorf(stderr, "writing %s: %v", opts.Out, werr)
		return 4
	}

	if byStatus[species.Unknown] == len(rows) {
		cmdutil.Warnf(stderr, opts.Quiet,
			"no rows mapped to a known status; check the key table and mapping file")
	}
	statuses := make([]string, 0, len(byStatus))
	for s := range byStatus {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)
	for _, s := range statuses {
		_, _ = fmt.Fprintf(stderr, "%s\t%d\n", s, byStatus[s])
	}

	_, _ = fmt.Fprintf(out, "wrote %s (%d rows)\n", opts.Out, len(rows))
	return 0
}

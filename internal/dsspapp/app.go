// internal/dsspapp/app.go
package dsspapp

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
	"strings"

	"strucsum-core/dssp"
	"strucsum-core/resolve"
	"strucsum-core/species"

	"strucsum/internal/cmdutil"
	"strucsum/internal/dsspcli"
	"strucsum/internal/mkdssp"
	"strucsum/internal/summary"
	"strucsum/internal/version"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := dsspcli.NewFlagSet("dsspsum")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return 0
	}

	opts, err := dsspcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "dsspsum version %s\n", version.Version)
		return 0
	}

	return run(parent, opts, mkdssp.Runner{}, outw, stderr)
}

// run executes the pipeline with an injectable assigner so tests can
// substitute the external tool.
func run(ctx context.Context, opts dsspcli.Options, assigner mkdssp.Assigner, out, stderr io.Writer) int {
	tbl, err := species.Load(opts.AccessionMap, opts.SpeciesKey)
	if err != nil {
		cmdutil.Errorf(stderr, "loading lookups: %v", err)
		return 2
	}

	paths, err := listModels(opts.PDBDir)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return 2
	}
	if len(paths) == 0 {
		cmdutil.Errorf(stderr, "no .pdb files found in %s", opts.PDBDir)
		return 1
	}

	cleanDir := filepath.Join(opts.DSSPDir, "clean")
	if err := os.MkdirAll(cleanDir, 0o755); err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return 2
	}

	groups := resolve.Group(paths)
	var rows []summary.StructureRow
	for _, acc := range resolve.Accessions(groups) {
		sel := resolve.Select(groups[acc])
		base := filepath.Base(sel.Path)
		stem := strings.TrimSuffix(base, ".pdb")
		cleanPath := filepath.Join(cleanDir, stem+".clean.pdb")
		dsspPath := filepath.Join(opts.DSSPDir, stem+".dssp")

		if err := mkdssp.Clean(sel.Path, cleanPath); err != nil {
			cmdutil.Skipf(stderr, "%s: clean failed: %v", base, err)
			continue
		}
		// An existing assignment is reused; delete the .dssp file to force
		// a re-run.
		if _, err := os.Stat(dsspPath); err != nil {
			if err := assigner.Assign(ctx, cleanPath, dsspPath); err != nil {
				if ctx.Err() != nil {
					return 130
				}
				cmdutil.Skipf(stderr, "%s: %v", base, err)
				continue
			}
		}
		m, err := dssp.ParseFile(dsspPath)
		if err != nil {
			cmdutil.Skipf(stderr, "%s: %v", base, err)
			continue
		}
		rows = append(rows, summary.StructureRow{
			Accession: acc,
			Abbr:      tbl.Abbr(acc),
			Status:    tbl.Status(acc),
			Source:    sel.Source(),
			Metrics:   m,
		})
	}
	if len(rows) == 0 {
		cmdutil.Errorf(stderr, "no summaries produced from %d model file(s)", len(paths))
		return 3
	}

	fh, err := summary.Create(opts.Out)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return 4
	}
	werr := summary.WriteStructureTable(fh, rows, summary.Options{
		Format: opts.Output,
		Header: opts.Header,
		Digits: opts.Digits,
	})
	if cerr := fh.Close(); werr == nil {
		werr = cerr
	}
	if cmdutil.IsBrokenPipe(werr) {
		return 0
	}
	if werr != nil {
		cmdutil.Errorf(stderr, "writing %s: %v", opts.Out, werr)
		return 4
	}

	_, _ = fmt.Fprintf(out, "wrote %s (%d of %d entities)\n", opts.Out, len(rows), len(groups))
	return 0
}

// listModels returns the .pdb files directly under dir.
func listModels(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".pdb") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

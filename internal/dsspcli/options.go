// internal/dsspcli/options.go
package dsspcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"strucsum/internal/clibase"
	"strucsum/internal/summary"
)

// Options holds all flags for the secondary-structure summary tool.
type Options struct {
	clibase.Common

	PDBDir       string
	DSSPDir      string
	SpeciesKey   string
	AccessionMap string
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "batch secondary-structure summary", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s --pdb-dir DIR --dssp-dir DIR --species-key KEY.csv --accession-map MAP.out --out SUMMARY.csv\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "      --pdb-dir string        Directory of structure models (.pdb) [*]")
		_, _ = fmt.Fprintln(out, "      --dssp-dir string       Working directory for cleaned models and assigner output [*]")
		_, _ = fmt.Fprintln(out, "      --species-key string    Key table with abbreviation and habitat columns [*]")
		_, _ = fmt.Fprintln(out, "      --accession-map string  Accession-to-abbreviation mapping file [*]")
	})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	noHeader := clibase.Register(fs, &o.Common, summary.FormatCSV, 4)

	fs.StringVar(&o.PDBDir, "pdb-dir", "", "directory of .pdb models [*]")
	fs.StringVar(&o.DSSPDir, "dssp-dir", "", "working directory for assigner output [*]")
	fs.StringVar(&o.SpeciesKey, "species-key", "", "species key table [*]")
	fs.StringVar(&o.AccessionMap, "accession-map", "", "accession-to-abbreviation map [*]")
	fs.BoolVar(&help, "h", false, "show this help [false]")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}

	if err := clibase.AfterParse(&o.Common, noHeader,
		summary.FormatCSV, summary.FormatTSV, summary.FormatJSON); err != nil {
		return o, err
	}
	switch {
	case o.PDBDir == "":
		return o, errors.New("--pdb-dir is required")
	case o.DSSPDir == "":
		return o, errors.New("--dssp-dir is required")
	case o.SpeciesKey == "":
		return o, errors.New("--species-key is required")
	case o.AccessionMap == "":
		return o, errors.New("--accession-map is required")
	case o.Out == "":
		return o, errors.New("--out is required")
	}
	return o, nil
}

// internal/labelcli/options.go
package labelcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"strucsum/internal/clibase"
	"strucsum/internal/summary"
)

// Options holds all flags for the charge-labeling tool.
type Options struct {
	clibase.Common

	Charges      string
	SpeciesKey   string
	AccessionMap string
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "label net charges with species and habitat", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s --charges net_charges.tsv --species-key KEY.csv --accession-map MAP.out --out labeled.tsv\n", name)

		_, _ = fmt.Fprintln(out, "\nInput:")
		_, _ = fmt.Fprintln(out, "      --charges string        Net-charge table (<file>\\tNetCharge=<v> lines) [*]")
		_, _ = fmt.Fprintln(out, "      --species-key string    Key table with abbreviation and habitat columns [*]")
		_, _ = fmt.Fprintln(out, "      --accession-map string  Accession-to-abbreviation mapping file [*]")
	})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	noHeader := clibase.Register(fs, &o.Common, summary.FormatTSV, 3)

	fs.StringVar(&o.Charges, "charges", "", "net-charge table [*]")
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
	case o.Charges == "":
		return o, errors.New("--charges is required")
	case o.SpeciesKey == "":
		return o, errors.New("--species-key is required")
	case o.AccessionMap == "":
		return o, errors.New("--accession-map is required")
	case o.Out == "":
		return o, errors.New("--out is required")
	}
	return o, nil
}

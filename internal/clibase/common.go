// internal/clibase/common.go
package clibase

import (
	"flag"
	"fmt"
)

// Common holds the CLI fields shared by every summary tool.
type Common struct {
	Out     string // output path; empty means stdout
	Output  string // per-tool format set, validated by the tool
	Digits  int    // fixed decimal places for float columns
	Header  bool
	Quiet   bool
	Version bool
}

// Register wires the shared flags onto fs and returns a pointer to the
// "no-header" bool; callers set Common.Header = !noHeader after parsing.
func Register(fs *flag.FlagSet, c *Common, defOutput string, defDigits int) *bool {
	fs.StringVar(&c.Out, "out", "", "output file (default stdout)")
	fs.StringVar(&c.Out, "o", "", "alias of --out")
	fs.StringVar(&c.Output, "output", defOutput, "output format ["+defOutput+"]")
	fs.IntVar(&c.Digits, "digits", defDigits, fmt.Sprintf("decimal places for numeric columns [%d]", defDigits))
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header row [false]")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	return &noHeader
}

// AfterParse finalizes the header toggle and runs shared validation.
func AfterParse(c *Common, noHeader *bool, formats ...string) error {
	c.Header = !*noHeader
	if c.Digits < 0 {
		return fmt.Errorf("--digits must be >= 0")
	}
	for _, f := range formats {
		if c.Output == f {
			return nil
		}
	}
	return fmt.Errorf("invalid --output %q", c.Output)
}

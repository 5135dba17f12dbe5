// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"strucsum/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs. extra prints the
// tool-specific sections; the shared output/misc blocks follow it.
func UsageCommon(fs *flag.FlagSet, name, oneLiner string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – %s\n", name, oneLiner)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --out string       Output file (default stdout)\n")
		fmt.Fprintf(out, "      --output string    Output format [%s]\n", def("output"))
		fmt.Fprintf(out, "      --digits int       Decimal places for numeric columns [%s]\n", def("digits"))
		fmt.Fprintf(out, "      --no-header        Suppress header row [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet            Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version          Print version and exit")
		fmt.Fprintln(out, "  -h, --help             Show this help and exit")
	}
}

// internal/summary/netcharge.go
package summary

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NetCharge is one record of the historical per-file charge table:
// <name>\tNetCharge=<value>. The charge-labeling pipeline consumes this
// format, so the charge-sum tool can still emit it.
type NetCharge struct {
	Name  string
	Value float64
}

// WriteNetCharges emits the legacy tab format, no header.
func WriteNetCharges(w io.Writer, entries []NetCharge, digits int) error {
	for _, e := range entries {
		v := strconv.FormatFloat(e.Value, 'f', digits, 64)
		if _, err := fmt.Fprintf(w, "%s\tNetCharge=%s\n", e.Name, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadNetCharges parses the legacy format. Malformed lines are skipped
// silently; a table with no usable rows at all is an error, distinct from
// a legitimately empty value set.
func ReadNetCharges(r io.Reader) ([]NetCharge, error) {
	var entries []NetCharge
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		name, tok, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		val, ok := strings.CutPrefix(tok, "NetCharge=")
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			continue
		}
		entries = append(entries, NetCharge{Name: name, Value: v})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no valid net-charge rows")
	}
	return entries, nil
}

// internal/summary/table.go
package summary

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Output formats shared by the entry points.
const (
	FormatCSV    = "csv"
	FormatTSV    = "tsv"
	FormatJSON   = "json"
	FormatLegacy = "legacy"
)

// Options controls delimited serialization.
type Options struct {
	Format string
	Header bool
	Digits int // fixed decimal places for float fields
}

func (o Options) sep() string {
	if o.Format == FormatTSV {
		return "\t"
	}
	return ","
}

func (o Options) float(v float64) string {
	return strconv.FormatFloat(v, 'f', o.Digits, 64)
}

// structureCols is the stable column order of the structure summary;
// metrics first, then the joined labels, matching the historical output.
var structureCols = []string{
	"n_total", "n_helix", "n_sheet", "n_coil",
	"frac_helix", "frac_sheet", "frac_coil", "mean_asa",
	"accession", "abbr", "status", "source",
}

var labeledCols = []string{"name", "net_charge", "accession", "abbr", "status"}

// Create opens path for writing, creating intermediate directories.
func Create(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteStructureTable serializes rows in their given order. The caller is
// responsible for ordering (sorted accession iteration upstream).
func WriteStructureTable(w io.Writer, rows []StructureRow, o Options) error {
	if o.Format == FormatJSON {
		list := make([]any, 0, len(rows))
		for _, r := range rows {
			list = append(list, toAPIStructure(r))
		}
		return encodeJSON(w, list)
	}
	sep := o.sep()
	if o.Header {
		if _, err := fmt.Fprintln(w, strings.Join(structureCols, sep)); err != nil {
			return err
		}
	}
	for _, r := range rows {
		m := r.Metrics
		fields := []string{
			strconv.Itoa(m.NTotal), strconv.Itoa(m.NHelix),
			strconv.Itoa(m.NSheet), strconv.Itoa(m.NCoil),
			o.float(m.FracHelix), o.float(m.FracSheet), o.float(m.FracCoil),
			o.float(m.MeanASA),
			r.Accession, r.Abbr, r.Status, r.Source,
		}
		if _, err := fmt.Fprintln(w, strings.Join(fields, sep)); err != nil {
			return err
		}
	}
	return nil
}

// ReadStructureTable parses a table written by WriteStructureTable (csv or
// tsv, header required). Only fields needed by consumers are decoded.
func ReadStructureTable(r io.Reader) ([]StructureRow, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("missing header row")
	}
	header := sc.Text()
	sep := ","
	if strings.ContainsRune(header, '\t') {
		sep = "\t"
	}
	col := map[string]int{}
	for i, name := range strings.Split(header, sep) {
		col[name] = i
	}
	for _, need := range structureCols {
		if _, ok := col[need]; !ok {
			return nil, fmt.Errorf("missing column %q", need)
		}
	}

	var rows []StructureRow
	ln := 1
	for sc.Scan() {
		ln++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		f := strings.Split(line, sep)
		if len(f) < len(structureCols) {
			return nil, fmt.Errorf("line %d: bad field count", ln)
		}
		var row StructureRow
		var err error
		get := func(name string) string { return f[col[name]] }
		if row.Metrics.NTotal, err = strconv.Atoi(get("n_total")); err != nil {
			return nil, fmt.Errorf("line %d: %v", ln, err)
		}
		if row.Metrics.NHelix, err = strconv.Atoi(get("n_helix")); err != nil {
			return nil, fmt.Errorf("line %d: %v", ln, err)
		}
		if row.Metrics.NSheet, err = strconv.Atoi(get("n_sheet")); err != nil {
			return nil, fmt.Errorf("line %d: %v", ln, err)
		}
		if row.Metrics.NCoil, err = strconv.Atoi(get("n_coil")); err != nil {
			return nil, fmt.Errorf("line %d: %v", ln, err)
		}
		for name, dst := range map[string]*float64{
			"frac_helix": &row.Metrics.FracHelix,
			"frac_sheet": &row.Metrics.FracSheet,
			"frac_coil":  &row.Metrics.FracCoil,
			"mean_asa":   &row.Metrics.MeanASA,
		} {
			if *dst, err = strconv.ParseFloat(get(name), 64); err != nil {
				return nil, fmt.Errorf("line %d: %v", ln, err)
			}
		}
		row.Accession = get("accession")
		row.Abbr = get("abbr")
		row.Status = get("status")
		row.Source = get("source")
		rows = append(rows, row)
	}
	return rows, sc.Err()
}

// WriteLabeledTable serializes species-labeled charges.
func WriteLabeledTable(w io.Writer, rows []LabeledCharge, o Options) error {
	if o.Format == FormatJSON {
		list := make([]any, 0, len(rows))
		for _, r := range rows {
			list = append(list, toAPILabeled(r))
		}
		return encodeJSON(w, list)
	}
	sep := o.sep()
	if o.Header {
		if _, err := fmt.Fprintln(w, strings.Join(labeledCols, sep)); err != nil {
			return err
		}
	}
	for _, r := range rows {
		fields := []string{r.Name, o.float(r.NetCharge), r.Accession, r.Abbr, r.Status}
		if _, err := fmt.Fprintln(w, strings.Join(fields, sep)); err != nil {
			return err
		}
	}
	return nil
}

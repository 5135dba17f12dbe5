// core/species/species.go
package species

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Unknown is the sentinel returned by every lookup miss. Both hops of the
// accession → abbreviation → status chain default to it independently.
const Unknown = "unknown"

// Table holds the two lookup maps, fully materialized at load time and
// never mutated afterwards.
type Table struct {
	abbrByAccession map[string]string
	statusByAbbr    map[string]string
}

// LoadAccessionMap reads the accession → abbreviation mapping. Relevant
// data sits in the first tab-separated column of each line, itself
// pipe-delimited as abbreviation|accession|gene|... Blank lines and
// #-comments are skipped. A repeated accession keeps its first-seen
// abbreviation; later conflicts are ignored.
func LoadAccessionMap(path string) (map[string]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	m := make(map[string]string)
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		first := line
		if i := strings.IndexByte(line, '\t'); i >= 0 {
			first = line[:i]
		}
		parts := strings.Split(first, "|")
		if len(parts) < 2 {
			continue
		}
		abbr, accession := parts[0], parts[1]
		if _, seen := m[accession]; !seen {
			m[accession] = abbr
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadKeyTable reads the species key table: delimited text whose header
// names an "abbreviation" column and a status column ("aquatic" in the
// historical data, "status" accepted as an alias). The delimiter is taken
// from the header line (tab when present, else comma).
func LoadKeyTable(path string) (map[string]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	sc := bufio.NewScanner(fh)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%s: empty key table", path)
	}
	header := sc.Text()
	sep := ","
	if strings.ContainsRune(header, '\t') {
		sep = "\t"
	}

	abbrCol, statusCol := -1, -1
	for i, name := range strings.Split(header, sep) {
		switch strings.TrimSpace(name) {
		case "abbreviation":
			abbrCol = i
		case "aquatic", "status":
			if statusCol < 0 {
				statusCol = i
			}
		}
	}
	if abbrCol < 0 || statusCol < 0 {
		return nil, fmt.Errorf("%s: header must name abbreviation and aquatic/status columns", path)
	}

	need := abbrCol
	if statusCol > need {
		need = statusCol
	}

	m := make(map[string]string)
	ln := 1
	for sc.Scan() {
		ln++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := strings.Split(line, sep)
		if len(cols) <= need {
			return nil, fmt.Errorf("%s:%d bad field count", path, ln)
		}
		abbr := strings.TrimSpace(cols[abbrCol])
		if _, seen := m[abbr]; !seen {
			m[abbr] = strings.TrimSpace(cols[statusCol])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// Load builds a Table from the two lookup files.
func Load(mapPath, keyPath string) (*Table, error) {
	abbrs, err := LoadAccessionMap(mapPath)
	if err != nil {
		return nil, err
	}
	statuses, err := LoadKeyTable(keyPath)
	if err != nil {
		return nil, err
	}
	return &Table{abbrByAccession: abbrs, statusByAbbr: statuses}, nil
}

// NewTable wraps pre-built maps, mainly for tests.
func NewTable(abbrByAccession, statusByAbbr map[string]string) *Table {
	return &Table{abbrByAccession: abbrByAccession, statusByAbbr: statusByAbbr}
}

// Abbr resolves the first hop only.
func (t *Table) Abbr(accession string) string {
	if a, ok := t.abbrByAccession[accession]; ok {
		return a
	}
	return Unknown
}

// Status chains both hops. A miss on the first hop still runs the second
// with its sentinel (and misses), so the result is always a known status
// or Unknown, never a third kind of value.
func (t *Table) Status(accession string) string {
	abbr := t.Abbr(accession)
	if s, ok := t.statusByAbbr[abbr]; ok {
		return s
	}
	return Unknown
}

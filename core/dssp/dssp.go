// core/dssp/dssp.go
package dssp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNoRows reports a DSSP file that contained no parseable residue rows.
// A header with no table body falls under this too; callers must treat it
// as a per-file failure, never as an all-zero summary.
var ErrNoRows = errors.New("no residue rows parsed")

// headerPrefix is the sentinel that opens the residue table in mkdssp
// output. Everything above it is preamble and is ignored.
const headerPrefix = "  #  RESIDUE"

// Residue rows shorter than this cannot hold the accessibility field and
// are rejected whole rather than padded.
const minRowLen = 50

// Structure-code buckets. Codes outside both sets count as coil.
var (
	helixCodes = map[byte]bool{'H': true, 'G': true, 'I': true}
	sheetCodes = map[byte]bool{'E': true, 'B': true}
)

// Metrics summarizes one structure's secondary-structure composition and
// mean solvent accessibility.
type Metrics struct {
	NTotal    int
	NHelix    int
	NSheet    int
	NCoil     int
	FracHelix float64
	FracSheet float64
	FracCoil  float64
	MeanASA   float64
}

// Parse reads an mkdssp table and returns per-structure metrics.
//
// The reader is consumed until EOF; there is no end-of-table marker. A
// residue whose accessibility field (bytes 34:38) is empty or unparsable is
// kept with ASA 0.0, matching the historical table parser. Do not tighten
// it: the zero still feeds the mean.
func Parse(r io.Reader) (Metrics, error) {
	var m Metrics
	var asaSum float64

	inTable := false
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if !inTable {
			if strings.HasPrefix(line, headerPrefix) {
				inTable = true
			}
			continue
		}
		if len(line) < minRowLen {
			continue
		}

		ss := line[16]
		asa := 0.0
		if s := strings.TrimSpace(line[34:38]); s != "" {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				asa = v
			}
		}

		m.NTotal++
		switch {
		case helixCodes[ss]:
			m.NHelix++
		case sheetCodes[ss]:
			m.NSheet++
		default:
			m.NCoil++
		}
		asaSum += asa
	}
	if err := sc.Err(); err != nil {
		return Metrics{}, err
	}
	if m.NTotal == 0 {
		return Metrics{}, ErrNoRows
	}

	n := float64(m.NTotal)
	m.FracHelix = float64(m.NHelix) / n
	m.FracSheet = float64(m.NSheet) / n
	m.FracCoil = float64(m.NCoil) / n
	m.MeanASA = asaSum / n
	return m, nil
}

// ParseFile parses the mkdssp table at path.
func ParseFile(path string) (Metrics, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Metrics{}, err
	}
	defer func() { _ = fh.Close() }()

	m, err := Parse(fh)
	if err != nil {
		return Metrics{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

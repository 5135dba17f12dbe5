// internal/summary/table_test.go
package summary

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"strucsum-core/dssp"

	"strucsum/pkg/api"
)

func sampleRows() []StructureRow {
	return []StructureRow{
		{
			Accession: "NP_000001", Abbr: "ABC", Status: "aquatic", Source: "AF",
			Metrics: dssp.Metrics{
				NTotal: 10, NHelix: 4, NSheet: 3, NCoil: 3,
				FracHelix: 0.4, FracSheet: 0.3, FracCoil: 0.3, MeanASA: 55.5,
			},
		},
		{
			Accession: "NP_000002", Abbr: "unknown", Status: "unknown", Source: "SWM",
			Metrics: dssp.Metrics{
				NTotal: 2, NHelix: 1, NSheet: 0, NCoil: 1,
				FracHelix: 0.5, FracSheet: 0, FracCoil: 0.5, MeanASA: 12.25,
			},
		},
	}
}

func TestStructureTableRoundTrip(t *testing.T) {
	for _, format := range []string{FormatCSV, FormatTSV} {
		var buf bytes.Buffer
		rows := sampleRows()
		o := Options{Format: format, Header: true, Digits: 4}
		if err := WriteStructureTable(&buf, rows, o); err != nil {
			t.Fatalf("%s write: %v", format, err)
		}
		got, err := ReadStructureTable(&buf)
		if err != nil {
			t.Fatalf("%s read: %v", format, err)
		}
		if len(got) != len(rows) {
			t.Fatalf("%s: %d rows back, want %d", format, len(got), len(rows))
		}
		for i := range rows {
			if got[i].Accession != rows[i].Accession || got[i].Status != rows[i].Status {
				t.Errorf("%s row %d: key/status changed: %+v", format, i, got[i])
			}
			if got[i].Metrics != rows[i].Metrics {
				t.Errorf("%s row %d: metrics changed: %+v vs %+v",
					format, i, got[i].Metrics, rows[i].Metrics)
			}
		}
	}
}

func TestStructureTableHeaderAndOrder(t *testing.T) {
	var buf bytes.Buffer
	o := Options{Format: FormatCSV, Header: true, Digits: 2}
	if err := WriteStructureTable(&buf, sampleRows(), o); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "n_total,n_helix,n_sheet,n_coil,frac_helix,frac_sheet,frac_coil,mean_asa,accession,abbr,status,source" {
		t.Fatalf("header: %q", lines[0])
	}
	if lines[1] != "10,4,3,3,0.40,0.30,0.30,55.50,NP_000001,ABC,aquatic,AF" {
		t.Fatalf("row: %q", lines[1])
	}
}

func TestStructureTableNoHeader(t *testing.T) {
	var buf bytes.Buffer
	o := Options{Format: FormatTSV, Header: false, Digits: 1}
	if err := WriteStructureTable(&buf, sampleRows()[:1], o); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "n_total") {
		t.Fatalf("header leaked: %q", buf.String())
	}
}

func TestStructureTableJSON(t *testing.T) {
	var buf bytes.Buffer
	o := Options{Format: FormatJSON, Digits: 4}
	if err := WriteStructureTable(&buf, sampleRows()[:1], o); err != nil {
		t.Fatal(err)
	}
	var got []api.StructureSummaryV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 1 || got[0].Accession != "NP_000001" || got[0].NTotal != 10 {
		t.Fatalf("json rows: %+v", got)
	}
}

func TestWriteLabeledTable(t *testing.T) {
	var buf bytes.Buffer
	rows := []LabeledCharge{
		{Name: "NP_1__AF-Q1.pqr", NetCharge: -2.415, Accession: "NP_1", Abbr: "Oo", Status: "aquatic"},
	}
	o := Options{Format: FormatTSV, Header: true, Digits: 3}
	if err := WriteLabeledTable(&buf, rows, o); err != nil {
		t.Fatal(err)
	}
	want := "name\tnet_charge\taccession\tabbr\tstatus\n" +
		"NP_1__AF-Q1.pqr\t-2.415\tNP_1\tOo\taquatic\n"
	if buf.String() != want {
		t.Fatalf("got %q\nwant %q", buf.String(), want)
	}
}

func TestCreateMakesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "out.csv")
	fh, err := Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	_ = fh.Close()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

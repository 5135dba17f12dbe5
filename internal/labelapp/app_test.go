// internal/labelapp/app_test.go
package labelapp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"strucsum/internal/clibase"
	"strucsum/internal/labelcli"
	"strucsum/internal/summary"
)

func writeFixture(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testOpts(t *testing.T, charges string) labelcli.Options {
	t.Helper()
	root := t.TempDir()
	return labelcli.Options{
		Common: clibase.Common{
			Out:    filepath.Join(root, "labeled.tsv"),
			Output: summary.FormatTSV,
			Digits: 3,
			Header: true,
		},
		Charges:      writeFixture(t, root, "net_charges.tsv", charges),
		SpeciesKey:   writeFixture(t, root, "key.csv", "abbreviation,aquatic\nABC,aquatic\n"),
		AccessionMap: writeFixture(t, root, "map.out", "ABC|NP_000001|geneX\n"),
	}
}

func TestRunLabelsCharges(t *testing.T) {
	charges := "NP_000001__AF-Q1.pqr\tNetCharge=-2.415\n" +
		"NP_404__SWM-m1.pqr\tNetCharge=0.500\n" +
		"malformed line without tab\n"
	opts := testOpts(t, charges)

	var out, errBuf bytes.Buffer
	if code := run(opts, &out, &errBuf); code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errBuf.String())
	}

	data, err := os.ReadFile(opts.Out)
	if err != nil {
		t.Fatal(err)
	}
	want := "name\tnet_charge\taccession\tabbr\tstatus\n" +
		"NP_000001__AF-Q1.pqr\t-2.415\tNP_000001\tABC\taquatic\n" +
		"NP_404__SWM-m1.pqr\t0.500\tNP_404\tunknown\tunknown\n"
	if string(data) != want {
		t.Fatalf("labeled table:\n%q\nwant:\n%q", data, want)
	}

	// Counts by status on the diagnostic channel.
	if !strings.Contains(errBuf.String(), "aquatic\t1") ||
		!strings.Contains(errBuf.String(), "unknown\t1") {
		t.Errorf("status counts: %q", errBuf.String())
	}
}

func TestRunUnusableChargesTableIsExit3(t *testing.T) {
	opts := testOpts(t, "nothing useful here\n")
	var out, errBuf bytes.Buffer
	if code := run(opts, &out, &errBuf); code != 3 {
		t.Fatalf("exit %d, want 3", code)
	}
}

func TestRunMissingChargesFileIsExit2(t *testing.T) {
	opts := testOpts(t, "NP_000001__AF-Q1.pqr\tNetCharge=1.0\n")
	opts.Charges = filepath.Join(t.TempDir(), "absent.tsv")
	var out, errBuf bytes.Buffer
	if code := run(opts, &out, &errBuf); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
}

func TestRunMissingLookupIsExit2(t *testing.T) {
	opts := testOpts(t, "NP_000001__AF-Q1.pqr\tNetCharge=1.0\n")
	opts.AccessionMap = filepath.Join(t.TempDir(), "absent.out")
	var out, errBuf bytes.Buffer
	if code := run(opts, &out, &errBuf); code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
}

func TestRunAllUnknownWarnsButSucceeds(t *testing.T) {
	opts := testOpts(t, "XX_9__SWM-m1.pqr\tNetCharge=1.0\n")
	var out, errBuf bytes.Buffer
	if code := run(opts, &out, &errBuf); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(errBuf.String(), "WARN:") {
		t.Errorf("expected warning when nothing maps: %q", errBuf.String())
	}
}

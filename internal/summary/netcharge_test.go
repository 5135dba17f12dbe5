// internal/summary/netcharge_test.go
package summary

import (
	"bytes"
	"strings"
	"testing"
)

func TestNetChargesRoundTrip(t *testing.T) {
	in := []NetCharge{
		{Name: "NP_1__AF-Q1.pqr", Value: -2.415},
		{Name: "NP_2__SWM-model1.pqr", Value: 0.5},
	}
	var buf bytes.Buffer
	if err := WriteNetCharges(&buf, in, 3); err != nil {
		t.Fatal(err)
	}
	if want := "NP_1__AF-Q1.pqr\tNetCharge=-2.415\n"; !strings.HasPrefix(buf.String(), want) {
		t.Fatalf("legacy format drifted: %q", buf.String())
	}
	got, err := ReadNetCharges(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != in[0] || got[1] != in[1] {
		t.Fatalf("round trip: %+v", got)
	}
}

func TestReadNetChargesSkipsMalformed(t *testing.T) {
	in := "no-tab-here\n" +
		"file.pqr\tSomethingElse=1.0\n" +
		"file.pqr\tNetCharge=abc\n" +
		"\n" +
		"good.pqr\tNetCharge=1.250\n"
	got, err := ReadNetCharges(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "good.pqr" || got[0].Value != 1.25 {
		t.Fatalf("got %+v", got)
	}
}

func TestReadNetChargesEmptyIsError(t *testing.T) {
	if _, err := ReadNetCharges(strings.NewReader("junk\n")); err == nil {
		t.Fatal("want error for table with no usable rows")
	}
}

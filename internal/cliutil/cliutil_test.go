package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var r bool
	var layout string
	fs.BoolVar(&r, "recursive", false, "")
	fs.StringVar(&layout, "layout", "tolerant", "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs,
		[]string{"--recursive", "a.pqr", "--layout", "fixed", "--", "b.pqr"})
	if len(flagArgs) != 3 || flagArgs[1] != "--layout" || flagArgs[2] != "fixed" {
		t.Fatalf("flag args: %v", flagArgs)
	}
	if len(posArgs) != 2 || posArgs[0] != "a.pqr" || posArgs[1] != "b.pqr" {
		t.Fatalf("positionals: %v", posArgs)
	}
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.pqr", "b.pqr"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("END\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.pqr")})
	if err != nil || len(got) != 2 {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
}

func TestExpandPositionalsNoMatch(t *testing.T) {
	if _, err := ExpandPositionals([]string{filepath.Join(t.TempDir(), "*.pqr")}); err == nil {
		t.Fatal("want error for pattern matching nothing")
	}
}

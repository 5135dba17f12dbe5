// internal/mkdssp/mkdssp.go
package mkdssp

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Assigner assigns secondary structure for a cleaned model file, writing
// its table to outPath. The production implementation shells out to
// mkdssp; alternate engines (geometry-library pipelines) sit behind the
// same seam.
type Assigner interface {
	Assign(ctx context.Context, cleanPath, outPath string) error
}

// Clean copies only ATOM/HETATM/TER/END lines from src to dst. mkdssp
// chokes on some predicted-model header records, so everything else is
// stripped before assignment.
func Clean(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "ATOM") || strings.HasPrefix(line, "HETATM") ||
			strings.HasPrefix(line, "TER") || strings.HasPrefix(line, "END") {
			if _, err := w.WriteString(line + "\n"); err != nil {
				_ = out.Close()
				return err
			}
		}
	}
	if err := sc.Err(); err != nil {
		_ = out.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Runner invokes the external mkdssp binary.
type Runner struct {
	// Bin overrides the binary name, mainly for tests.
	Bin string
}

func (r Runner) bin() string {
	if r.Bin != "" {
		return r.Bin
	}
	return "mkdssp"
}

// Assign runs mkdssp <in> <out>. Success is exit status 0 plus an output
// file that actually exists; anything else fails with the tool's captured
// stderr attached. No timeout is imposed here; the caller's ctx may
// carry one.
func (r Runner) Assign(ctx context.Context, cleanPath, outPath string) error {
	bin, err := exec.LookPath(r.bin())
	if err != nil {
		return fmt.Errorf("%s not found in PATH", r.bin())
	}

	cmd := exec.CommandContext(ctx, bin, cleanPath, outPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%s failed for %s: %v: %s", r.bin(), cleanPath, err, msg)
		}
		return fmt.Errorf("%s failed for %s: %v", r.bin(), cleanPath, err)
	}
	if _, err := os.Stat(outPath); err != nil {
		return fmt.Errorf("%s exited 0 but wrote no output for %s", r.bin(), cleanPath)
	}
	return nil
}

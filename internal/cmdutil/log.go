// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf writes one WARN line unless quiet. Warnings never change the exit
// status; errors always print regardless of quiet.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Skipf records a per-entity exclusion: one diagnostic line, the run
// continues. Not silenced by quiet, since dropped rows must stay visible.
func Skipf(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, "skip: "+format+"\n", a...)
}

// Errorf writes one fatal-path error line.
func Errorf(dst io.Writer, format string, a ...any) {
	_, _ = fmt.Fprintf(dst, "error: "+format+"\n", a...)
}

// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is a tool entry point: argv without the program name, the two
// output streams, and the exit code.
type RunFunc func(context.Context, []string, io.Writer, io.Writer) int

// Main runs a tool against the real process: SIGINT/SIGTERM cancel the
// context, bare invocations get usage, and cancellation exits 130.
func Main(run RunFunc) {
	os.Exit(mainCode(run, os.Args[1:], os.Stdout, os.Stderr))
}

func mainCode(run RunFunc, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	code := run(ctx, argv, stdout, stderr)
	if code == 0 && ctx.Err() != nil {
		return 130
	}
	return code
}

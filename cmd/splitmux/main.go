// Command splitmux splits media files by chapter markers, or retags a tree
// of already-split episode files, using ffmpeg and ffprobe.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

// reportedError marks an error that has already been logged, so main only
// sets the exit status.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// SIGINT/SIGTERM cancel the context; the running ffmpeg is killed and
	// the run stops before the next unit.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var reported reportedError
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(stderr, "splitmux: interrupted")
	case errors.As(err, &reported):
	default:
		fmt.Fprintf(stderr, "splitmux: %v\n", err)
	}
	return 1
}

package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/backmassage/splitmux/internal/config"
	apperrors "github.com/backmassage/splitmux/internal/errors"
	"github.com/backmassage/splitmux/internal/planner"
)

// ConversionError reports a failed ffmpeg invocation.
type ConversionError struct {
	Command  []string
	ExitCode int // -1 when the process could not be started or was killed.
	Output   string
	Err      error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("command '%s' returned with error (code %d): %s",
		strings.Join(e.Command, " "), e.ExitCode, strings.TrimSpace(e.Output))
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, errors.ErrConversion) match.
func (e *ConversionError) Is(target error) bool {
	return apperrors.CodeOf(target) == apperrors.CodeConversion
}

// Converter runs ffmpeg for work units.
type Converter struct {
	FFmpeg     string
	OutputArgs []string

	// Trace, when set, receives each argument vector before it runs.
	Trace func(args []string)
}

// NewConverter builds a Converter from the resolved config.
func NewConverter(cfg *config.Config) (*Converter, error) {
	outputArgs, err := ParseFlags(cfg.FFmpegFlags, cfg.HasFFmpegFlags)
	if err != nil {
		return nil, err
	}
	return &Converter{FFmpeg: cfg.Tools.FFmpeg, OutputArgs: outputArgs}, nil
}

// Convert writes unit's tags to a temporary sidecar, runs ffmpeg, and
// removes the sidecar before returning, whether or not ffmpeg succeeded.
func (c *Converter) Convert(ctx context.Context, unit *planner.WorkUnit) error {
	sidecar, err := writeSidecar(unit)
	if err != nil {
		return err
	}
	defer os.Remove(sidecar)

	args := Build(c.FFmpeg, unit, sidecar, c.OutputArgs)
	if c.Trace != nil {
		c.Trace(args)
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	out, err := cmd.CombinedOutput()
	if err == nil {
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if apperrors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		err = apperrors.Join(ctxErr, err)
	}
	return &ConversionError{
		Command:  args,
		ExitCode: exitCode,
		Output:   string(out),
		Err:      err,
	}
}

func writeSidecar(unit *planner.WorkUnit) (string, error) {
	f, err := os.CreateTemp("", "splitmux-*.ffmeta")
	if err != nil {
		return "", fmt.Errorf("create metadata sidecar: %w", err)
	}
	writeErr := unit.Tags.WriteSidecar(f)
	closeErr := f.Close()
	if err := apperrors.Join(writeErr, closeErr); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write metadata sidecar: %w", err)
	}
	return f.Name(), nil
}

// Package check provides system diagnostics (the check subcommand) and
// pre-run dependency validation (CheckDeps) for ffmpeg and ffprobe.
package check

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/backmassage/splitmux/internal/config"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
)

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck prints the version of each configured tool and whether ffmpeg
// can read FFMETADATA sidecars. It reports false if anything is missing.
func RunCheck(ctx context.Context, cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkVersion(ctx, log, "ffmpeg", cfg.Tools.FFmpeg)
	ok = checkVersion(ctx, log, "ffprobe", cfg.Tools.FFprobe) && ok
	if !ok {
		return false
	}
	return checkMetadataDemuxer(ctx, log, cfg.Tools.FFmpeg)
}

// checkVersion verifies bin is on PATH and logs its version string.
func checkVersion(ctx context.Context, log Logger, label, bin string) bool {
	if _, err := exec.LookPath(bin); err != nil {
		log.Error("%s not found (%s)", label, bin)
		return false
	}
	out, err := exec.CommandContext(ctx, bin, "-version").Output()
	if err != nil {
		log.Warn("%s found but -version failed: %v", label, err)
		return false
	}
	log.Success("%s: %s", label, FirstLine(string(out)))
	return true
}

// checkMetadataDemuxer confirms the ffmetadata demuxer used for sidecars
// is compiled in.
func checkMetadataDemuxer(ctx context.Context, log Logger, bin string) bool {
	out, err := exec.CommandContext(ctx, bin, "-hide_banner", "-demuxers").Output()
	if err != nil {
		log.Warn("Could not list demuxers: %v", err)
		return false
	}
	if !HasDemuxer(string(out), "ffmetadata") {
		log.Error("ffmpeg lacks the ffmetadata demuxer; metadata sidecars cannot be read")
		return false
	}
	log.Success("ffmetadata demuxer available")
	return true
}

// CheckDeps is the pre-run validation: ffmpeg must be reachable, and in
// chapter mode ffprobe too. Returns a wrapped sentinel error on failure.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath(cfg.Tools.FFmpeg); err != nil {
		return fmt.Errorf("%w: %s", ErrFfmpegNotFound, cfg.Tools.FFmpeg)
	}
	if cfg.Mode != config.ModeChapters {
		return nil
	}
	if _, err := exec.LookPath(cfg.Tools.FFprobe); err != nil {
		return fmt.Errorf("%w: %s", ErrFfprobeNotFound, cfg.Tools.FFprobe)
	}
	return nil
}

// FirstLine returns the first non-empty line of s, trimmed.
func FirstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx > 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// HasDemuxer reports whether name appears as a demuxer in the output of
// "ffmpeg -demuxers". Lines look like " D  ffmetadata      FFmpeg metadata in text".
func HasDemuxer(listing, name string) bool {
	for _, line := range strings.Split(listing, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || !strings.Contains(fields[0], "D") {
			continue
		}
		for _, n := range strings.Split(fields[1], ",") {
			if n == name {
				return true
			}
		}
	}
	return false
}

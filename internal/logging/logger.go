// Package logging writes leveled, timestamped log lines to the terminal and
// optionally appends their uncolored form to a log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/backmassage/splitmux/internal/config"
	"github.com/backmassage/splitmux/internal/term"
)

const timeLayout = "2006-01-02 15:04:05"

type level string

const (
	levelInfo    level = "INFO"
	levelSuccess level = "SUCCESS"
	levelWarn    level = "WARN"
	levelError   level = "ERROR"
	levelDebug   level = "DEBUG"
)

// Logger is safe for concurrent use.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	file    *os.File
	verbose bool
	palette term.Palette
}

// New returns a logger writing ERROR lines to errOut and every other level
// to out. Colors are resolved against out. Call Close when done if a log
// file was configured.
func New(cfg *config.Config, out, errOut io.Writer) (*Logger, error) {
	l := &Logger{
		out:     out,
		errOut:  errOut,
		verbose: cfg.Verbose,
		palette: term.NewPalette(cfg.ColorMode, out),
	}
	if cfg.LogFile == "" {
		return l, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Verbose reports whether DEBUG lines are emitted.
func (l *Logger) Verbose() bool { return l.verbose }

// Writer returns the stdout sink, for output that is not a log line
// (tables, banners).
func (l *Logger) Writer() io.Writer { return l.out }

// Palette returns the colors resolved for Writer.
func (l *Logger) Palette() term.Palette { return l.palette }

func (l *Logger) color(lv level) string {
	switch lv {
	case levelSuccess:
		return l.palette.Green
	case levelWarn:
		return l.palette.Yellow
	case levelError:
		return l.palette.Red
	case levelDebug:
		return l.palette.Cyan
	default:
		return l.palette.Blue
	}
}

func (l *Logger) write(lv level, format string, args []interface{}) {
	ts := time.Now().Format(timeLayout)
	msg := fmt.Sprintf(format, args...)
	tag := "[" + string(lv) + "]"

	dst := l.out
	if lv == levelError {
		dst = l.errOut
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(dst, "%s %s %s\n", ts, l.palette.Paint(l.color(lv), tag), msg)
	if l.file != nil {
		fmt.Fprintf(l.file, "%s %s %s\n", ts, tag, msg)
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) { l.write(levelInfo, format, args) }

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) { l.write(levelSuccess, format, args) }

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) { l.write(levelWarn, format, args) }

// Error logs at ERROR level (red) to the error writer.
func (l *Logger) Error(format string, args ...interface{}) { l.write(levelError, format, args) }

// Debug logs at DEBUG level (cyan), only when verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.verbose {
		l.write(levelDebug, format, args)
	}
}

// Package term resolves whether ANSI colors are used and supplies the
// escape sequences for each log level.
package term

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/backmassage/splitmux/internal/config"
)

// Palette holds the escape sequences for one output stream. The zero
// Palette is colorless: every field is empty, so painting is a no-op.
type Palette struct {
	Red     string
	Green   string
	Yellow  string
	Blue    string
	Cyan    string
	Magenta string
	Reset   string
}

var ansi = Palette{
	Red:     "\033[1;91m",
	Green:   "\033[1;92m",
	Yellow:  "\033[1;93m",
	Blue:    "\033[1;94m",
	Cyan:    "\033[1;96m",
	Magenta: "\033[1;95m",
	Reset:   "\033[0m",
}

// NewPalette returns the palette for writes to w under mode. In auto mode
// colors are on only when w is a terminal, NO_COLOR is unset
// (https://no-color.org) and TERM is not "dumb".
func NewPalette(mode config.ColorMode, w io.Writer) Palette {
	if colorsOn(mode, w) {
		return ansi
	}
	return Palette{}
}

// Enabled reports whether p emits escape sequences.
func (p Palette) Enabled() bool { return p.Reset != "" }

// Paint wraps s in color and a reset. Without colors s is returned as is.
func (p Palette) Paint(color, s string) string {
	if color == "" || !p.Enabled() {
		return s
	}
	return color + s + p.Reset
}

func colorsOn(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok || !IsTerminal(f) {
		return false
	}
	return os.Getenv("NO_COLOR") == "" && strings.ToLower(os.Getenv("TERM")) != "dumb"
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

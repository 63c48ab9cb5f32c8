// Package config holds runtime configuration: defaults, config-file loading,
// CLI flag binding, path resolution, and validation.
//
// A Config is assembled exactly once at startup (defaults, then config file,
// then flags, then [Config.Resolve]) and passed by pointer to every component
// afterwards. Nothing mutates it after Resolve returns.
package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	apperrors "github.com/backmassage/splitmux/internal/errors"
)

// Mode selects which pipeline runs.
type Mode string

const (
	ModeChapters Mode = "chapters" // Split one file by its chapter markers.
	ModeEpisodes Mode = "episodes" // Retag a tree of episode files.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Metadata holds user-supplied tag overrides. Empty fields are unset.
type Metadata struct {
	Artist      string `toml:"artist" yaml:"artist"`
	Composer    string `toml:"composer" yaml:"composer"`
	AlbumArtist string `toml:"album_artist" yaml:"album_artist"`
	Album       string `toml:"album" yaml:"album"`
	Genre       string `toml:"genre" yaml:"genre"`
	Date        string `toml:"date" yaml:"date"`
}

// Tools names the external binaries.
type Tools struct {
	FFmpeg  string `toml:"ffmpeg" yaml:"ffmpeg" validate:"required"`
	FFprobe string `toml:"ffprobe" yaml:"ffprobe" validate:"required"`
}

// Config holds all runtime settings.
type Config struct {
	Mode Mode `validate:"oneof=chapters episodes"`

	// Paths. Input and OutputDir are absolute after Resolve.
	Input     string `validate:"required"`
	OutputDir string
	Force     bool

	// Conversion.
	FFmpegFlags    string // Raw shell-style argument string from --flags.
	HasFFmpegFlags bool   // True when --flags was given, even if empty.
	OutputExt      string `validate:"omitempty,excludesall=/\\"` // Without leading dot; empty keeps the input extension.
	OnlyChapters   string // Chapter selector, chapter mode only.

	Meta  Metadata
	Tools Tools

	// Behavior and display.
	DryRun    bool
	Verbose   bool
	ColorMode ColorMode `validate:"oneof=auto always never"`
	LogFile   string
}

// DefaultConfig returns a Config with repository defaults. It is the base
// that the config file and CLI flags are applied on top of.
func DefaultConfig(mode Mode) Config {
	return Config{
		Mode: mode,
		Tools: Tools{
			FFmpeg:  "ffmpeg",
			FFprobe: "ffprobe",
		},
		ColorMode: ColorAuto,
	}
}

// Resolve expands and absolutizes the input, output, and log paths, and
// derives the default output directory when none was given:
//
//	chapters: <input without extension>            (/media/book.m4b -> /media/book)
//	episodes: <input dir>-retagged                 (/media/Show     -> /media/Show-retagged)
func (c *Config) Resolve() error {
	if strings.TrimSpace(c.Input) == "" {
		return apperrors.Validationf("input is required (use -i/--input)")
	}
	input, err := ExpandPath(c.Input)
	if err != nil {
		return err
	}
	c.Input = input

	if strings.TrimSpace(c.OutputDir) == "" {
		switch c.Mode {
		case ModeEpisodes:
			c.OutputDir = NormalizeDirArg(input) + "-retagged"
		default:
			c.OutputDir = strings.TrimSuffix(input, filepath.Ext(input))
		}
	} else {
		out, err := ExpandPath(c.OutputDir)
		if err != nil {
			return err
		}
		c.OutputDir = out
	}

	if c.LogFile != "" {
		logFile, err := ExpandPath(c.LogFile)
		if err != nil {
			return err
		}
		c.LogFile = logFile
	}
	c.OutputExt = strings.TrimPrefix(strings.TrimSpace(c.OutputExt), ".")
	return nil
}

// OutputExtension returns the extension (with leading dot) for an output
// file whose input had inputExt.
func (c *Config) OutputExtension(inputExt string) string {
	if c.OutputExt == "" {
		return inputExt
	}
	return "." + c.OutputExt
}

var envRef = regexp.MustCompile(`\$(\w+|\{[^}]*\})`)

// expandEnv replaces $NAME and ${NAME} with the variable's value. References
// to unset variables are left as written, so a literal "$" in a file name
// survives.
func expandEnv(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(ref string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(ref[1:], "{"), "}")
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return ref
	})
}

// ExpandPath expands environment variables and a leading "~", then returns
// the cleaned absolute path.
func ExpandPath(pathValue string) (string, error) {
	pathValue = expandEnv(strings.TrimSpace(pathValue))
	if pathValue == "" {
		return "", nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", apperrors.Validationf("resolve home directory").WithCause(err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", apperrors.Validationf("resolve absolute path for %q", pathValue).WithCause(err)
	}
	return absolute, nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

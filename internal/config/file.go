package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	apperrors "github.com/backmassage/splitmux/internal/errors"
)

// fileConfig is the on-disk shape of a splitmux config file. Only defaults
// live here; per-run settings (input, output, selector) are flags only.
type fileConfig struct {
	Tools    Tools       `toml:"tools" yaml:"tools"`
	Logging  fileLogging `toml:"logging" yaml:"logging"`
	Metadata Metadata    `toml:"metadata" yaml:"metadata"`
}

type fileLogging struct {
	Color   string `toml:"color" yaml:"color"`
	File    string `toml:"file" yaml:"file"`
	Verbose bool   `toml:"verbose" yaml:"verbose"`
}

// FindConfigFile searches the standard locations and returns the first
// config file found, or "" when there is none (non-fatal).
func FindConfigFile() string {
	var locations []string
	locations = append(locations, "splitmux.toml", "splitmux.yaml", "splitmux.yml")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		locations = append(locations,
			filepath.Join(xdg, "splitmux", "config.toml"),
			filepath.Join(xdg, "splitmux", "config.yaml"),
		)
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations,
			filepath.Join(home, ".config", "splitmux", "config.toml"),
			filepath.Join(home, ".config", "splitmux", "config.yaml"),
		)
	}
	for _, path := range locations {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// LoadFile reads a TOML or YAML config file (chosen by extension) and
// applies it on top of cfg. Keys absent from the file keep cfg's values.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.Validationf("read config file %s", path).WithCause(err)
	}

	fc := fileConfig{
		Tools:    cfg.Tools,
		Logging:  fileLogging{Color: string(cfg.ColorMode), File: cfg.LogFile, Verbose: cfg.Verbose},
		Metadata: cfg.Meta,
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&fc)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&fc)
		if apperrors.Is(err, io.EOF) {
			err = nil // empty document
		}
	default:
		return apperrors.Validationf("config file %s: unsupported extension (use .toml or .yaml)", path)
	}
	if err != nil {
		return apperrors.Validationf("parse config file %s", path).WithCause(err)
	}

	cfg.Tools = fc.Tools
	cfg.Meta = fc.Metadata
	cfg.LogFile = fc.Logging.File
	cfg.Verbose = fc.Logging.Verbose
	if fc.Logging.Color != "" {
		cfg.ColorMode = ColorMode(strings.ToLower(fc.Logging.Color))
	}
	return nil
}

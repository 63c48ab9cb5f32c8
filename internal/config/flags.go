package config

// This file binds CLI flags for both subcommands.
// Flag values land in a Flags struct and are copied onto the Config after the
// config file has been applied, so that only flags the user actually passed
// override file values.

import (
	"github.com/spf13/pflag"
)

// Flags holds raw flag values for one invocation.
type Flags struct {
	ConfigPath string

	Input        string
	OutputDir    string
	Force        bool
	FFmpegFlags  string
	OutputExt    string
	OnlyChapters string
	Meta         Metadata

	DryRun  bool
	Verbose bool
	Color   bool
	NoColor bool
	LogFile string
}

// BindGlobalFlags registers flags shared by every subcommand.
func BindGlobalFlags(fs *pflag.FlagSet, f *Flags) {
	fs.StringVar(&f.ConfigPath, "config", "", "Config file (.toml or .yaml)")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "Verbose output (logs full ffmpeg commands)")
	fs.BoolVar(&f.Color, "color", false, "Force colored logs")
	fs.BoolVar(&f.NoColor, "no-color", false, "Disable colored logs")
	fs.StringVarP(&f.LogFile, "log", "l", "", "Append logs to file")
}

// BindChapterFlags registers the chapter splitter flags.
func BindChapterFlags(fs *pflag.FlagSet, f *Flags) {
	defineIOFlags(fs, f, "Input media file")
	fs.StringVar(&f.OnlyChapters, "only-chapters", "", `Only process these chapters, e.g. "1,3,5-7"`)
	fs.StringVar(&f.Meta.Artist, "meta_artist", "", "Artist (also seeds album_artist and composer)")
	fs.StringVar(&f.Meta.Composer, "meta_composer", "", "Composer")
	fs.StringVar(&f.Meta.AlbumArtist, "meta_album_artist", "", "Album artist")
	fs.StringVar(&f.Meta.Album, "meta_album", "", "Album (default: input file name)")
	defineCommonMetaFlags(fs, f)
}

// BindEpisodeFlags registers the episode batch flags.
func BindEpisodeFlags(fs *pflag.FlagSet, f *Flags) {
	defineIOFlags(fs, f, "Input directory")
	defineCommonMetaFlags(fs, f)
}

func defineIOFlags(fs *pflag.FlagSet, f *Flags, inputHelp string) {
	fs.BoolVarP(&f.Force, "force", "f", false, "Write into an existing output directory")
	fs.StringVarP(&f.Input, "input", "i", "", inputHelp)
	fs.StringVarP(&f.OutputDir, "dir", "d", "", "Output directory")
	fs.StringVar(&f.FFmpegFlags, "flags", "", `ffmpeg output flags (default: "-vcodec copy -acodec copy")`)
	fs.StringVar(&f.OutputExt, "output-ext", "", "Output extension override (e.g. mka)")
	fs.BoolVarP(&f.DryRun, "dry-run", "n", false, "Print the plan; do not create or convert anything")
}

func defineCommonMetaFlags(fs *pflag.FlagSet, f *Flags) {
	fs.StringVar(&f.Meta.Genre, "meta_genre", "", "Genre")
	fs.StringVar(&f.Meta.Date, "meta_date", "", "Date")
}

// Apply copies every flag the user set onto cfg. Flags left at their zero
// value do not clobber config-file values.
func (f *Flags) Apply(fs *pflag.FlagSet, cfg *Config) {
	cfg.Input = f.Input
	cfg.OutputDir = f.OutputDir
	cfg.Force = f.Force
	cfg.OutputExt = f.OutputExt
	cfg.OnlyChapters = f.OnlyChapters
	cfg.DryRun = f.DryRun

	if fs.Changed("flags") {
		cfg.FFmpegFlags = f.FFmpegFlags
		cfg.HasFFmpegFlags = true
	}

	applyString(fs, "meta_artist", f.Meta.Artist, &cfg.Meta.Artist)
	applyString(fs, "meta_composer", f.Meta.Composer, &cfg.Meta.Composer)
	applyString(fs, "meta_album_artist", f.Meta.AlbumArtist, &cfg.Meta.AlbumArtist)
	applyString(fs, "meta_album", f.Meta.Album, &cfg.Meta.Album)
	applyString(fs, "meta_genre", f.Meta.Genre, &cfg.Meta.Genre)
	applyString(fs, "meta_date", f.Meta.Date, &cfg.Meta.Date)
	applyString(fs, "log", f.LogFile, &cfg.LogFile)

	if f.Verbose {
		cfg.Verbose = true
	}
	if f.NoColor {
		cfg.ColorMode = ColorNever
	} else if f.Color {
		cfg.ColorMode = ColorAlways
	}
}

func applyString(fs *pflag.FlagSet, name, value string, dst *string) {
	if fs.Lookup(name) == nil || !fs.Changed(name) {
		return
	}
	*dst = value
}

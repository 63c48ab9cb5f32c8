package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/splitmux/internal/check"
	"github.com/backmassage/splitmux/internal/config"
	"github.com/backmassage/splitmux/internal/display"
	"github.com/backmassage/splitmux/internal/ffmpeg"
	"github.com/backmassage/splitmux/internal/logging"
	"github.com/backmassage/splitmux/internal/pipeline"
	"github.com/backmassage/splitmux/internal/probe"
)

func newChaptersCommand(flags *config.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chapters -i <file> [flags]",
		Short: "Split one media file into one file per chapter",
		Example: `  splitmux chapters -i book.m4b --meta_artist "Author" --only-chapters 1,3,5-7
  splitmux chapters -i talk.mkv -d ./parts --output-ext mka --flags "-vn -acodec copy"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, flags, config.ModeChapters)
		},
	}
	config.BindChapterFlags(cmd.Flags(), flags)
	return cmd
}

func newEpisodesCommand(flags *config.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "episodes -i <dir> [flags]",
		Short: `Retag "<show> SxxExx <title>" files found two levels below a directory`,
		Example: `  splitmux episodes -i "/media/tv/Show" --meta_genre Drama
  splitmux episodes -i ./Show -d ./Show-mp4 --output-ext mp4 --flags "-c copy"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, flags, config.ModeEpisodes)
		},
	}
	config.BindEpisodeFlags(cmd.Flags(), flags)
	return cmd
}

func newCheckCommand(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that ffmpeg and ffprobe are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig(config.ModeChapters)
			if err := loadFileConfig(flags, &cfg); err != nil {
				return err
			}
			flags.Apply(cmd.Flags(), &cfg)

			log, err := logging.New(&cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer log.Close()

			if !check.RunCheck(cmd.Context(), &cfg, log) {
				return reportedError{errors.New("system check failed")}
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "splitmux %s (%s)\n", version, commit)
			return nil
		},
	}
}

// loadConfig assembles the run configuration: defaults, then the config
// file, then flags the user set, then path resolution and validation.
func loadConfig(cmd *cobra.Command, flags *config.Flags, mode config.Mode) (*config.Config, error) {
	cfg := config.DefaultConfig(mode)
	if err := loadFileConfig(flags, &cfg); err != nil {
		return nil, err
	}
	flags.Apply(cmd.Flags(), &cfg)
	if err := cfg.Resolve(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFileConfig(flags *config.Flags, cfg *config.Config) error {
	path := flags.ConfigPath
	if path == "" {
		path = config.FindConfigFile()
	}
	if path == "" {
		return nil
	}
	return config.LoadFile(path, cfg)
}

func runPipeline(cmd *cobra.Command, flags *config.Flags, mode config.Mode) error {
	cfg, err := loadConfig(cmd, flags, mode)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner(log.Writer(), log.Palette(), version)
	log.Info("=== splitmux %s (%s) ===", version, mode)
	if cfg.DryRun {
		log.Warn("DRY RUN - no files will be written")
	}

	if err := check.CheckDeps(cfg); err != nil {
		log.Error("%v", err)
		return reportedError{err}
	}

	conv, err := ffmpeg.NewConverter(cfg)
	if err != nil {
		log.Error("%v", err)
		return reportedError{err}
	}
	conv.Trace = func(args []string) {
		log.Debug("ffmpeg: %s", ffmpeg.CommandLine(args))
	}

	runner := &pipeline.Runner{
		Cfg:       cfg,
		Log:       log,
		Lister:    probe.Lister{FFprobe: cfg.Tools.FFprobe},
		Converter: conv,
	}

	var stats pipeline.RunStats
	switch mode {
	case config.ModeChapters:
		stats, err = runner.RunChapters(cmd.Context())
	default:
		stats, err = runner.RunEpisodes(cmd.Context())
	}
	if err != nil {
		log.Error("%v", err)
		if stats.Converted > 0 {
			log.Warn("%d of %d units converted, %d remaining", stats.Converted, stats.Total, stats.Remaining())
		}
		return reportedError{err}
	}
	return nil
}

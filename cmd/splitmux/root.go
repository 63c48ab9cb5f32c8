package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/backmassage/splitmux/internal/config"
)

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	flags := &config.Flags{}

	rootCmd := &cobra.Command{
		Use:           "splitmux",
		Short:         "Split media by chapters or retag episode files with ffmpeg",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	config.BindGlobalFlags(rootCmd.PersistentFlags(), flags)

	rootCmd.AddCommand(newChaptersCommand(flags))
	rootCmd.AddCommand(newEpisodesCommand(flags))
	rootCmd.AddCommand(newCheckCommand(flags))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

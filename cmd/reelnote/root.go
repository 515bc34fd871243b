package main

import (
	"github.com/spf13/cobra"
)

const rootLong = `reelnote scans an Obsidian vault (or a single note) for movie and TV
notes and fills in what is missing: a locally stored cover image, runtime
and genre metadata in the frontmatter, and optionally a generated content
region in the note body.`

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "reelnote",
		Short:         "Enrich Obsidian movie and TV notes with TMDB data",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newRunCommand(&configFlag))
	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}

package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var colorFlag string

	ctx := newCommandContext(&configFlag, &colorFlag)

	rootCmd := &cobra.Command{
		Use:           "chordstage",
		Short:         "Render, transpose and page chord-and-lyric transcripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Colour output: auto, always or never (default from config)")

	rootCmd.AddCommand(newRenderCommand(ctx))
	rootCmd.AddCommand(newWatchCommand(ctx))
	rootCmd.AddCommand(newClassifyCommand(ctx))
	rootCmd.AddCommand(newSectionsCommand(ctx))
	rootCmd.AddCommand(newVersesCommand(ctx))
	rootCmd.AddCommand(newFitCommand(ctx))
	rootCmd.AddCommand(newTokensCommand())
	rootCmd.AddCommand(newTransposeCommand())
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newCacheCommand(ctx))

	return rootCmd
}

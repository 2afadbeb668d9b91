package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var themeFlag string
	var columnsFlag int
	var noMouseFlag bool

	ctx := newCommandContext(&configFlag, &themeFlag, &columnsFlag, &noMouseFlag)

	rootCmd := &cobra.Command{
		Use:           "picgrid",
		Short:         "Terminal image gallery with drag-and-drop ordering",
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
			if !isTerminal(cmd.OutOrStdout()) {
				return runList(ctx, cmd.OutOrStdout())
			}
			return runTUI(cmd, ctx)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "Color theme (light or dark)")
	rootCmd.Flags().IntVar(&columnsFlag, "columns", 0, "Number of card columns (1-8)")
	rootCmd.Flags().BoolVar(&noMouseFlag, "no-mouse", false, "Disable mouse dragging")

	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

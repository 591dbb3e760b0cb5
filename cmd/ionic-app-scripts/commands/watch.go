package commands

import (
	"github.com/spf13/cobra"

	"github.com/hayuki/ionic-app-scripts/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Build, then rebuild on file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			return c.app.Watch(cmd.Context(), app.RunOptions{Debug: debug})
		},
	}
	cmd.Flags().Bool("debug", false, "Enable verbose output: stack traces and memory usage")
	return cmd
}

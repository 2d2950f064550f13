package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/todostack/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build the application image and start its container",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			skipNetwork, _ := cmd.Flags().GetBool("skip-network")
			progress, _ := cmd.Flags().GetBool("progress")
			return c.app.Deploy(cmd.Context(), app.DeployOptions{
				ConfigPath:  configPath(cmd),
				DryRun:      dryRun,
				SkipNetwork: skipNetwork,
				Progress:    progress,
			}, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().BoolP("dry-run", "n", false, "Print the commands without running them")
	cmd.Flags().Bool("skip-network", false, "Do not create the container network if it is missing")
	cmd.Flags().Bool("progress", false, "Print a per-step summary to stderr when the run ends")
	return cmd
}

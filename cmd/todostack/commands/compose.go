package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/todostack/internal/app"
)

func (c *CLI) newComposeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Write docker-compose.yml for the web and db services",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			validate, _ := cmd.Flags().GetBool("validate")
			return c.app.Compose(cmd.Context(), app.ComposeOptions{
				ConfigPath: configPath(cmd),
				Validate:   validate,
			}, cmd.OutOrStdout())
		},
	}
	cmd.Flags().Bool("validate", false, "Check the written file against the Compose Specification")
	return cmd
}

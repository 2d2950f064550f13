// Package commands implements the CLI commands for todostack.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/todostack/internal/adapters/config"
	"go.trai.ch/todostack/internal/app"
	"go.trai.ch/todostack/internal/build"
	"go.trai.ch/todostack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Log formats accepted by --log-format.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// LogFormatEnv provides the --log-format default.
const LogFormatEnv = "TODOSTACK_LOG_FORMAT"

// CLI represents the command line interface for todostack.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app. The logger's format
// follows --log-format.
func New(a *app.App, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "todostack",
		Short:         "Generate the TodoApp compose file and run the TodoApp container",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultFilename, "Settings file (YAML); missing file means defaults")

	logFormat := os.Getenv(LogFormatEnv)
	if logFormat == "" {
		logFormat = LogFormatText
	}
	rootCmd.PersistentFlags().String("log-format", logFormat, "Diagnostics format on stderr: text or json")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = c.applyLogFormat

	rootCmd.AddCommand(c.newComposeCmd())
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}

func (c *CLI) applyLogFormat(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("log-format")
	switch format {
	case LogFormatText:
		c.logger.SetJSON(false)
	case LogFormatJSON:
		c.logger.SetJSON(true)
	default:
		return zerr.With(zerr.New("unknown log format"), "log_format", format)
	}
	return nil
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}

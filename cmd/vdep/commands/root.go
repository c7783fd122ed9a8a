// Package commands implements the CLI commands for vdep.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/vdep/internal/app"
	"go.trai.ch/vdep/internal/build"
	"go.trai.ch/vdep/internal/core/domain"
)

// CLI represents the command line interface for vdep.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Generate(ctx context.Context, opts app.GenerateOptions) (*app.GenerateResult, error)
	Watch(ctx context.Context, opts app.WatchOptions) error
	Deps(
		ctx context.Context,
		opts app.ReportOptions,
		module domain.ImportPath,
		imports []domain.ImportPath,
	) ([]domain.ImportPath, error)
	Aliases(
		ctx context.Context,
		opts app.ReportOptions,
		models []domain.ImportPath,
	) (concrete, querySets map[domain.ImportPath]string, err error)
	SetJSONLogs(enable bool)
	SetTracing(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "vdep",
		Short:         "Generate virtual dependency stubs for type checkers",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", domain.ProjectFileName, "Path to the project file")
	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().Bool("trace", false, "Log timing of every traced step")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if jsonLogs, _ := cmd.Flags().GetBool("json"); jsonLogs {
			c.app.SetJSONLogs(true)
		}
		if tracing, _ := cmd.Flags().GetBool("trace"); tracing {
			c.app.SetTracing(true)
		}
	}

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newDepsCmd())
	rootCmd.AddCommand(c.newAliasesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

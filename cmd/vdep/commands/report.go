package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/vdep/internal/app"
	"go.trai.ch/vdep/internal/core/domain"
)

func reportOptions(cmd *cobra.Command) app.ReportOptions {
	configPath, _ := cmd.Flags().GetString("config")
	destination, _ := cmd.Flags().GetString("destination")
	return app.ReportOptions{ConfigPath: configPath, Destination: destination}
}

func toImportPaths(args []string) []domain.ImportPath {
	paths := make([]domain.ImportPath, len(args))
	for i, a := range args {
		paths[i] = domain.ImportPath(a)
	}
	return paths
}

func (c *CLI) newDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps <module> [imports...]",
		Short: "Print the synthetic modules a module must depend on",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := c.app.Deps(cmd.Context(), reportOptions(cmd),
				domain.ImportPath(args[0]), toImportPaths(args[1:]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, dep := range deps {
				_, _ = fmt.Fprintln(out, dep)
			}
			return nil
		},
	}
	cmd.Flags().StringP("destination", "d", "", "Directory the stubs were installed into")
	return cmd
}

func (c *CLI) newAliasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aliases <model>...",
		Short: "Print the concrete aliases of models",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			models := toImportPaths(args)
			concrete, querySets, err := c.app.Aliases(cmd.Context(), reportOptions(cmd), models)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, model := range models {
				_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", model, orDash(concrete[model]), orDash(querySets[model]))
			}
			return nil
		},
	}
	cmd.Flags().StringP("destination", "d", "", "Directory the stubs were installed into")
	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

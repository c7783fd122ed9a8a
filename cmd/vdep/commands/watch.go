package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vdep/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate virtual dependencies whenever the project file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			debounce, _ := cmd.Flags().GetDuration("debounce")
			return c.app.Watch(cmd.Context(), app.WatchOptions{
				GenerateOptions: generateOptions(cmd),
				DebounceWindow:  debounce,
			})
		},
	}
	addGenerateFlags(cmd)
	cmd.Flags().Duration("debounce", 0, "Time to wait for further changes before regenerating")
	return cmd
}

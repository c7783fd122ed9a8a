package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/vdep/internal/app"
)

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().String("namespace", "", "Namespace of the synthetic modules (overrides the project file)")
	cmd.Flags().StringP("destination", "d", "", "Directory the stubs are installed into (overrides the project file)")
	cmd.Flags().String("differentiator", "", "Token rendered into every stub to force a new interface")
	cmd.Flags().String("checksum", app.ChecksumAdler32, "Checksum used for synthetic names: adler32 or xxhash")
}

func generateOptions(cmd *cobra.Command) app.GenerateOptions {
	configPath, _ := cmd.Flags().GetString("config")
	namespace, _ := cmd.Flags().GetString("namespace")
	destination, _ := cmd.Flags().GetString("destination")
	differentiator, _ := cmd.Flags().GetString("differentiator")
	checksum, _ := cmd.Flags().GetString("checksum")

	return app.GenerateOptions{
		ConfigPath:     configPath,
		Namespace:      namespace,
		Destination:    destination,
		Differentiator: differentiator,
		Checksum:       checksum,
	}
}

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and install virtual dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.Generate(cmd.Context(), generateOptions(cmd))
			return err
		},
	}
	addGenerateFlags(cmd)
	return cmd
}

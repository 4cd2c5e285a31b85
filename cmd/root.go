package cmd

import (
	"github.com/devtype-tools/devtypegen/internal/gencmd"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devtypegen",
		Short: "Device-type definition generator for the devicetype-library",
		Long: `Devtypegen turns a table of network switch models into
devicetype-library submissions.

It renders one YAML definition file per model and prepares the matching
front/rear elevation images from vendor product photos.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(gencmd.NewGenerateCmd())
	cmd.AddCommand(gencmd.NewCropCmd())
	cmd.AddCommand(gencmd.NewNormalizeCmd())
	cmd.AddCommand(gencmd.NewFetchImagesCmd())

	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/macsdk/internal/app"
)

func (c *CLI) newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Report the state of the developer tooling on this host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output-mode to "plain"
			if ci {
				outputMode = "plain"
			}

			return c.app.Doctor(cmd.Context(), app.DoctorOptions{
				OutputMode: outputMode,
			})
		},
	}
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, pretty, or plain")
	cmd.Flags().Bool("ci", false, "Use plain output mode (shorthand for --output-mode=plain)")
	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/macsdk/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			host, _ := cmd.Flags().GetBool("host")
			if host {
				return c.app.HostVersion(cmd.Context())
			}

			cmdo := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(cmdo, "macsdk version %s (commit: %s, date: %s)\n", build.Version, build.Commit, build.Date)
			return nil
		},
	}
	cmd.Flags().Bool("host", false, "Print the host macOS version instead")
	return cmd
}

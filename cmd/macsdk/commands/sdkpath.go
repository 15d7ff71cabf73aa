package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/macsdk/internal/app"
)

func (c *CLI) newSDKPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sdk-path",
		Short: "Print the SDK root path for this host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sdkVersion, _ := cmd.Flags().GetString("sdk-version")
			ifNeeded, _ := cmd.Flags().GetBool("if-needed")
			requireXcode, _ := cmd.Flags().GetBool("require-xcode")

			return c.app.SDKPath(cmd.Context(), app.SDKPathOptions{
				SDKVersion:   sdkVersion,
				IfNeeded:     ifNeeded,
				RequireXcode: requireXcode,
			})
		},
	}
	cmd.Flags().StringP("sdk-version", "s", "", "Prefer the SDK matching this version (e.g. 14.4)")
	cmd.Flags().Bool("if-needed", false, "Print nothing when the toolchain needs no explicit SDK root")
	cmd.Flags().Bool("require-xcode", false, "Resolve against the Xcode SDKs even when the Command Line Tools carry one")
	return cmd
}

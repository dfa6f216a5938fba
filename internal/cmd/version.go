package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/upload-post/uploadpost-cli/internal/update"
)

// version is set at build time via ldflags
var version = "dev"

func newVersionCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "uploadpost-cli version %s\n", version)

			if !check {
				return
			}
			// Non-blocking check; failures print nothing.
			result := update.CheckForUpdate(cmd.Context(), version)
			errOut := cmd.ErrOrStderr()
			switch {
			case result == nil:
				_, _ = fmt.Fprintln(errOut, "Update check skipped or failed.")
			case result.UpdateAvailable:
				_, _ = fmt.Fprintf(errOut, "\nUpdate available: %s -> %s\n", result.CurrentVersion, result.LatestVersion)
				_, _ = fmt.Fprintf(errOut, "Download: %s\n", result.UpdateURL)
			default:
				_, _ = fmt.Fprintln(errOut, "You are on the latest version.")
			}
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Check GitHub for a newer release")
	return cmd
}

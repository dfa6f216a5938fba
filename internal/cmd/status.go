package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status REQUEST_ID",
		Aliases: []string{"st"},
		Short:   "Check the progress of an async upload",
		Example: "  uploadpost status req_abc123",
		Args:    cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			result, err := client.Posts().Status(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if isJSON(cmd) {
				return printJSON(cmd, result)
			}

			w := newTabWriterFromCmd(cmd)
			if status, ok := result["status"].(string); ok {
				_, _ = fmt.Fprintf(w, "Status:\t%s\n", status)
			}
			if progress, ok := result["progress"].(float64); ok {
				_, _ = fmt.Fprintf(w, "Progress:\t%.0f%%\n", progress)
			}
			if message, ok := result["message"].(string); ok && message != "" {
				_, _ = fmt.Fprintf(w, "Message:\t%s\n", message)
			}
			return w.Flush()
		}),
	}
	return cmd
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/upload-post/uploadpost-cli/internal/api"
)

func newHistoryCmd() *cobra.Command {
	var opts api.HistoryOptions

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"hist"},
		Short:   "List past uploads",
		Example: "  uploadpost history --page 2 --limit 50",
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			result, err := client.Posts().History(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if isJSON(cmd) {
				return printJSON(cmd, result)
			}

			entries, ok := result["history"].([]any)
			if !ok {
				if entries, ok = result["posts"].([]any); !ok {
					return printJSON(cmd, result)
				}
			}
			if len(entries) == 0 {
				printIfNotQuiet(cmd, "No uploads yet.\n")
				return nil
			}

			w := newTabWriterFromCmd(cmd)
			_, _ = fmt.Fprintln(w, "REQUEST ID\tDATE\tPLATFORMS\tSTATUS\tTITLE")
			for _, raw := range entries {
				entry, ok := raw.(map[string]any)
				if !ok {
					continue
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					stringField(entry, "request_id", "id"),
					stringField(entry, "created_at", "date"),
					platformsField(entry),
					stringField(entry, "status"),
					stringField(entry, "title"))
			}
			return w.Flush()
		}),
	}

	cmd.Flags().IntVar(&opts.Page, "page", 0, "Page number (1-based)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Results per page")

	return cmd
}

// stringField returns the first present string value among keys.
func stringField(entry map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := entry[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func platformsField(entry map[string]any) string {
	raw, ok := entry["platforms"].([]any)
	if !ok {
		return stringField(entry, "platform")
	}
	out := ""
	for _, p := range raw {
		name, ok := p.(string)
		if !ok {
			continue
		}
		if out != "" {
			out += ","
		}
		out += name
	}
	return out
}

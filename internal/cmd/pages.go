package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/upload-post/uploadpost-cli/internal/api"
)

func newPagesCmd() *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Look up connected pages and boards",
		Long:  "Look up the Facebook pages, LinkedIn organization pages, and Pinterest boards connected to your profiles. Use the returned IDs with the upload flags.",
	}

	cmd.PersistentFlags().StringVarP(&profile, "profile", "u", "", "Scope the lookup to one managed profile")

	cmd.AddCommand(newPagesPlatformCmd("facebook", "Facebook pages", &profile,
		func(ctx context.Context, client *api.Client, profile string) (api.Result, error) {
			return client.Pages().Facebook(ctx, profile)
		}))
	cmd.AddCommand(newPagesPlatformCmd("linkedin", "LinkedIn organization pages", &profile,
		func(ctx context.Context, client *api.Client, profile string) (api.Result, error) {
			return client.Pages().LinkedIn(ctx, profile)
		}))
	cmd.AddCommand(newPagesPlatformCmd("pinterest", "Pinterest boards", &profile,
		func(ctx context.Context, client *api.Client, profile string) (api.Result, error) {
			return client.Pages().PinterestBoards(ctx, profile)
		}))
	cmd.AddCommand(newPagesAllCmd(&profile))

	return cmd
}

func newPagesPlatformCmd(name, short string, profile *string, fetch func(context.Context, *api.Client, string) (api.Result, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: "List connected " + short,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			result, err := fetch(cmd.Context(), client, *profile)
			if err != nil {
				return err
			}
			if isJSON(cmd) {
				return printJSON(cmd, result)
			}
			return printPagesTable(cmd, name, result)
		}),
	}
}

// newPagesAllCmd fetches all three lookups concurrently.
func newPagesAllCmd(profile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "List pages and boards across all platforms",
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}

			var facebook, linkedin, pinterest api.Result
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				facebook, err = client.Pages().Facebook(ctx, *profile)
				return err
			})
			g.Go(func() error {
				var err error
				linkedin, err = client.Pages().LinkedIn(ctx, *profile)
				return err
			})
			g.Go(func() error {
				var err error
				pinterest, err = client.Pages().PinterestBoards(ctx, *profile)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			if isJSON(cmd) {
				return printJSON(cmd, map[string]any{
					"facebook":  facebook,
					"linkedin":  linkedin,
					"pinterest": pinterest,
				})
			}
			for _, entry := range []struct {
				name   string
				result api.Result
			}{
				{"facebook", facebook},
				{"linkedin", linkedin},
				{"pinterest", pinterest},
			} {
				if err := printPagesTable(cmd, entry.name, entry.result); err != nil {
					return err
				}
			}
			return nil
		}),
	}
}

// printPagesTable renders a page/board listing. The vendor keys the list
// differently per platform, so try the known shapes before falling back to
// raw JSON.
func printPagesTable(cmd *cobra.Command, platform string, result api.Result) error {
	var entries []any
	for _, key := range []string{"pages", "boards", "data"} {
		if list, ok := result[key].([]any); ok {
			entries = list
			break
		}
	}
	if entries == nil {
		return printJSON(cmd, result)
	}
	if len(entries) == 0 {
		printIfNotQuiet(cmd, "%s: none connected\n", platform)
		return nil
	}

	w := newTabWriterFromCmd(cmd)
	_, _ = fmt.Fprintln(w, "PLATFORM\tID\tNAME")
	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n",
			platform,
			stringField(entry, "page_id", "id", "urn"),
			stringField(entry, "page_name", "name"))
	}
	return w.Flush()
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"profiles"},
		Short:   "Manage managed user profiles",
		Long:    "Managed user profiles are the accounts you publish on behalf of. Each profile connects its own platform accounts through the linking page.",
	}

	cmd.AddCommand(newUsersListCmd())
	cmd.AddCommand(newUsersCreateCmd())
	cmd.AddCommand(newUsersDeleteCmd())

	return cmd
}

func newUsersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List managed user profiles",
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			result, err := client.Users().List(cmd.Context())
			if err != nil {
				return err
			}
			if isJSON(cmd) {
				return printJSON(cmd, result)
			}

			profiles, ok := result["profiles"].([]any)
			if !ok {
				if profiles, ok = result["users"].([]any); !ok {
					return printJSON(cmd, result)
				}
			}
			if len(profiles) == 0 {
				printIfNotQuiet(cmd, "No profiles. Create one with: uploadpost users create USERNAME\n")
				return nil
			}

			w := newTabWriterFromCmd(cmd)
			_, _ = fmt.Fprintln(w, "USERNAME\tCREATED\tCONNECTED PLATFORMS")
			for _, raw := range profiles {
				profile, ok := raw.(map[string]any)
				if !ok {
					continue
				}
				connected := ""
				if accounts, ok := profile["social_accounts"].(map[string]any); ok {
					for platform, v := range accounts {
						if v == nil {
							continue
						}
						if s, isStr := v.(string); isStr && s == "" {
							continue
						}
						if connected != "" {
							connected += ","
						}
						connected += platform
					}
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n",
					stringField(profile, "username"),
					stringField(profile, "created_at"),
					connected)
			}
			return w.Flush()
		}),
	}
}

func newUsersCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "create USERNAME",
		Aliases: []string{"add"},
		Short:   "Create a managed user profile",
		Args:    cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			result, err := client.Users().Create(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if isJSON(cmd) {
				return printJSON(cmd, result)
			}
			printIfNotQuiet(cmd, "Created profile %s\n", args[0])
			printIfNotQuiet(cmd, "Generate a linking page with: uploadpost jwt generate %s\n", args[0])
			return nil
		}),
	}
}

func newUsersDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete USERNAME",
		Aliases: []string{"rm"},
		Short:   "Delete a managed user profile",
		Args:    cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("deleting profile %q disconnects all of its platform accounts; re-run with --yes to confirm", args[0])
			}
			client, err := getClient()
			if err != nil {
				return err
			}
			result, err := client.Users().Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if isJSON(cmd) {
				return printJSON(cmd, result)
			}
			printIfNotQuiet(cmd, "Deleted profile %s\n", args[0])
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation check")

	return cmd
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/upload-post/uploadpost-cli/internal/api"
)

func newJWTCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generate and validate account-linking tokens",
		Long:  "Linking tokens open a hosted page where a managed profile connects its platform accounts.",
	}

	cmd.AddCommand(newJWTGenerateCmd())
	cmd.AddCommand(newJWTValidateCmd())

	return cmd
}

func newJWTGenerateCmd() *cobra.Command {
	var (
		opts             api.JWTOptions
		showCalendar     bool
		readonlyCalendar bool
	)

	cmd := &cobra.Command{
		Use:     "generate USERNAME",
		Aliases: []string{"gen"},
		Short:   "Generate a linking URL for a profile",
		Example: `  uploadpost jwt generate demo
  uploadpost jwt generate demo --platforms tiktok,instagram --redirect-url https://example.com/done`,
		Args: cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			opts.ShowCalendar = boolPtrIfChanged(cmd, "show-calendar", showCalendar)
			opts.ReadonlyCalendar = boolPtrIfChanged(cmd, "readonly-calendar", readonlyCalendar)

			client, err := getClient()
			if err != nil {
				return err
			}
			result, err := client.Users().GenerateJWT(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			if isJSON(cmd) {
				return printJSON(cmd, result)
			}

			if accessURL, ok := result["access_url"].(string); ok && accessURL != "" {
				printIfNotQuiet(cmd, "Linking URL (share with the profile owner):\n%s\n", accessURL)
				return nil
			}
			if token, ok := result["token"].(string); ok && token != "" {
				printIfNotQuiet(cmd, "Token: %s\n", token)
				return nil
			}
			return printJSON(cmd, result)
		}),
	}

	cmd.Flags().StringVar(&opts.RedirectURL, "redirect-url", "", "Where the linking page sends the user afterwards")
	cmd.Flags().StringVar(&opts.LogoImage, "logo-image", "", "Logo URL shown on the linking page")
	cmd.Flags().StringVar(&opts.RedirectButtonText, "redirect-button-text", "", "Label for the return button")
	cmd.Flags().StringSliceVar(&opts.Platforms, "platforms", nil, "Restrict which platforms can be connected")
	cmd.Flags().BoolVar(&showCalendar, "show-calendar", false, "Show the content calendar on the linking page")
	cmd.Flags().BoolVar(&readonlyCalendar, "readonly-calendar", false, "Make the calendar read-only")
	cmd.Flags().StringVar(&opts.ConnectTitle, "connect-title", "", "Custom heading for the linking page")
	cmd.Flags().StringVar(&opts.ConnectDescription, "connect-description", "", "Custom description for the linking page")
	registerStaticCompletions(cmd, "platforms", api.PlatformNames())

	return cmd
}

func newJWTValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate TOKEN",
		Short: "Check whether a linking token is still valid",
		Args:  cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			result, err := client.Users().ValidateJWT(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if isJSON(cmd) {
				return printJSON(cmd, result)
			}

			valid, _ := result["valid"].(bool)
			if valid {
				printIfNotQuiet(cmd, "Token is valid")
				if username, ok := result["username"].(string); ok && username != "" {
					printIfNotQuiet(cmd, " for profile %s", username)
				}
				printIfNotQuiet(cmd, "\n")
				return nil
			}
			return fmt.Errorf("token is invalid or expired")
		}),
	}
}

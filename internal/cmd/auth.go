package cmd

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/upload-post/uploadpost-cli/internal/api"
	"github.com/upload-post/uploadpost-cli/internal/config"
	"github.com/upload-post/uploadpost-cli/internal/validation"
)

// newAuthCmd returns the auth command with subcommands
func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "auth",
		Aliases: []string{"au"},
		Short:   "Manage authentication credentials",
		Long:    "Configure and manage the Upload-Post API key stored securely in your OS keychain.",
	}

	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthStatusCmd())
	cmd.AddCommand(newAuthLogoutCmd())

	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var (
		apiKey  string
		baseURL string
		envFile string
		verify  bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save the API key to the OS keychain",
		Long: strings.TrimSpace(`
Save the Upload-Post API key securely to your OS keychain.

Generate a key in the Upload-Post dashboard under API Keys. An optional base
URL override is stored alongside the key for staging or gateway setups.
`),
		Example: strings.TrimSpace(`
  # Store a key
  uploadpost auth login --api-key YOUR_API_KEY

  # Store a key together with a base URL override
  uploadpost auth login --api-key YOUR_API_KEY --base-url https://staging.upload-post.example/api

  # Load credentials from a .env file
  uploadpost auth login --env-file .env

  # Verify the key against the API before saving
  uploadpost auth login --api-key YOUR_API_KEY --verify
`),
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			if envFile != "" {
				envVars, err := godotenv.Read(envFile)
				if err != nil {
					return fmt.Errorf("failed to read --env-file %q: %w", envFile, err)
				}
				if apiKey == "" {
					apiKey = strings.TrimSpace(envVars["UPLOAD_POST_API_KEY"])
				}
				if baseURL == "" {
					baseURL = strings.TrimSpace(envVars["UPLOAD_POST_BASE_URL"])
				}
			}
			// The persistent --api-key/--base-url overrides double as login
			// inputs so `uploadpost --api-key K auth login` works.
			if apiKey == "" {
				apiKey = strings.TrimSpace(flags.APIKey)
			}
			if baseURL == "" {
				baseURL = strings.TrimSpace(flags.BaseURL)
			}

			if apiKey == "" {
				return fmt.Errorf("--api-key is required (or provide --env-file)")
			}
			baseURL = strings.TrimSuffix(baseURL, "/")
			if baseURL != "" {
				if err := validation.ValidateBaseURL(baseURL); err != nil {
					return fmt.Errorf("invalid --base-url: %w", err)
				}
			}

			if verify {
				client := api.New(baseURL, apiKey)
				if flags.Timeout > 0 {
					client.HTTP.Timeout = flags.Timeout
				}
				if _, err := client.Users().List(cmd.Context()); err != nil {
					return fmt.Errorf("API key verification failed: %w", err)
				}
			}

			if err := config.Save(config.Credentials{APIKey: apiKey, BaseURL: baseURL}); err != nil {
				return err
			}

			if isJSON(cmd) {
				return printJSON(cmd, map[string]any{
					"status":   "saved",
					"base_url": displayBaseURL(baseURL),
					"verified": verify,
				})
			}
			printIfNotQuiet(cmd, "API key saved to keychain.\n")
			return nil
		}),
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "Upload-Post API key")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "API base URL override (optional)")
	cmd.Flags().StringVar(&envFile, "env-file", "", "Read credentials from a .env file")
	cmd.Flags().BoolVar(&verify, "verify", false, "Verify the key against the API before saving")

	return cmd
}

func newAuthStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current authentication state",
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			creds, err := config.Load()
			if err != nil {
				return err
			}

			if isJSON(cmd) {
				return printJSON(cmd, map[string]any{
					"configured": true,
					"api_key":    maskKey(creds.APIKey),
					"base_url":   displayBaseURL(creds.BaseURL),
				})
			}

			w := newTabWriterFromCmd(cmd)
			_, _ = fmt.Fprintf(w, "API key:\t%s\n", maskKey(creds.APIKey))
			_, _ = fmt.Fprintf(w, "Base URL:\t%s\n", displayBaseURL(creds.BaseURL))
			return w.Flush()
		}),
	}
}

func newAuthLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API key",
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			if err := config.Delete(); err != nil {
				return err
			}
			if isJSON(cmd) {
				return printJSON(cmd, map[string]any{"status": "removed"})
			}
			printIfNotQuiet(cmd, "Stored credentials removed.\n")
			return nil
		}),
	}
}

// maskKey shows just enough of the key to identify it.
func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func displayBaseURL(baseURL string) string {
	if baseURL == "" {
		return api.DefaultBaseURL
	}
	return baseURL
}

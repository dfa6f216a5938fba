package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/upload-post/uploadpost-cli/internal/api"
	"github.com/upload-post/uploadpost-cli/internal/config"
)

// HandleError processes an error and returns a user-friendly message with suggestions
func HandleError(err error) string {
	if err == nil {
		return ""
	}

	var msg strings.Builder

	var structured *api.StructuredError
	var apiErr *api.APIError
	var transportErr *api.TransportError

	switch {
	case errors.Is(err, config.ErrNotConfigured):
		msg.WriteString("No API key configured.\n\n")
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Run: uploadpost auth login\n")
		msg.WriteString("  - Or set the UPLOAD_POST_API_KEY environment variable\n")

	case errors.As(err, &structured) && structured.Code == api.ErrValidation:
		fmt.Fprintf(&msg, "Error: %s\n", structured.Message)
		if len(structured.AllowedValues) > 0 {
			fmt.Fprintf(&msg, "\nAllowed values: %s\n", strings.Join(structured.AllowedValues, ", "))
		}
		if structured.Suggestion != "" {
			fmt.Fprintf(&msg, "\n%s\n", structured.Suggestion)
		}

	case errors.As(err, &apiErr):
		fmt.Fprintf(&msg, "API error (HTTP %d): %s\n\n", apiErr.StatusCode, apiErr.Message)
		msg.WriteString(suggestionsForStatusCode(apiErr.StatusCode, apiErr.Message))

	case errors.As(err, &transportErr) && transportErr.Timeout:
		msg.WriteString("Request timed out.\n\n")
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Large videos can exceed the default timeout; raise it with --timeout (e.g. --timeout 10m)\n")
		msg.WriteString("  - Use --async-upload so the server processes the upload in the background\n")
		msg.WriteString("  - Check your network connection\n")

	case strings.Contains(err.Error(), "connection refused"):
		msg.WriteString("Connection refused.\n\n")
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Verify the API base URL: uploadpost auth status\n")
		msg.WriteString("  - Check your network connection\n")

	case strings.Contains(err.Error(), "no such host"):
		msg.WriteString("DNS resolution failed.\n\n")
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Check the base URL spelling\n")
		msg.WriteString("  - Verify your DNS settings\n")

	case strings.Contains(err.Error(), "certificate"):
		msg.WriteString("TLS certificate error.\n\n")
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Verify the server's SSL certificate\n")
		msg.WriteString("  - Ensure you're using https:// correctly\n")

	default:
		fmt.Fprintf(&msg, "Error: %s\n", err.Error())
	}

	return msg.String()
}

func suggestionsForStatusCode(code int, body string) string {
	var suggestions strings.Builder
	suggestions.WriteString("Suggestions:\n")

	switch code {
	case 400, 422:
		suggestions.WriteString("  - Check your request parameters\n")
		suggestions.WriteString("  - Use --debug to see the full request\n")
		if strings.Contains(body, "required") {
			suggestions.WriteString("  - A required field may be missing\n")
		}

	case 401:
		suggestions.WriteString("  - Your API key may be invalid or revoked\n")
		suggestions.WriteString("  - Run: uploadpost auth login\n")

	case 403:
		suggestions.WriteString("  - Your plan may not include this feature\n")
		suggestions.WriteString("  - The target platform account may not be connected\n")

	case 404:
		suggestions.WriteString("  - The resource doesn't exist\n")
		suggestions.WriteString("  - Check the profile name or request ID\n")

	case 429:
		suggestions.WriteString("  - Too many requests or monthly upload quota reached\n")
		suggestions.WriteString("  - Wait and retry in a few seconds\n")

	case 500, 502, 503, 504:
		suggestions.WriteString("  - Server error - not your fault\n")
		suggestions.WriteString("  - Wait and retry\n")

	default:
		suggestions.WriteString("  - Use --debug for more details\n")
		suggestions.WriteString("  - Check the Upload-Post API documentation\n")
	}

	return suggestions.String()
}

// ExitWithError prints error with suggestions and exits
func ExitWithError(err error) {
	if err == nil {
		return
	}
	_, _ = fmt.Fprint(os.Stderr, HandleError(err))
	os.Exit(ExitCode(err))
}

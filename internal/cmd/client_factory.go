package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/upload-post/uploadpost-cli/internal/api"
	"github.com/upload-post/uploadpost-cli/internal/config"
)

type clientFactory struct {
	timeout   time.Duration
	userAgent string
}

func newClientFactory() *clientFactory {
	return &clientFactory{
		timeout:   flags.Timeout,
		userAgent: fmt.Sprintf("uploadpost-cli/%s", version),
	}
}

// client resolves credentials with flag > environment > keychain precedence
// and builds the API client.
func (f *clientFactory) client() (*api.Client, error) {
	apiKey := strings.TrimSpace(flags.APIKey)
	baseURL := strings.TrimSpace(flags.BaseURL)

	if apiKey == "" || baseURL == "" {
		creds, err := config.Load()
		if err != nil {
			if apiKey == "" {
				return nil, err
			}
		} else {
			if apiKey == "" {
				apiKey = creds.APIKey
			}
			if baseURL == "" {
				baseURL = creds.BaseURL
			}
		}
	}
	if baseURL == "" {
		baseURL = api.DefaultBaseURL
	}

	client := api.New(baseURL, apiKey)
	if f.timeout > 0 {
		client.HTTP.Timeout = f.timeout
	}
	if f.userAgent != "" {
		client.UserAgent = f.userAgent
	}
	return client, nil
}

package cmd

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/99designs/keyring"

	"github.com/upload-post/uploadpost-cli/internal/config"
)

// withSharedKeyring installs a single in-memory keyring that persists across
// opens, so login/status/logout observe each other's writes. The API key env
// var is cleared because it shadows the keychain in config.Load.
func withSharedKeyring(t *testing.T) keyring.Keyring {
	t.Helper()
	ring := keyring.NewArrayKeyring(nil)
	restore := config.SetOpenKeyring(func(keyring.Config) (keyring.Keyring, error) {
		return ring, nil
	})
	t.Cleanup(restore)
	t.Setenv("UPLOAD_POST_API_KEY", "")
	t.Setenv("UPLOAD_POST_BASE_URL", "")
	return ring
}

func storedCredentials(t *testing.T, ring keyring.Keyring) string {
	t.Helper()
	item, err := ring.Get("default")
	if err != nil {
		t.Fatalf("read stored credentials: %v", err)
	}
	return string(item.Data)
}

func TestAuthLogin_SavesKey(t *testing.T) {
	ring := withSharedKeyring(t)

	output := captureStdout(t, func() {
		if err := Execute(context.Background(), []string{"auth", "login", "--api-key", "up-1234567890"}); err != nil {
			t.Errorf("auth login: %v", err)
		}
	})
	if !strings.Contains(output, "API key saved to keychain.") {
		t.Errorf("output = %q", output)
	}

	stored := storedCredentials(t, ring)
	if !strings.Contains(stored, "up-1234567890") {
		t.Errorf("stored credentials = %q, want api key present", stored)
	}
}

func TestAuthLogin_RequiresKey(t *testing.T) {
	withSharedKeyring(t)

	var execErr error
	captureStderr(t, func() {
		execErr = Execute(context.Background(), []string{"auth", "login"})
	})
	if execErr == nil || !strings.Contains(execErr.Error(), "--api-key is required") {
		t.Errorf("err = %v", execErr)
	}
}

func TestAuthLogin_RejectsInvalidBaseURL(t *testing.T) {
	withSharedKeyring(t)

	var execErr error
	captureStderr(t, func() {
		execErr = Execute(context.Background(), []string{
			"auth", "login", "--api-key", "k-secret-value", "--base-url", "ftp://example.com",
		})
	})
	if execErr == nil || !strings.Contains(execErr.Error(), "invalid --base-url") {
		t.Errorf("err = %v", execErr)
	}
}

func TestAuthLogin_EnvFile(t *testing.T) {
	ring := withSharedKeyring(t)

	envPath := filepath.Join(t.TempDir(), ".env")
	contents := "UPLOAD_POST_API_KEY=env-file-key-99\nUPLOAD_POST_BASE_URL=https://gateway.example.com/api\n"
	if err := os.WriteFile(envPath, []byte(contents), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	captureStdout(t, func() {
		if err := Execute(context.Background(), []string{"auth", "login", "--env-file", envPath}); err != nil {
			t.Errorf("auth login --env-file: %v", err)
		}
	})

	stored := storedCredentials(t, ring)
	if !strings.Contains(stored, "env-file-key-99") {
		t.Errorf("stored credentials = %q, want env file key", stored)
	}
	if !strings.Contains(stored, "https://gateway.example.com/api") {
		t.Errorf("stored credentials = %q, want env file base URL", stored)
	}
}

func TestAuthLogin_VerifySuccess(t *testing.T) {
	ring := withSharedKeyring(t)

	handler := newRouteHandler(t).
		On("GET", "/api/uploadposts/users", func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Apikey verified-key-77" {
				t.Errorf("Authorization = %q", got)
			}
			jsonResponse(http.StatusOK, `{"success": true, "profiles": []}`)(w, r)
		})
	server := setupTestEnv(t, handler)
	// setupTestEnv points the env at the server; clear the key again so the
	// keychain path is exercised, but keep the private-address allowance.
	t.Setenv("UPLOAD_POST_API_KEY", "")

	captureStdout(t, func() {
		err := Execute(context.Background(), []string{
			"auth", "login", "--api-key", "verified-key-77", "--base-url", server.URL, "--verify",
		})
		if err != nil {
			t.Errorf("auth login --verify: %v", err)
		}
	})

	stored := storedCredentials(t, ring)
	if !strings.Contains(stored, "verified-key-77") {
		t.Errorf("stored credentials = %q, want verified key", stored)
	}
}

func TestAuthLogin_VerifyFailureDoesNotSave(t *testing.T) {
	ring := withSharedKeyring(t)

	handler := newRouteHandler(t).
		On("GET", "/api/uploadposts/users", jsonResponse(http.StatusUnauthorized, `{"message": "invalid api key"}`))
	server := setupTestEnv(t, handler)
	t.Setenv("UPLOAD_POST_API_KEY", "")

	var execErr error
	captureStderr(t, func() {
		execErr = Execute(context.Background(), []string{
			"auth", "login", "--api-key", "bad-key-00000", "--base-url", server.URL, "--verify",
		})
	})
	if execErr == nil || !strings.Contains(execErr.Error(), "verification failed") {
		t.Errorf("err = %v", execErr)
	}
	if _, err := ring.Get("default"); err == nil {
		t.Error("credentials saved despite failed verification")
	}
}

func TestAuthStatus_MasksKey(t *testing.T) {
	withSharedKeyring(t)

	captureStdout(t, func() {
		if err := Execute(context.Background(), []string{"auth", "login", "--api-key", "up-1234567890"}); err != nil {
			t.Fatalf("auth login: %v", err)
		}
	})

	output := captureStdout(t, func() {
		if err := Execute(context.Background(), []string{"auth", "status"}); err != nil {
			t.Errorf("auth status: %v", err)
		}
	})
	if !strings.Contains(output, "up-1...7890") {
		t.Errorf("status output = %q, want masked key", output)
	}
	if strings.Contains(output, "up-1234567890") {
		t.Error("status output must not contain the full key")
	}
	if !strings.Contains(output, "https://api.upload-post.com/api") {
		t.Errorf("status output = %q, want default base URL", output)
	}
}

func TestAuthStatus_NotConfigured(t *testing.T) {
	withSharedKeyring(t)

	var execErr error
	captureStderr(t, func() {
		execErr = Execute(context.Background(), []string{"auth", "status"})
	})
	if execErr == nil || !strings.Contains(execErr.Error(), "auth login") {
		t.Errorf("err = %v", execErr)
	}
}

func TestAuthLogout(t *testing.T) {
	ring := withSharedKeyring(t)

	captureStdout(t, func() {
		if err := Execute(context.Background(), []string{"auth", "login", "--api-key", "up-1234567890"}); err != nil {
			t.Fatalf("auth login: %v", err)
		}
	})

	output := captureStdout(t, func() {
		if err := Execute(context.Background(), []string{"auth", "logout"}); err != nil {
			t.Errorf("auth logout: %v", err)
		}
	})
	if !strings.Contains(output, "Stored credentials removed.") {
		t.Errorf("output = %q", output)
	}
	if _, err := ring.Get("default"); err == nil {
		t.Error("credentials still present after logout")
	}
}

func TestAuthLogout_Idempotent(t *testing.T) {
	withSharedKeyring(t)

	if err := Execute(context.Background(), []string{"auth", "logout", "--quiet"}); err != nil {
		t.Errorf("logout with nothing stored: %v", err)
	}
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", "****"},
		{"short", "****"},
		{"12345678", "****"},
		{"up-1234567890", "up-1...7890"},
	}
	for _, tt := range tests {
		if got := maskKey(tt.key); got != tt.want {
			t.Errorf("maskKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

// Package update checks GitHub for a newer CLI release. The check is best
// effort: any failure (offline, rate limited, bad JSON) yields nil rather
// than an error, so the version command never fails because of it.
package update

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// DefaultGitHubReleasesURL points at the latest-release endpoint for this
// CLI's repository.
const DefaultGitHubReleasesURL = "https://api.github.com/repos/upload-post/uploadpost-cli/releases/latest"

// CheckTimeout bounds the whole check; a slow GitHub must not hold up the
// version command.
const CheckTimeout = 5 * time.Second

// GitHubReleasesURL is swapped out in tests.
var GitHubReleasesURL = DefaultGitHubReleasesURL

type release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// CheckResult describes the installed version against the latest release.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateURL       string
	UpdateAvailable bool
}

// CheckForUpdate compares currentVersion against the latest published
// release. Dev builds skip the check; a failed check returns nil.
func CheckForUpdate(ctx context.Context, currentVersion string) *CheckResult {
	if currentVersion == "dev" || currentVersion == "" {
		return nil
	}

	latest := fetchLatestRelease(ctx)
	if latest == nil {
		return nil
	}

	result := &CheckResult{
		CurrentVersion: currentVersion,
		LatestVersion:  strings.TrimPrefix(latest.TagName, "v"),
		UpdateURL:      latest.HTMLURL,
	}

	current := normalizeVersion(currentVersion)
	tag := normalizeVersion(latest.TagName)
	if semver.IsValid(current) && semver.IsValid(tag) {
		result.UpdateAvailable = semver.Compare(tag, current) > 0
	}
	return result
}

func fetchLatestRelease(ctx context.Context) *release {
	ctx, cancel := context.WithTimeout(ctx, CheckTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, GitHubReleasesURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var r release
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil
	}
	return &r
}

// normalizeVersion prefixes "v" so build versions like "1.2.3" compare
// against release tags with the semver package.
func normalizeVersion(v string) string {
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}

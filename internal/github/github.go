// Package github provides access to the GitHub releases API.
package github

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/hashicorp/go-version"
)

// VersionInfo describes the local version in relation to the latest release.
type VersionInfo struct {
	Local         string
	Latest        string
	IsRemoteNewer bool
}

// NormalizeVersion strips a leading v prefix from a version string
// and reports an error when the remainder is not a valid version.
func NormalizeVersion(s string) (string, error) {
	v, err := version.NewVersion(strings.TrimPrefix(s, "v"))
	if err != nil {
		return "", fmt.Errorf("normalize version %q: %w", s, err)
	}
	return v.String(), nil
}

// AvailableUpdate compares the local version against the latest release of a
// GitHub repository and reports whether the remote is newer.
func AvailableUpdate(owner, repo, local string) (VersionInfo, error) {
	localV, err := version.NewVersion(strings.TrimPrefix(local, "v"))
	if err != nil {
		return VersionInfo{}, fmt.Errorf("invalid local version %q: %w", local, err)
	}
	latest, err := fetchLatestTag(owner, repo)
	if err != nil {
		return VersionInfo{}, err
	}
	latestV, err := version.NewVersion(strings.TrimPrefix(latest, "v"))
	if err != nil {
		return VersionInfo{}, fmt.Errorf("invalid remote version %q: %w", latest, err)
	}
	info := VersionInfo{
		Local:         localV.String(),
		Latest:        latestV.String(),
		IsRemoteNewer: latestV.GreaterThan(localV),
	}
	return info, nil
}

func fetchLatestTag(owner, repo string) (string, error) {
	url := fmt.Sprintf("https://api.github.com/repos/%s/%s/releases/latest", owner, repo)
	r, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("fetch latest release: %w", err)
	}
	defer r.Body.Close()
	if r.StatusCode >= 400 {
		return "", fmt.Errorf("fetch latest release: %s", r.Status)
	}
	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("fetch latest release: %w", err)
	}
	return release.TagName, nil
}

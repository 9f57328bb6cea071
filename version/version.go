// Package version checks GitHub for newer hyfetch releases.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hyfetch-cli/hyfetch/constant"
	"github.com/hyfetch-cli/hyfetch/internal/cache"
	"github.com/hyfetch-cli/hyfetch/network"
	"github.com/hyfetch-cli/hyfetch/util"
)

const latestKey = "latest"

var releases = cache.New[string, string]("version.json", time.Hour*24*2, nil)

// ReleasesAPI is queried for the latest release.
var ReleasesAPI = fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", constant.Repository)

// Latest returns the newest released version, without a "v" prefix.
// Answers are cached for two days.
func Latest(ctx context.Context) (string, error) {
	if cached, ok := releases.Get(latestKey).Get(); ok && cached != "" {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ReleasesAPI, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("github responded with %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	version := strings.TrimPrefix(release.TagName, "v")
	if version == "" {
		return "", errors.New("empty tag name")
	}

	_ = releases.Set(latestKey, version)
	return version, nil
}

// ReleaseURL links to the release page of version.
func ReleaseURL(version string) string {
	return fmt.Sprintf("https://github.com/%s/releases/tag/%s", constant.Repository, version)
}

// Package version compares release versions and looks up the latest published release.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/basetoken/basetoken/filesystem"
	"github.com/basetoken/basetoken/network"
	"github.com/basetoken/basetoken/where"
	"github.com/metafates/gache"
)

// releaseURL is the GitHub endpoint describing the latest release.
var releaseURL = "https://api.github.com/repos/basetoken/basetoken/releases/latest"

func cacher() *gache.Cache[string] {
	return gache.New[string](&gache.Options{
		Path:       filepath.Join(where.Cache(), "version.json"),
		Lifetime:   time.Hour * 24 * 2,
		FileSystem: &filesystem.GacheFs{},
	})
}

// Latest returns the latest released version without the "v" prefix.
// Lookups are cached for two days.
func Latest(ctx context.Context) (string, error) {
	c := cacher()

	if cached, expired, err := c.Get(); err == nil && !expired && cached != "" {
		return cached, nil
	}

	body, err := network.GetText(ctx, releaseURL)
	if err != nil {
		return "", err
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal([]byte(body), &release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	_ = c.Set(latest)
	return latest, nil
}

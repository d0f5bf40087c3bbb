package version

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrInvalidRelease is returned for tags that are not semantic versions.
var ErrInvalidRelease = errors.New("invalid release tag")

// Release is a canonical semantic version such as "v1.4.2" or "v0.3.0-rc1".
// Build metadata is dropped.
type Release string

// ParseRelease accepts tags with or without the "v" prefix.
// Missing minor and patch components count as zero.
func ParseRelease(tag string) (Release, error) {
	v := strings.TrimSpace(tag)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}

	if !semver.IsValid(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidRelease, tag)
	}

	return Release(semver.Canonical(v)), nil
}

// Compare returns 1 if r is newer than other, -1 if older and 0 if equal.
// A pre-release is older than the release it leads up to.
func (r Release) Compare(other Release) int {
	return semver.Compare(string(r), string(other))
}

// Prerelease returns the pre-release suffix without its dash, if any.
func (r Release) Prerelease() string {
	return strings.TrimPrefix(semver.Prerelease(string(r)), "-")
}

func (r Release) String() string {
	return strings.TrimPrefix(string(r), "v")
}

// Newer reports whether the latest tag is a newer release than current.
func Newer(latest, current string) (bool, error) {
	l, err := ParseRelease(latest)
	if err != nil {
		return false, err
	}

	c, err := ParseRelease(current)
	if err != nil {
		return false, err
	}

	return l.Compare(c) > 0, nil
}

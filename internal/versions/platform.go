package versions

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// MinimumPlatformVersion is the oldest platform release whose view services expose
// the request bodies this client sends
const MinimumPlatformVersion = ">= 5.0.0-0"

// versionPattern matches the version inside an origin string such as
// "Egeria OMAG Server Platform (version 5.4-SNAPSHOT)"
var versionPattern = regexp.MustCompile(`version\s+v?(\d+(?:\.\d+){0,2}(?:-[0-9A-Za-z.-]+)?)`)

// ParsePlatformVersion extracts the semantic version from the platform origin text
func ParsePlatformVersion(origin string) (*semver.Version, error) {
	m := versionPattern.FindStringSubmatch(origin)
	if m == nil {
		return nil, fmt.Errorf("no version found in platform origin %q", origin)
	}
	v, err := semver.NewVersion(m[1])
	if err != nil {
		return nil, fmt.Errorf("invalid platform version %q: %w", m[1], err)
	}
	return v, nil
}

// CheckPlatformVersion reports whether v satisfies constraint. An empty constraint
// means MinimumPlatformVersion.
func CheckPlatformVersion(v *semver.Version, constraint string) (bool, error) {
	if constraint == "" {
		constraint = MinimumPlatformVersion
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	return c.Check(v), nil
}

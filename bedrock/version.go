// Package bedrock loads Bedrock Edition entity resources: client entity render definitions and entity animations.
package bedrock

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is a Bedrock format or engine version such as 1.10.0. The zero value is Unspecified.
type Version struct {
	v *semver.Version
}

// Unspecified is used for optional versions missing from a file
var Unspecified = Version{}

func ParseVersion(s string) (Version, error) {
	v, err := semver.NewVersion(strings.TrimSpace(s))
	if err != nil {
		return Unspecified, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return Version{v}, nil
}

// MustParseVersion is like ParseVersion but panics on invalid input
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) IsSpecified() bool {
	return v.v != nil
}

// Compare returns -1, 0 or 1. Unspecified versions sort before every specified version.
func (v Version) Compare(o Version) int {
	switch {
	case v.v == nil && o.v == nil:
		return 0
	case v.v == nil:
		return -1
	case o.v == nil:
		return 1
	}
	return v.v.Compare(o.v)
}

func (v Version) String() string {
	if v.v == nil {
		return "unspecified"
	}
	return v.v.Original()
}

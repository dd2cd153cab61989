package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrMalformedVersion is returned when a version string is not exactly
// three dot-separated non-negative integers.
var ErrMalformedVersion = errors.New("malformed version")

// Version is a three-part upstream crate version
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// NewVersion builds a Version from its components
func NewVersion(major, minor, patch uint64) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// ParseVersion parses "major.minor.patch". Components must be non-negative
// integers that fit in a uint64.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q has %d components", ErrMalformedVersion, s, len(parts))
	}

	var nums [3]uint64
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %v", ErrMalformedVersion, s, err)
		}
		nums[i] = n
	}

	return NewVersion(nums[0], nums[1], nums[2]), nil
}

// Compare returns -1, 0 or 1 comparing major, then minor, then patch.
// Components compare numerically, so 1.9.0 sorts before 1.10.0.
func (v Version) Compare(other Version) int {
	return semver.Compare(v.Semver(), other.Semver())
}

// Less reports whether v sorts before other
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// String returns the display form, e.g. "1.2.3"
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Semver returns the canonical semantic version form, e.g. "v1.2.3"
func (v Version) Semver() string {
	return semver.Canonical("v" + v.String())
}

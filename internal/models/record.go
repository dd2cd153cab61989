package models

import (
	"sort"
	"strings"
)

// Record is one crate (or one feature metapackage of a crate) discovered
// in the package index. Records are never modified after parsing.
type Record struct {
	Crate   string  // Upstream crate name, case preserved
	Feature string  // Empty for the crate itself
	Version Version // Upstream crate version

	Package        string // Debian package name, e.g. librust-foo-dev
	PackageVersion string // Full Debian version, empty if it did not validate
}

// IsFeature returns true for feature metapackages
func (r Record) IsFeature() bool {
	return r.Feature != ""
}

// Title returns the first display column for this record
func (r Record) Title() string {
	if r.IsFeature() {
		return `  deps for feat "` + r.Feature + `"`
	}
	return r.Crate + " " + r.Version.String()
}

// CompareRecords orders records by crate name (case-insensitive), version,
// root before features, then feature name.
func CompareRecords(a, b Record) int {
	if a.Crate != b.Crate {
		if c := strings.Compare(strings.ToLower(a.Crate), strings.ToLower(b.Crate)); c != 0 {
			return c
		}
	}

	if c := a.Version.Compare(b.Version); c != 0 {
		return c
	}

	switch {
	case a.IsFeature() && !b.IsFeature():
		return 1
	case !a.IsFeature() && b.IsFeature():
		return -1
	}

	return strings.Compare(a.Feature, b.Feature)
}

// SortRecords sorts records in place, keeping equal records in input order
func SortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return CompareRecords(records[i], records[j]) < 0
	})
}

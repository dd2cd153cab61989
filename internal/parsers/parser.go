// Package parsers turns apt-cache package descriptions into crate records.
package parsers

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for descriptions that do not describe a crate. Callers
// drop such blocks without reporting them.
var (
	ErrNoPackage      = errors.New("no package name")
	ErrNoVersion      = errors.New("no version field")
	ErrBadVersion     = errors.New("invalid Version field")
	ErrUnrecognised   = errors.New("description matches no known crate pattern")
	ErrMissingFeature = errors.New("feature metapackage without feature name")
	ErrEmptyCrate     = errors.New("empty crate name")
)

// Match is the crate (and optional feature) a description refers to
type Match struct {
	Crate   string
	Feature string
}

// Matcher recognises one phrasing of a package description. Match reports
// ok=false when its phrase is absent, and an error when the phrase is present
// but the description around it is unusable.
type Matcher struct {
	Name  string
	Match func(text string) (m Match, ok bool, err error)
}

const (
	markerSource     = "contains the source for the Rust "
	markerDebianized = "code for Debianized Rust crate \""
	markerForTheRust = "for the Rust "
	markerFeature    = "- feature \""
	markerRustCrate  = "Rust crate "
)

// DefaultMatchers returns the description matchers in priority order. More
// specific phrasings come first so that generic ones cannot claim them.
func DefaultMatchers() []Matcher {
	return []Matcher{
		{Name: "source", Match: tokenAfter(markerSource)},
		{Name: "debianized", Match: quotedAfter(markerDebianized)},
		{Name: "feature", Match: matchFeature},
		{Name: "rust-crate", Match: tokenAfter(markerRustCrate)},
	}
}

// tokenAfter matches the space-delimited word following marker
func tokenAfter(marker string) func(string) (Match, bool, error) {
	return func(text string) (Match, bool, error) {
		_, rest, found := strings.Cut(text, marker)
		if !found {
			return Match{}, false, nil
		}
		crate := firstWord(rest)
		if crate == "" {
			return Match{}, true, fmt.Errorf("%w after %q", ErrEmptyCrate, marker)
		}
		return Match{Crate: crate}, true, nil
	}
}

// quotedAfter matches the text between marker and the next double quote
func quotedAfter(marker string) func(string) (Match, bool, error) {
	return func(text string) (Match, bool, error) {
		_, rest, found := strings.Cut(text, marker)
		if !found {
			return Match{}, false, nil
		}
		crate, _, _ := strings.Cut(rest, `"`)
		if crate == "" {
			return Match{}, true, fmt.Errorf("%w after %q", ErrEmptyCrate, marker)
		}
		return Match{Crate: crate}, true, nil
	}
}

// matchFeature handles feature metapackages:
//
//	This metapackage enables feature "std" for the Rust foo crate, by
//	pulling in any additional dependencies needed by that feature.
//	...
//	- feature "std"
func matchFeature(text string) (Match, bool, error) {
	_, rest, found := strings.Cut(text, markerForTheRust)
	if !found {
		return Match{}, false, nil
	}
	crate := firstWord(strings.TrimSpace(rest))
	if crate == "" {
		return Match{}, true, fmt.Errorf("%w after %q", ErrEmptyCrate, markerForTheRust)
	}

	_, rest, found = strings.Cut(text, markerFeature)
	if !found {
		return Match{}, true, fmt.Errorf("%w: crate %s", ErrMissingFeature, crate)
	}
	feature, _, _ := strings.Cut(rest, `"`)
	if feature == "" {
		return Match{}, true, fmt.Errorf("%w: crate %s", ErrMissingFeature, crate)
	}

	return Match{Crate: crate, Feature: feature}, true, nil
}

func firstWord(s string) string {
	word, _, _ := strings.Cut(s, " ")
	return word
}

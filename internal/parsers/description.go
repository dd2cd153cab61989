package parsers

import (
	"fmt"
	"strings"

	deb "github.com/knqyf263/go-deb-version"

	"github.com/ethanolivertroy/debcrates/internal/models"
)

const versionMarker = "Version: "

// DescriptionParser parses one package paragraph of `apt-cache show` output
type DescriptionParser struct {
	Exceptions Exceptions
	Matchers   []Matcher
}

// NewDescriptionParser creates a parser with the default matchers
func NewDescriptionParser(exceptions Exceptions) *DescriptionParser {
	return &DescriptionParser{
		Exceptions: exceptions,
		Matchers:   DefaultMatchers(),
	}
}

// Parse extracts a record from a paragraph whose leading "Package: " has
// already been stripped. It never returns a partially filled record.
func (p *DescriptionParser) Parse(block string) (models.Record, error) {
	fields := strings.Fields(block)
	if len(fields) == 0 {
		return models.Record{}, ErrNoPackage
	}
	pkg := fields[0]

	version, rawVersion, err := parseVersionField(block)
	if err != nil {
		return models.Record{}, fmt.Errorf("%s: %w", pkg, err)
	}

	m, err := p.matchCrate(pkg, joinContinuations(block))
	if err != nil {
		return models.Record{}, fmt.Errorf("%s: %w", pkg, err)
	}

	return models.Record{
		Crate:          m.Crate,
		Feature:        m.Feature,
		Version:        version,
		Package:        pkg,
		PackageVersion: validDebVersion(rawVersion),
	}, nil
}

func (p *DescriptionParser) matchCrate(pkg, text string) (Match, error) {
	for _, matcher := range p.Matchers {
		m, ok, err := matcher.Match(text)
		if err != nil {
			return Match{}, fmt.Errorf("%s matcher: %w", matcher.Name, err)
		}
		if ok {
			return m, nil
		}
	}

	if crate, ok := p.Exceptions.Lookup(pkg); ok {
		return Match{Crate: crate}, nil
	}

	return Match{}, ErrUnrecognised
}

// joinContinuations undoes line wrapping: a hyphen at the end of a line
// followed by the indented continuation is a broken word.
func joinContinuations(block string) string {
	text := strings.ReplaceAll(block, "-\n ", "-")
	return strings.ReplaceAll(text, "\n", "")
}

// parseVersionField returns the upstream version (the leading run of digits
// and dots of the Version field) and the whole field value.
func parseVersionField(block string) (models.Version, string, error) {
	_, rest, found := strings.Cut(block, versionMarker)
	if !found {
		return models.Version{}, "", ErrNoVersion
	}

	end := strings.IndexFunc(rest, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	if end < 0 {
		end = len(rest)
	}

	v, err := models.ParseVersion(rest[:end])
	if err != nil {
		return models.Version{}, "", fmt.Errorf("%w: %w", ErrBadVersion, err)
	}

	raw, _, _ := strings.Cut(rest, "\n")
	return v, strings.TrimSpace(raw), nil
}

func validDebVersion(raw string) string {
	if _, err := deb.NewVersion(raw); err != nil {
		return ""
	}
	return raw
}

package parsers

import (
	"strings"

	"github.com/ethanolivertroy/debcrates/internal/models"
)

const blockMarker = "Package: "

// SplitBlocks splits `apt-cache show` output into per-package paragraphs.
// Text before the first "Package: " is discarded, and each paragraph is
// returned trimmed, without the marker.
func SplitBlocks(index string) []string {
	segments := strings.Split(index, blockMarker)
	if len(segments) < 2 {
		return nil
	}

	blocks := make([]string, 0, len(segments)-1)
	for _, s := range segments[1:] {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		blocks = append(blocks, s)
	}
	return blocks
}

// IndexParser parses a whole package index into records
type IndexParser struct {
	desc *DescriptionParser
}

// NewIndexParser creates an index parser using the given exception table
func NewIndexParser(exceptions Exceptions) *IndexParser {
	return &IndexParser{desc: NewDescriptionParser(exceptions)}
}

// Parse returns one record per recognised paragraph, in index order.
// Paragraphs that do not describe a crate are skipped.
func (p *IndexParser) Parse(index string) []models.Record {
	var records []models.Record
	for _, block := range SplitBlocks(index) {
		r, err := p.desc.Parse(block)
		if err != nil {
			continue
		}
		records = append(records, r)
	}
	return records
}

package reporter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ethanolivertroy/debcrates/internal/models"
)

// TerminalReporter prints one line per entry: title, status and package,
// left aligned and separated by two spaces.
type TerminalReporter struct{}

// Report generates terminal output for the given entries
func (r *TerminalReporter) Report(entries []models.Entry) ([]byte, error) {
	width := 0
	for _, e := range entries {
		if n := utf8.RuneCountInString(e.Title()); n > width {
			width = n
		}
	}

	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("%-*s  %-9s  %s\n", width, e.Title(), e.Status(), e.Package))
	}

	return []byte(sb.String()), nil
}

package reporter

import "github.com/ethanolivertroy/debcrates/internal/models"

// Reporter is the interface for output formatters
type Reporter interface {
	// Report generates output for the given entries, already in display order
	Report(entries []models.Entry) ([]byte, error)
}

// Get returns a reporter for the specified format
func Get(format string) Reporter {
	switch format {
	case "json":
		return &JSONReporter{}
	case "table":
		return &TableReporter{}
	default:
		return &TerminalReporter{}
	}
}

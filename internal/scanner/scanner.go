package scanner

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"github.com/ethanolivertroy/debcrates/internal/clients"
	"github.com/ethanolivertroy/debcrates/internal/log"
	"github.com/ethanolivertroy/debcrates/internal/models"
	"github.com/ethanolivertroy/debcrates/internal/parsers"
)

// Scanner orchestrates the crate inventory
type Scanner struct {
	config *models.Config
	parser *parsers.IndexParser
	index  clients.Source
	status clients.Source
}

// New creates a Scanner that reads from the configured commands or files
func New(config *models.Config, fs afero.Fs) (*Scanner, error) {
	index, err := newSource(fs, config.IndexFile, config.IndexCommand)
	if err != nil {
		return nil, fmt.Errorf("index source: %w", err)
	}
	status, err := newSource(fs, config.StatusFile, config.StatusCommand)
	if err != nil {
		return nil, fmt.Errorf("status source: %w", err)
	}
	return NewWithSources(config, index, status), nil
}

// NewWithSources creates a Scanner reading from the given sources
func NewWithSources(config *models.Config, index, status clients.Source) *Scanner {
	exceptions := parsers.DefaultExceptions().With(config.Exceptions)
	return &Scanner{
		config: config,
		parser: parsers.NewIndexParser(exceptions),
		index:  index,
		status: status,
	}
}

func newSource(fs afero.Fs, path, cmdline string) (clients.Source, error) {
	if path != "" {
		src, err := clients.NewFileSource(fs, path)
		if err != nil {
			return nil, err
		}
		return src, nil
	}
	src, err := clients.NewCommandSource(cmdline)
	if err != nil {
		return nil, err
	}
	return src, nil
}

// Scan performs the full inventory and returns entries in display order
func (s *Scanner) Scan(ctx context.Context) ([]models.Entry, error) {
	// Step 1: Read and parse the package index
	index, err := s.index.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query package index: %w", err)
	}
	records := s.parser.Parse(index)
	log.Debugf("parsed %s crate packages", humanize.Comma(int64(len(records))))

	// Step 2: Filter by search term
	records = FilterByCrate(records, s.config.SearchTerm)

	// Step 3: Cross-reference with installed packages
	listing, err := s.status.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list installed packages: %w", err)
	}
	installed := Correlate(records, listing, s.config.FamilyMarker)
	log.Debugf("%s of %s packages installed",
		humanize.Comma(int64(installed.Len())), humanize.Comma(int64(len(records))))

	// Step 4: Sort and join with installation status
	models.SortRecords(records)
	entries := models.Project(records, installed)

	if s.config.InstalledOnly {
		entries = installedOnly(entries)
	}

	return entries, nil
}

// FilterByCrate keeps records whose crate name contains term. An empty
// term keeps everything. Relative order is preserved.
func FilterByCrate(records []models.Record, term string) []models.Record {
	if term == "" {
		return records
	}
	var filtered []models.Record
	for _, r := range records {
		if strings.Contains(r.Crate, term) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func installedOnly(entries []models.Entry) []models.Entry {
	var filtered []models.Entry
	for _, e := range entries {
		if e.Installed {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

package reporter

import (
	"encoding/json"

	"github.com/scylladb/go-set/strset"

	"github.com/ethanolivertroy/debcrates/internal/models"
)

// JSONReporter outputs entries in JSON format
type JSONReporter struct{}

// jsonOutput represents the JSON output structure
type jsonOutput struct {
	Summary jsonSummary `json:"summary"`
	Entries []jsonEntry `json:"entries"`
}

type jsonSummary struct {
	Total     int `json:"total"`
	Installed int `json:"installed"`
	Crates    int `json:"crates"`
}

type jsonEntry struct {
	Crate          string `json:"crate"`
	Feature        string `json:"feature,omitempty"`
	Version        string `json:"version"`
	Semver         string `json:"semver"`
	Package        string `json:"package"`
	PackageVersion string `json:"package_version,omitempty"`
	Installed      bool   `json:"installed"`
}

// Report generates JSON output for the given entries
func (r *JSONReporter) Report(entries []models.Entry) ([]byte, error) {
	output := jsonOutput{
		Summary: jsonSummary{Total: len(entries)},
		Entries: make([]jsonEntry, 0, len(entries)),
	}

	crates := strset.New()
	for _, e := range entries {
		crates.Add(e.Crate)
		if e.Installed {
			output.Summary.Installed++
		}

		output.Entries = append(output.Entries, jsonEntry{
			Crate:          e.Crate,
			Feature:        e.Feature,
			Version:        e.Version.String(),
			Semver:         e.Version.Semver(),
			Package:        e.Package,
			PackageVersion: e.PackageVersion,
			Installed:      e.Installed,
		})
	}
	output.Summary.Crates = crates.Size()

	return json.MarshalIndent(output, "", "  ")
}

package scanner

import (
	"strings"

	"github.com/ethanolivertroy/debcrates/internal/models"
)

// installedStatus is the dpkg -l desired/actual state for an installed package
const installedStatus = "ii"

// Correlate marks every record whose package name occurs in an installed
// line of the dpkg listing. Only lines containing marker are considered.
//
// Matching is by substring, so librust-foo-dev is also marked by a line for
// librust-foo-derive-dev.
func Correlate(records []models.Record, listing, marker string) models.InstalledSet {
	installed := models.NewInstalledSet()

	for _, line := range strings.Split(listing, "\n") {
		if !strings.Contains(line, marker) {
			continue
		}
		if !strings.HasPrefix(line, installedStatus) {
			continue
		}
		for _, r := range records {
			if strings.Contains(line, r.Package) {
				installed.Mark(r.Package)
			}
		}
	}

	return installed
}

package reporter

import (
	"bytes"

	"github.com/olekukonko/tablewriter"

	"github.com/ethanolivertroy/debcrates/internal/models"
)

// TableReporter renders entries as a borderless table with a header row
type TableReporter struct{}

// Report generates a table for the given entries
func (r *TableReporter) Report(entries []models.Entry) ([]byte, error) {
	if len(entries) == 0 {
		return []byte("No crate packages found\n"), nil
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Crate", "Status", "Package"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, e := range entries {
		table.Append([]string{e.Title(), e.Status(), e.Package})
	}
	table.Render()

	return buf.Bytes(), nil
}

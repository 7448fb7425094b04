// Package export renders the curated selection into the formats handed to
// the librarian: CSV, spreadsheet (with or without embedded poster art)
// and a printable HTML document.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cinedex/cinedex/internal/catalog"
)

// columnHeaders is the shared column order of all tabular exports.
var columnHeaders = []string{"Title", "Year", "Director", "Rating", "Summary", "Source"}

func recordRow(record catalog.Record) []string {
	return []string{
		record.Title,
		record.Year,
		record.Director,
		record.Rating,
		record.Summary,
		string(record.Provider),
	}
}

// WriteCSV writes the selection as CSV.
func WriteCSV(w io.Writer, records []catalog.Record) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(columnHeaders); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(recordRow(record)); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", record.Title, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/cinedex/cinedex/internal/catalog"
	"github.com/cinedex/cinedex/internal/poster"
)

const sheetName = "Movies"

// PosterSource fetches poster bytes for embedding. *poster.Fetcher
// satisfies it; tests substitute a fake.
type PosterSource interface {
	Fetch(ctx context.Context, posterURL string) ([]byte, error)
}

// WriteWorkbook writes the selection as a plain spreadsheet.
func WriteWorkbook(w io.Writer, records []catalog.Record) error {
	file, err := newWorkbook(records, false)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	if _, err := file.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteWorkbookWithPosters writes the selection as a spreadsheet with a
// poster thumbnail embedded per row. A failed poster download degrades
// that cell to placeholder text; it never aborts the export.
func WriteWorkbookWithPosters(ctx context.Context, w io.Writer, records []catalog.Record, posters PosterSource) error {
	file, err := newWorkbook(records, true)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	for i, record := range records {
		row := i + 2
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}

		if err := file.SetRowHeight(sheetName, row, 105); err != nil {
			return err
		}

		thumb, err := fetchThumbnail(ctx, posters, record)
		if err != nil {
			slog.Warn("Poster unavailable for spreadsheet", "movie", record.Title, "error", err)
			if err := file.SetCellValue(sheetName, cell, "No image"); err != nil {
				return err
			}
			continue
		}

		err = file.AddPictureFromBytes(sheetName, cell, &excelize.Picture{
			Extension: ".jpg",
			File:      thumb,
			Format:    &excelize.GraphicOptions{OffsetX: 5, OffsetY: 5},
		})
		if err != nil {
			return fmt.Errorf("failed to embed poster for %s: %w", record.Title, err)
		}
	}

	if _, err := file.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func fetchThumbnail(ctx context.Context, posters PosterSource, record catalog.Record) ([]byte, error) {
	if !record.HasPoster() {
		return nil, fmt.Errorf("no poster URL")
	}
	data, err := posters.Fetch(ctx, record.PosterURL)
	if err != nil {
		return nil, err
	}
	return poster.Thumbnail(data)
}

// newWorkbook builds the workbook skeleton: header row, styles and the
// data columns. When withPosterColumn is set, column A is reserved for
// the embedded artwork and data starts at column B.
func newWorkbook(records []catalog.Record, withPosterColumn bool) (*excelize.File, error) {
	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	cellStyle, err := file.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cell style: %w", err)
	}

	headers := columnHeaders
	widths := []float64{25, 8, 20, 8, 50, 10}
	if withPosterColumn {
		headers = append([]string{"Poster"}, headers...)
		widths = append([]float64{15}, widths...)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
		if err := file.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}

		column, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetColWidth(sheetName, column, column, widths[col]); err != nil {
			return nil, err
		}
	}

	dataStart := 1
	if withPosterColumn {
		dataStart = 2
	}

	for i, record := range records {
		row := i + 2
		for j, value := range recordRow(record) {
			cell, err := excelize.CoordinatesToCellName(dataStart+j, row)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
			if err := file.SetCellStyle(sheetName, cell, cell, cellStyle); err != nil {
				return nil, err
			}
		}
	}

	return file, nil
}

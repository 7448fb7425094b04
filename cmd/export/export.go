// Package export implements the selection export command.
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/cinedex/cinedex/internal/catalog"
	"github.com/cinedex/cinedex/internal/config"
	"github.com/cinedex/cinedex/internal/export"
	"github.com/cinedex/cinedex/internal/poster"
	"github.com/cinedex/cinedex/internal/selection"
)

// Options holds the parameters of one export invocation.
type Options struct {
	Format      string
	WithPosters bool
	Output      string
	SelectionDB string
}

type writeFunc func(io.Writer, []catalog.Record) error

// writerFor resolves the format once, yielding both the file extension and
// the matching writer.
func writerFor(opts Options) (writeFunc, string, error) {
	switch opts.Format {
	case "csv":
		return export.WriteCSV, "csv", nil
	case "html":
		return func(w io.Writer, records []catalog.Record) error {
			return export.WritePrintable(w, records, time.Now())
		}, "html", nil
	case "xlsx":
		if opts.WithPosters {
			return func(w io.Writer, records []catalog.Record) error {
				return export.WriteWorkbookWithPosters(context.Background(), w, records, poster.NewFetcher())
			}, "xlsx", nil
		}
		return export.WriteWorkbook, "xlsx", nil
	default:
		return nil, "", fmt.Errorf("unsupported export format %q", opts.Format)
	}
}

// Run exports the current selection in the requested format.
func Run(opts Options) error {
	write, extension, err := writerFor(opts)
	if err != nil {
		return err
	}

	store, err := selection.Open(opts.SelectionDB)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.List()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		slog.Warn("Selection is empty, nothing to export")
		return nil
	}

	outputPath := opts.Output
	if outputPath == "" {
		outputPath = filepath.Join(config.ExportDir, export.Filename(extension, time.Now()))
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := write(file, records); err != nil {
		return err
	}

	slog.Info("Export written", "format", opts.Format, "movies", len(records), "path", outputPath)
	return nil
}

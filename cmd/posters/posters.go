// Package posters implements the poster download command.
package posters

import (
	"archive/zip"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cinedex/cinedex/internal/catalog"
	"github.com/cinedex/cinedex/internal/poster"
	"github.com/cinedex/cinedex/internal/selection"
)

// Options holds the parameters of one poster download invocation.
type Options struct {
	Dir         string
	Zip         string
	SelectionDB string
}

// Run downloads the posters of the current selection, either into a
// directory or into one ZIP archive.
func Run(opts Options) error {
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
		slog.Warn("Selection is empty, no posters to download")
		return nil
	}

	fetcher := poster.NewFetcher()
	ctx := context.Background()

	if opts.Zip != "" {
		return writeZip(ctx, fetcher, opts.Zip, records)
	}
	return writeDir(ctx, fetcher, opts.Dir, records)
}

func writeZip(ctx context.Context, fetcher *poster.Fetcher, path string, records []catalog.Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create zip file: %w", err)
	}
	defer func() { _ = file.Close() }()

	zipWriter := zip.NewWriter(file)
	count, err := fetcher.BuildZip(ctx, zipWriter, records)
	if err != nil {
		return err
	}
	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("failed to finalize zip: %w", err)
	}

	slog.Info("Poster archive written", "path", path, "posters", count)
	return nil
}

func writeDir(ctx context.Context, fetcher *poster.Fetcher, dir string, records []catalog.Record) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create poster directory: %w", err)
	}

	count := 0
	for _, record := range records {
		if !record.HasPoster() {
			slog.Warn("No poster available", "movie", record.Title)
			continue
		}

		data, err := fetcher.Fetch(ctx, record.PosterURL)
		if err != nil {
			slog.Warn("Poster download failed", "movie", record.Title, "error", err)
			continue
		}

		path := filepath.Join(dir, poster.SafeFilename(record.Title, record.Year))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write poster for %s: %w", record.Title, err)
		}
		count++
	}

	slog.Info("Posters downloaded", "dir", dir, "posters", count)
	return nil
}

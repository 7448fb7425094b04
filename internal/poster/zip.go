package poster

import (
	"archive/zip"
	"context"
	"fmt"
	"log/slog"

	"github.com/cinedex/cinedex/internal/catalog"
)

// BuildZip writes a ZIP archive of the selection's posters to w and
// returns how many images made it in. Records without artwork are skipped;
// a failed download is logged and skipped, it never aborts the archive.
func (f *Fetcher) BuildZip(ctx context.Context, w *zip.Writer, records []catalog.Record) (int, error) {
	count := 0
	for _, record := range records {
		if !record.HasPoster() {
			continue
		}

		data, err := f.Fetch(ctx, record.PosterURL)
		if err != nil {
			slog.Warn("Skipping poster", "movie", record.Title, "error", err)
			continue
		}

		entry, err := w.Create(SafeFilename(record.Title, record.Year))
		if err != nil {
			return count, fmt.Errorf("failed to create zip entry for %s: %w", record.Title, err)
		}
		if _, err := entry.Write(data); err != nil {
			return count, fmt.Errorf("failed to write zip entry for %s: %w", record.Title, err)
		}
		count++
	}

	return count, nil
}

// Package search implements the catalog search command.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cinedex/cinedex/internal/catalog"
	cderrors "github.com/cinedex/cinedex/internal/errors"
	"github.com/cinedex/cinedex/internal/fileutil"
	"github.com/cinedex/cinedex/internal/providers"
	"github.com/cinedex/cinedex/internal/selection"
	"github.com/cinedex/cinedex/internal/tui"
)

// Options holds the parameters of one search invocation.
type Options struct {
	Query       string
	Provider    string
	Year        int
	MinRating   float64
	JSONOutput  string
	YAMLOutput  string
	Pick        bool
	SelectionDB string
}

// Run executes a search and renders the results.
func Run(opts Options) error {
	provider, err := catalog.ParseProvider(opts.Provider)
	if err != nil {
		return err
	}

	service := providers.NewService()
	filters := catalog.Filters{Year: opts.Year, MinRating: opts.MinRating}

	records, err := service.SearchWithFilters(context.Background(), opts.Query, provider, filters)
	if err != nil {
		if cderrors.IsConfigMissingError(err) {
			slog.Warn("API key not configured, nothing searched", "provider", provider)
			return nil
		}
		return err
	}

	if len(records) == 0 {
		slog.Info("No results", "query", opts.Query, "provider", provider)
		return nil
	}

	printResults(records)

	if opts.JSONOutput != "" {
		if err := fileutil.WriteJSONFile(records, opts.JSONOutput); err != nil {
			return err
		}
		slog.Info("Wrote JSON results", "path", opts.JSONOutput)
	}

	if opts.YAMLOutput != "" {
		if err := fileutil.WriteYAMLFile(records, opts.YAMLOutput); err != nil {
			return err
		}
		slog.Info("Wrote YAML results", "path", opts.YAMLOutput)
	}

	if opts.Pick {
		return pickIntoSelection(opts.Query, opts.SelectionDB, records)
	}

	return nil
}

func printResults(records []catalog.Record) {
	for i, record := range records {
		fmt.Fprintf(os.Stdout, "%2d. %s (%s)  %s  dir. %s  [%s]\n",
			i+1, record.Title, record.Year, record.Rating, record.Director, record.QualifiedID())
	}
}

func pickIntoSelection(query, dbPath string, records []catalog.Record) error {
	result, err := tui.Pick(query, records)
	if err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}

	if result.Action != tui.ActionPicked || result.Record == nil {
		return nil
	}

	store, err := selection.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	added, err := store.Add(*result.Record)
	if err != nil {
		return err
	}

	if added {
		slog.Info("Added to selection", "movie", result.Record.Title)
	} else {
		slog.Info("Already in selection", "movie", result.Record.Title)
	}
	return nil
}

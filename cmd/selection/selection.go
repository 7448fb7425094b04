// Package selection implements the commands managing the curated list.
package selection

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cinedex/cinedex/internal/catalog"
	"github.com/cinedex/cinedex/internal/providers"
	"github.com/cinedex/cinedex/internal/selection"
)

// List prints the current selection in insertion order.
func List(dbPath string) error {
	store, err := selection.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.List()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		slog.Info("Selection is empty")
		return nil
	}

	for i, record := range records {
		fmt.Fprintf(os.Stdout, "%2d. %s (%s)  dir. %s  [%s]\n",
			i+1, record.Title, record.Year, record.Director, record.QualifiedID())
	}
	return nil
}

// Add looks a movie up by provider-native id and stores it in the selection.
func Add(dbPath, providerName, id string) error {
	provider, err := catalog.ParseProvider(providerName)
	if err != nil {
		return err
	}

	service := providers.NewService()
	record, err := service.Lookup(context.Background(), provider, id)
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	store, err := selection.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	added, err := store.Add(record)
	if err != nil {
		return err
	}

	if added {
		slog.Info("Added to selection", "movie", record.Title, "id", record.QualifiedID())
	} else {
		slog.Info("Already in selection", "movie", record.Title)
	}
	return nil
}

// Remove deletes one movie from the selection.
func Remove(dbPath, providerName, id string) error {
	provider, err := catalog.ParseProvider(providerName)
	if err != nil {
		return err
	}

	store, err := selection.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	removed, err := store.Remove(provider, id)
	if err != nil {
		return err
	}

	if !removed {
		slog.Warn("Movie was not in the selection", "provider", provider, "id", id)
		return nil
	}
	slog.Info("Removed from selection", "provider", provider, "id", id)
	return nil
}

// Clear empties the selection.
func Clear(dbPath string) error {
	store, err := selection.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	cleared, err := store.Clear()
	if err != nil {
		return err
	}

	slog.Info("Selection cleared", "removed", cleared)
	return nil
}

package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cinedex/cinedex/internal/catalog"
	"github.com/cinedex/cinedex/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSelection(t *testing.T) string {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "selection.db")
	store, err := selection.Open(dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	records := []catalog.Record{
		{
			ID:       "603",
			Title:    "The Matrix",
			Year:     "1999",
			Summary:  "A hacker discovers reality is a simulation.",
			Rating:   "8.2",
			Director: "Lana Wachowski",
			Provider: catalog.ProviderTMDB,
		},
		{
			ID:       "tt1375666",
			Title:    "Inception",
			Year:     "2010",
			Summary:  "A thief steals secrets through dreams.",
			Rating:   "8.8",
			Director: "Christopher Nolan",
			Provider: catalog.ProviderOMDB,
		},
	}
	for _, record := range records {
		_, err := store.Add(record)
		require.NoError(t, err)
	}
	return dbPath
}

func TestRunWritesCSV(t *testing.T) {
	dbPath := seedSelection(t)
	outputPath := filepath.Join(t.TempDir(), "movies.csv")

	err := Run(Options{Format: "csv", Output: outputPath, SelectionDB: dbPath})
	require.NoError(t, err)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Title,Year,Director,Rating,Summary,Source")
	assert.Contains(t, string(content), "The Matrix")
	assert.Contains(t, string(content), "Inception")
}

func TestRunWritesHTML(t *testing.T) {
	dbPath := seedSelection(t)
	outputPath := filepath.Join(t.TempDir(), "movies.html")

	err := Run(Options{Format: "html", Output: outputPath, SelectionDB: dbPath})
	require.NoError(t, err)

	content, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<html")
	assert.Contains(t, string(content), "The Matrix")
}

func TestRunWritesXLSX(t *testing.T) {
	dbPath := seedSelection(t)
	outputPath := filepath.Join(t.TempDir(), "movies.xlsx")

	err := Run(Options{Format: "xlsx", Output: outputPath, SelectionDB: dbPath})
	require.NoError(t, err)

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	dbPath := seedSelection(t)

	err := Run(Options{Format: "pdf", SelectionDB: dbPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}

func TestRunEmptySelectionIsNoop(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "empty.db")
	store, err := selection.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	outputPath := filepath.Join(t.TempDir(), "movies.csv")
	err = Run(Options{Format: "csv", Output: outputPath, SelectionDB: dbPath})
	require.NoError(t, err)

	_, statErr := os.Stat(outputPath)
	assert.True(t, os.IsNotExist(statErr))
}

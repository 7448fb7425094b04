package posters

import (
	"archive/zip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/cinedex/cinedex/internal/catalog"
	"github.com/cinedex/cinedex/internal/poster"
	"github.com/cinedex/cinedex/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func posterServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.jpg" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestWriteDirDownloadsPosters(t *testing.T) {
	server := posterServer(t)
	fetcher := poster.NewFetcher(poster.WithHTTPClient(server.Client()))

	records := []catalog.Record{
		{Title: "The Matrix", Year: "1999", PosterURL: server.URL + "/matrix.jpg"},
		{Title: "No Poster", Year: "2001"},
		{Title: "Gone", Year: "2002", PosterURL: server.URL + "/missing.jpg"},
		{Title: "Partial", Year: catalog.Sentinel, PosterURL: server.URL + "/partial.jpg"},
	}

	dir := t.TempDir()
	err := writeDir(context.Background(), fetcher, dir, records)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "The Matrix_1999.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(content))

	// A record with an unknown year still lands as a flat file.
	_, err = os.Stat(filepath.Join(dir, "Partial_NA.jpg"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "records without a reachable poster are skipped")
}

func TestWriteZipBuildsArchive(t *testing.T) {
	server := posterServer(t)
	fetcher := poster.NewFetcher(poster.WithHTTPClient(server.Client()))

	records := []catalog.Record{
		{Title: "The Matrix", Year: "1999", PosterURL: server.URL + "/matrix.jpg"},
		{Title: "Inception", Year: "2010", PosterURL: server.URL + "/inception.jpg"},
	}

	path := filepath.Join(t.TempDir(), "posters.zip")
	err := writeZip(context.Background(), fetcher, path, records)
	require.NoError(t, err)

	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	var names []string
	for _, file := range reader.File {
		names = append(names, file.Name)
	}
	assert.ElementsMatch(t, []string{"The Matrix_1999.jpg", "Inception_2010.jpg"}, names)
}

func TestRunEmptySelectionIsNoop(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "empty.db")
	store, err := selection.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	dir := filepath.Join(t.TempDir(), "posters")
	err = Run(Options{Dir: dir, SelectionDB: dbPath})
	require.NoError(t, err)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

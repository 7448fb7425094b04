package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cderrors "github.com/cinedex/cinedex/internal/errors"
)

type fakeSearcher struct {
	records []Record
	err     error
	calls   int
}

func (f *fakeSearcher) Search(_ context.Context, _ string) ([]Record, error) {
	f.calls++
	return f.records, f.err
}

func (f *fakeSearcher) Lookup(_ context.Context, id string) (Record, error) {
	f.calls++
	if f.err != nil {
		return Record{}, f.err
	}
	return Record{ID: id, Title: "Found", Provider: ProviderTMDB}, nil
}

func TestSearchEmptyQueryIssuesNoCall(t *testing.T) {
	searcher := &fakeSearcher{}
	service := NewService(map[Provider]Searcher{ProviderTMDB: searcher})

	records, err := service.Search(context.Background(), "", ProviderTMDB)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 0, searcher.calls)
}

func TestSearchUnknownProvider(t *testing.T) {
	service := NewService(map[Provider]Searcher{})

	records, err := service.Search(context.Background(), "matrix", Provider("Netflix"))
	assert.Empty(t, records)
	assert.True(t, cderrors.IsUnknownProviderError(err))
}

func TestSearchConfigMissingSurfaced(t *testing.T) {
	searcher := &fakeSearcher{err: cderrors.NewConfigMissingError("TMDB")}
	service := NewService(map[Provider]Searcher{ProviderTMDB: searcher})

	records, err := service.Search(context.Background(), "matrix", ProviderTMDB)
	assert.Empty(t, records)
	assert.True(t, cderrors.IsConfigMissingError(err))
}

func TestSearchFailureYieldsEmptyListNotError(t *testing.T) {
	searcher := &fakeSearcher{err: fmt.Errorf("connection reset by peer")}
	service := NewService(map[Provider]Searcher{ProviderOMDB: searcher})

	records, err := service.Search(context.Background(), "matrix", ProviderOMDB)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 1, searcher.calls)
}

func TestSearchWithFiltersAppliesPostFilter(t *testing.T) {
	searcher := &fakeSearcher{records: []Record{
		{ID: "1", Year: "2020", Rating: "8.0"},
		{ID: "2", Year: "1999", Rating: "9.0"},
	}}
	service := NewService(map[Provider]Searcher{ProviderTMDB: searcher})

	records, err := service.SearchWithFilters(context.Background(), "matrix", ProviderTMDB, Filters{Year: 2020})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].ID)
}

func TestParseProvider(t *testing.T) {
	provider, err := ParseProvider("tmdb")
	require.NoError(t, err)
	assert.Equal(t, ProviderTMDB, provider)

	provider, err = ParseProvider("OMDB")
	require.NoError(t, err)
	assert.Equal(t, ProviderOMDB, provider)

	_, err = ParseProvider("criterion")
	assert.True(t, cderrors.IsUnknownProviderError(err))
}

func TestLookupRoutesToProvider(t *testing.T) {
	searcher := &fakeSearcher{}
	service := NewService(map[Provider]Searcher{ProviderTMDB: searcher})

	record, err := service.Lookup(context.Background(), ProviderTMDB, "603")
	require.NoError(t, err)
	assert.Equal(t, "TMDB:603", record.QualifiedID())

	_, err = service.Lookup(context.Background(), ProviderOMDB, "tt0133093")
	assert.True(t, cderrors.IsUnknownProviderError(err))
}

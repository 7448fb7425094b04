package omdb

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/cinedex/cinedex/internal/catalog"
	"github.com/cinedex/cinedex/internal/errors"
)

const requestLimitMessage = "Request limit reached!"

// Search runs a movie search and normalizes the first catalog.MaxResults
// hits. The OMDb bulk endpoint returns only title, year and poster, so each
// hit costs one extra full-record call; if that call fails the hit degrades
// to a partial record built from the bulk data.
func (c *Client) Search(ctx context.Context, query string) ([]catalog.Record, error) {
	if c.apiKey == "" {
		return nil, errors.NewConfigMissingError(string(catalog.ProviderOMDB))
	}

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("s", query)
	params.Set("type", "movie")

	var response searchResponse
	if err := c.gateway.GetJSON(ctx, c.baseURL, params, &response); err != nil {
		return nil, fmt.Errorf("omdb search: %w", err)
	}

	if response.Response != "True" {
		if response.Error == requestLimitMessage {
			return nil, errors.NewRateLimitError("OMDb request limit reached")
		}
		// "Movie not found!" and friends are an empty result, not a failure.
		return nil, nil
	}

	hits := response.Search
	if len(hits) > catalog.MaxResults {
		hits = hits[:catalog.MaxResults]
	}

	records := make([]catalog.Record, 0, len(hits))
	for _, hit := range hits {
		records = append(records, c.normalize(ctx, hit))
	}

	return records, nil
}

// Lookup fetches one movie by IMDb id and normalizes it.
func (c *Client) Lookup(ctx context.Context, id string) (catalog.Record, error) {
	if c.apiKey == "" {
		return catalog.Record{}, errors.NewConfigMissingError(string(catalog.ProviderOMDB))
	}

	detail, err := c.fetchDetail(ctx, id)
	if err != nil {
		return catalog.Record{}, err
	}

	return normalizeDetail(detail), nil
}

func (c *Client) normalize(ctx context.Context, hit searchHit) catalog.Record {
	detail, err := c.fetchDetail(ctx, hit.ImdbID)
	if err != nil {
		slog.Warn("Detail lookup failed, using partial record", "imdb_id", hit.ImdbID, "error", err)
		return normalizePartial(hit)
	}
	return normalizeDetail(detail)
}

func (c *Client) fetchDetail(ctx context.Context, imdbID string) (detailResponse, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("i", imdbID)
	params.Set("plot", "full")

	var detail detailResponse
	if err := c.gateway.GetJSON(ctx, c.baseURL, params, &detail); err != nil {
		return detailResponse{}, fmt.Errorf("omdb detail: %w", err)
	}

	if detail.Response != "True" {
		if detail.Error == requestLimitMessage {
			return detailResponse{}, errors.NewRateLimitError("OMDb request limit reached")
		}
		return detailResponse{}, fmt.Errorf("omdb detail for %s: %s", imdbID, detail.Error)
	}

	return detail, nil
}

func normalizeDetail(detail detailResponse) catalog.Record {
	return catalog.Record{
		ID:        detail.ImdbID,
		Title:     catalog.OrSentinel(detail.Title),
		Year:      catalog.OrSentinel(detail.Year),
		Summary:   catalog.OrSentinel(detail.Plot),
		PosterURL: posterURL(detail.Poster),
		Rating:    catalog.OrSentinel(detail.ImdbRating),
		Director:  catalog.OrSentinel(detail.Director),
		Provider:  catalog.ProviderOMDB,
	}
}

// normalizePartial builds a best-effort record from bulk search data alone.
func normalizePartial(hit searchHit) catalog.Record {
	return catalog.Record{
		ID:        hit.ImdbID,
		Title:     catalog.OrSentinel(hit.Title),
		Year:      catalog.OrSentinel(hit.Year),
		Summary:   catalog.Sentinel,
		PosterURL: posterURL(hit.Poster),
		Rating:    catalog.Sentinel,
		Director:  catalog.Sentinel,
		Provider:  catalog.ProviderOMDB,
	}
}

// posterURL maps OMDb's literal "N/A" poster value to an absent poster.
func posterURL(poster string) string {
	if poster == "" || poster == catalog.Sentinel {
		return ""
	}
	return poster
}

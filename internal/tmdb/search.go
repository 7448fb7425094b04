package tmdb

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/cinedex/cinedex/internal/catalog"
	"github.com/cinedex/cinedex/internal/errors"
)

// Search runs a movie search and normalizes the first catalog.MaxResults
// hits. TMDB search hits carry no crew information, so every hit costs one
// extra credits call to resolve the director; a failed credits call
// degrades that record to a sentinel director and the search continues.
func (c *Client) Search(ctx context.Context, query string) ([]catalog.Record, error) {
	if c.apiKey == "" {
		return nil, errors.NewConfigMissingError(string(catalog.ProviderTMDB))
	}

	params := c.baseParams()
	params.Set("query", query)
	params.Set("include_adult", "false")

	var response searchResponse
	if err := c.gateway.GetJSON(ctx, c.baseURL+"/search/movie", params, &response); err != nil {
		return nil, fmt.Errorf("tmdb search: %w", err)
	}

	hits := response.Results
	if len(hits) > catalog.MaxResults {
		hits = hits[:catalog.MaxResults]
	}

	records := make([]catalog.Record, 0, len(hits))
	for _, hit := range hits {
		records = append(records, c.normalize(ctx, hit))
	}

	return records, nil
}

// Lookup fetches one movie by TMDB id and normalizes it.
func (c *Client) Lookup(ctx context.Context, id string) (catalog.Record, error) {
	if c.apiKey == "" {
		return catalog.Record{}, errors.NewConfigMissingError(string(catalog.ProviderTMDB))
	}

	movieID, err := strconv.Atoi(id)
	if err != nil {
		return catalog.Record{}, fmt.Errorf("tmdb lookup: invalid id %q: %w", id, err)
	}

	var hit searchHit
	endpoint := fmt.Sprintf("%s/movie/%d", c.baseURL, movieID)
	if err := c.gateway.GetJSON(ctx, endpoint, c.baseParams(), &hit); err != nil {
		return catalog.Record{}, fmt.Errorf("tmdb lookup: %w", err)
	}

	return c.normalize(ctx, hit), nil
}

// Director resolves the director of a movie through the credits endpoint.
// It returns the first crew member whose job is "Director", or the
// sentinel when the crew has none.
func (c *Client) Director(ctx context.Context, movieID int) (string, error) {
	endpoint := fmt.Sprintf("%s/movie/%d/credits", c.baseURL, movieID)

	var credits creditsResponse
	if err := c.gateway.GetJSON(ctx, endpoint, c.baseParams(), &credits); err != nil {
		return catalog.Sentinel, fmt.Errorf("tmdb credits: %w", err)
	}

	for _, member := range credits.Crew {
		if member.Job == "Director" {
			return catalog.OrSentinel(member.Name), nil
		}
	}

	return catalog.Sentinel, nil
}

func (c *Client) normalize(ctx context.Context, hit searchHit) catalog.Record {
	director, err := c.Director(ctx, hit.ID)
	if err != nil {
		slog.Warn("Director lookup failed", "movie_id", hit.ID, "error", err)
		director = catalog.Sentinel
	}

	record := catalog.Record{
		ID:       strconv.Itoa(hit.ID),
		Title:    catalog.OrSentinel(hit.Title),
		Year:     releaseYear(hit.ReleaseDate),
		Summary:  catalog.OrSentinel(hit.Overview),
		Rating:   catalog.OrSentinel(hit.VoteAverage.String()),
		Director: director,
		Provider: catalog.ProviderTMDB,
	}

	if hit.PosterPath != "" {
		record.PosterURL = c.imageBaseURL + hit.PosterPath
	}

	return record
}

func (c *Client) baseParams() url.Values {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)
	return params
}

func releaseYear(releaseDate string) string {
	if releaseDate == "" {
		return catalog.Sentinel
	}
	if len(releaseDate) > 4 {
		return releaseDate[:4]
	}
	return releaseDate
}

// Package catalog defines the provider-agnostic movie record and routes
// searches to the configured catalog providers.
package catalog

import "fmt"

// Sentinel is the placeholder used for fields missing upstream. Downstream
// exports print it verbatim, so it is never replaced with an empty string.
const Sentinel = "N/A"

// MaxResults caps how many raw hits are normalized per search. Hits beyond
// the cap are discarded, not paginated.
const MaxResults = 20

// Provider identifies which catalog service produced a record.
type Provider string

const (
	// ProviderTMDB is The Movie Database, the rich primary provider.
	ProviderTMDB Provider = "TMDB"
	// ProviderOMDB is the Open Movie Database, the simple secondary provider.
	ProviderOMDB Provider = "OMDb"
)

// Record is the normalized movie representation shared by every provider.
// IDs are only unique within one provider's result set, so identity is
// always the (Provider, ID) pair. A Record is never mutated after
// normalization.
type Record struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	Year      string   `json:"year" yaml:"year"`
	Summary   string   `json:"summary" yaml:"summary"`
	PosterURL string   `json:"poster_url,omitempty" yaml:"poster_url,omitempty"`
	Rating    string   `json:"rating" yaml:"rating"`
	Director  string   `json:"director" yaml:"director"`
	Provider  Provider `json:"provider" yaml:"provider"`
}

// QualifiedID returns the provider-qualified identity of the record,
// e.g. "TMDB:603".
func (r Record) QualifiedID() string {
	return fmt.Sprintf("%s:%s", r.Provider, r.ID)
}

// HasPoster reports whether the record carries artwork.
func (r Record) HasPoster() bool {
	return r.PosterURL != ""
}

// OrSentinel returns s, or the sentinel when s is empty.
func OrSentinel(s string) string {
	if s == "" {
		return Sentinel
	}
	return s
}

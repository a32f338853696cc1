package suggest

import (
	"context"
	"strings"
	"time"
)

// DefaultMinDelay is the spacing enforced between two outbound requests
// when Options.MinDelay is not set.
const DefaultMinDelay = 100 * time.Millisecond

// Source identifies an upstream suggestion provider.
type Source string

// Source constants for supported providers.
const (
	SourceGoogle     Source = "google"
	SourceYouTube    Source = "youtube"
	SourceDuckDuckGo Source = "duckduckgo"
	SourceAmazon     Source = "amazon"
	SourceBing       Source = "bing"
)

// Sources returns every supported source in display order.
func Sources() []Source {
	return []Source{
		SourceGoogle,
		SourceYouTube,
		SourceDuckDuckGo,
		SourceAmazon,
		SourceBing,
	}
}

// ParseSource returns the Source with the given name.
// Matching is case-insensitive. Returns EINVALID for unknown names.
func ParseSource(name string) (Source, error) {
	s := Source(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Sources() {
		if s == known {
			return s, nil
		}
	}
	return "", Errorf(EINVALID, "unknown source %q", name)
}

// Options configures a single suggestion request.
type Options struct {
	// Language is an optional language code (e.g. "en").
	Language string

	// Country is an optional country code (e.g. "us").
	// Sources without a country parameter ignore it.
	Country string

	// MinDelay is the minimum spacing from the previous outbound request.
	// nil means DefaultMinDelay; an explicit zero disables spacing.
	MinDelay *time.Duration
}

// EffectiveDelay returns MinDelay, or DefaultMinDelay when it is not set.
func (o Options) EffectiveDelay() time.Duration {
	if o.MinDelay == nil {
		return DefaultMinDelay
	}
	return *o.MinDelay
}

// Suggester fetches suggestions for a query from one upstream.
type Suggester interface {
	// Suggest waits on the shared rate limit, queries the upstream and
	// returns its suggestions in upstream order.
	//
	// Returns *HTTPError for non-success statuses and EDECODE for bodies
	// the decoder rejects. A well-formed body of an unexpected shape yields
	// an empty slice and no error.
	Suggest(ctx context.Context, query string, opts Options) ([]string, error)
}

// Limiter spaces outbound requests.
type Limiter interface {
	// Wait blocks until at least minDelay has elapsed since the previous
	// request passed through the limiter, then records the current time.
	// The first request after creation or Reset never waits.
	Wait(ctx context.Context, minDelay time.Duration) error

	// Reset forgets the previously recorded request.
	Reset()
}

// SuggestionService aggregates suggestions across derived queries.
type SuggestionService interface {
	// FetchSuggestions queries a single source for a single query.
	FetchSuggestions(ctx context.Context, source Source, query string, opts Options) ([]string, error)

	// FetchExpanded expands the query, queries the source once per derived
	// query in order, and returns the merged results with later duplicates
	// removed. The first failure aborts the run and is returned unchanged.
	FetchExpanded(ctx context.Context, source Source, query string, opts Options, expand ExpandOptions) ([]string, error)
}

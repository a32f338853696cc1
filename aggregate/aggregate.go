// Package aggregate provides suggestion aggregation across derived queries.
// It coordinates query expansion, sequential per-source fetching, and
// first-seen deduplication of the merged results.
package aggregate

import (
	"context"

	"github.com/fwojciec/suggest"
)

var _ suggest.SuggestionService = (*Aggregator)(nil)

// Aggregator dispatches queries to the Suggester registered for a source.
// Requests are issued strictly one after another.
type Aggregator struct {
	suggesters map[suggest.Source]suggest.Suggester
}

// NewAggregator creates an Aggregator over the given source registry.
func NewAggregator(suggesters map[suggest.Source]suggest.Suggester) *Aggregator {
	return &Aggregator{suggesters: suggesters}
}

// FetchSuggestions queries a single source for query without expansion.
func (a *Aggregator) FetchSuggestions(ctx context.Context, source suggest.Source, query string, opts suggest.Options) ([]string, error) {
	s, err := a.suggester(source)
	if err != nil {
		return nil, err
	}
	return s.Suggest(ctx, query, opts)
}

// FetchExpanded queries source once per derived query and merges the
// results, keeping the first occurrence of each suggestion.
// The first failure stops the run; no partial results are returned.
func (a *Aggregator) FetchExpanded(ctx context.Context, source suggest.Source, query string, opts suggest.Options, expand suggest.ExpandOptions) ([]string, error) {
	s, err := a.suggester(source)
	if err != nil {
		return nil, err
	}

	var all []string
	for _, q := range suggest.Expand(query, expand) {
		results, err := s.Suggest(ctx, q, opts)
		if err != nil {
			return nil, err
		}
		all = append(all, results...)
	}

	return suggest.Dedup(all), nil
}

func (a *Aggregator) suggester(source suggest.Source) (suggest.Suggester, error) {
	s, ok := a.suggesters[source]
	if !ok || s == nil {
		return nil, suggest.Errorf(suggest.EINVALID, "unknown source %q", source)
	}
	return s, nil
}

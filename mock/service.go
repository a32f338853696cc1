package mock

import (
	"context"

	"github.com/fwojciec/suggest"
)

var _ suggest.SuggestionService = (*SuggestionService)(nil)

// SuggestionService is a mock implementation of suggest.SuggestionService.
type SuggestionService struct {
	FetchSuggestionsFn func(ctx context.Context, source suggest.Source, query string, opts suggest.Options) ([]string, error)
	FetchExpandedFn    func(ctx context.Context, source suggest.Source, query string, opts suggest.Options, expand suggest.ExpandOptions) ([]string, error)
}

func (s *SuggestionService) FetchSuggestions(ctx context.Context, source suggest.Source, query string, opts suggest.Options) ([]string, error) {
	return s.FetchSuggestionsFn(ctx, source, query, opts)
}

func (s *SuggestionService) FetchExpanded(ctx context.Context, source suggest.Source, query string, opts suggest.Options, expand suggest.ExpandOptions) ([]string, error) {
	return s.FetchExpandedFn(ctx, source, query, opts, expand)
}

package http

import (
	"context"
	"net/url"

	"github.com/fwojciec/suggest"
)

// DuckDuckGoURL is the DuckDuckGo autocomplete endpoint.
const DuckDuckGoURL = "https://duckduckgo.com/ac/"

var _ suggest.Suggester = (*DuckDuckGoSuggester)(nil)

// DuckDuckGoSuggester queries DuckDuckGo, which replies with an array of
// {"phrase": ...} objects. It takes no language or country parameters.
type DuckDuckGoSuggester struct {
	r *requester
}

// NewDuckDuckGoSuggester creates a DuckDuckGoSuggester.
// The limiter must not be nil.
func NewDuckDuckGoSuggester(limiter suggest.Limiter, opts ...Option) *DuckDuckGoSuggester {
	return &DuckDuckGoSuggester{r: newRequester(limiter, DuckDuckGoURL, opts)}
}

// Suggest returns every non-empty phrase in response order.
func (s *DuckDuckGoSuggester) Suggest(ctx context.Context, query string, opts suggest.Options) ([]string, error) {
	params := url.Values{}
	params.Set("q", query)

	body, err := s.r.get(ctx, params, opts)
	if err != nil {
		return nil, err
	}

	root, err := parseJSON(body)
	if err != nil {
		return nil, err
	}
	return nonEmptyStrings(root, "phrase"), nil
}

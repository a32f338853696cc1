package http

import (
	"context"
	"net/url"

	"github.com/fwojciec/suggest"
)

// AmazonURL is the Amazon product-search completion endpoint.
const AmazonURL = "https://completion.amazon.com/api/2017/suggestions"

// Fixed catalog parameters for the US marketplace, all departments.
const (
	amazonMarketplaceID = "ATVPDKIKX0DER"
	amazonAlias         = "aps"
)

var _ suggest.Suggester = (*AmazonSuggester)(nil)

// AmazonSuggester queries Amazon, which replies with an object holding a
// "suggestions" array of {"value": ...} objects.
type AmazonSuggester struct {
	r *requester
}

// NewAmazonSuggester creates an AmazonSuggester.
// The limiter must not be nil.
func NewAmazonSuggester(limiter suggest.Limiter, opts ...Option) *AmazonSuggester {
	return &AmazonSuggester{r: newRequester(limiter, AmazonURL, opts)}
}

// Suggest returns every non-empty suggestion value in response order.
func (s *AmazonSuggester) Suggest(ctx context.Context, query string, opts suggest.Options) ([]string, error) {
	params := url.Values{}
	params.Set("mid", amazonMarketplaceID)
	params.Set("alias", amazonAlias)
	params.Set("prefix", query)

	body, err := s.r.get(ctx, params, opts)
	if err != nil {
		return nil, err
	}

	root, err := parseJSON(body)
	if err != nil {
		return nil, err
	}
	if !root.IsObject() {
		return []string{}, nil
	}
	return nonEmptyStrings(root.Get("suggestions"), "value"), nil
}

package http

import (
	"bytes"
	"context"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/suggest"
)

// BingURL is the Bing suggestion endpoint. It replies with an HTML fragment.
const BingURL = "https://www.bing.com/AS/Suggestions"

var _ suggest.Suggester = (*BingSuggester)(nil)

// BingSuggester scrapes suggestions from the query attributes of Bing's
// HTML suggestion fragment. It supports a language but not a country.
type BingSuggester struct {
	r *requester
}

// NewBingSuggester creates a BingSuggester.
// The limiter must not be nil.
func NewBingSuggester(limiter suggest.Limiter, opts ...Option) *BingSuggester {
	return &BingSuggester{r: newRequester(limiter, BingURL, opts)}
}

// Suggest returns the value of every query attribute in document order.
func (s *BingSuggester) Suggest(ctx context.Context, query string, opts suggest.Options) ([]string, error) {
	params := url.Values{}
	params.Set("qry", query)
	params.Set("cvid", "1")
	if opts.Language != "" {
		params.Set("setlang", opts.Language)
	}

	body, err := s.r.get(ctx, params, opts)
	if err != nil {
		return nil, err
	}

	return extractQueryAttributes(body)
}

func extractQueryAttributes(body []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, suggest.Errorf(suggest.EDECODE, "failed to parse HTML: %v", err)
	}

	results := []string{}
	doc.Find("[query]").Each(func(_ int, sel *goquery.Selection) {
		if v, ok := sel.Attr("query"); ok && v != "" {
			results = append(results, v)
		}
	})
	return results, nil
}

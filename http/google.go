package http

import (
	"context"
	"net/url"

	"github.com/fwojciec/suggest"
	"github.com/tidwall/gjson"
)

// GoogleURL is the Google suggest endpoint, shared by web and YouTube.
const GoogleURL = "https://suggestqueries.google.com/complete/search"

var _ suggest.Suggester = (*GoogleSuggester)(nil)

// GoogleSuggester queries the Google suggest endpoint with the firefox
// client, which replies with a [query, [suggestions...]] array.
// With the YouTube dataset enabled it returns video-search suggestions.
type GoogleSuggester struct {
	r       *requester
	dataset string
}

// NewGoogleSuggester creates a web-search suggester.
// The limiter must not be nil.
func NewGoogleSuggester(limiter suggest.Limiter, opts ...Option) *GoogleSuggester {
	return &GoogleSuggester{r: newRequester(limiter, GoogleURL, opts)}
}

// NewYouTubeSuggester creates a video-search suggester on the same endpoint.
// The limiter must not be nil.
func NewYouTubeSuggester(limiter suggest.Limiter, opts ...Option) *GoogleSuggester {
	return &GoogleSuggester{r: newRequester(limiter, GoogleURL, opts), dataset: "yt"}
}

// Suggest returns the second element of the response array.
// hl and gl are sent when opts carries a language or country.
func (s *GoogleSuggester) Suggest(ctx context.Context, query string, opts suggest.Options) ([]string, error) {
	params := url.Values{}
	params.Set("client", "firefox")
	params.Set("q", query)
	if s.dataset != "" {
		params.Set("ds", s.dataset)
	}
	if opts.Language != "" {
		params.Set("hl", opts.Language)
	}
	if opts.Country != "" {
		params.Set("gl", opts.Country)
	}

	body, err := s.r.get(ctx, params, opts)
	if err != nil {
		return nil, err
	}

	root, err := parseJSON(body)
	if err != nil {
		return nil, err
	}

	results := []string{}
	if !root.IsArray() {
		return results, nil
	}
	elems := root.Array()
	if len(elems) < 2 || !elems[1].IsArray() {
		return results, nil
	}
	for _, v := range elems[1].Array() {
		if v.Type == gjson.String {
			results = append(results, v.Str)
		}
	}
	return results, nil
}

package http

import "github.com/fwojciec/suggest"

// NewSuggesters returns a suggester for every supported source, all sharing
// limiter so spacing holds across sources. Options apply to each suggester.
func NewSuggesters(limiter suggest.Limiter, opts ...Option) map[suggest.Source]suggest.Suggester {
	return map[suggest.Source]suggest.Suggester{
		suggest.SourceGoogle:     NewGoogleSuggester(limiter, opts...),
		suggest.SourceYouTube:    NewYouTubeSuggester(limiter, opts...),
		suggest.SourceDuckDuckGo: NewDuckDuckGoSuggester(limiter, opts...),
		suggest.SourceAmazon:     NewAmazonSuggester(limiter, opts...),
		suggest.SourceBing:       NewBingSuggester(limiter, opts...),
	}
}

// Endpoint returns the upstream URL queried for source, or "" if unknown.
func Endpoint(source suggest.Source) string {
	switch source {
	case suggest.SourceGoogle, suggest.SourceYouTube:
		return GoogleURL
	case suggest.SourceDuckDuckGo:
		return DuckDuckGoURL
	case suggest.SourceAmazon:
		return AmazonURL
	case suggest.SourceBing:
		return BingURL
	}
	return ""
}

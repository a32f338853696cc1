// Package slog provides log/slog decorators for suggest services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/suggest"
)

// Ensure LoggingSuggester implements suggest.Suggester.
var _ suggest.Suggester = (*LoggingSuggester)(nil)

// LoggingSuggester wraps a Suggester with debug logging.
type LoggingSuggester struct {
	next   suggest.Suggester
	source suggest.Source
	logger *slog.Logger
}

// NewLoggingSuggester creates a new LoggingSuggester for source.
func NewLoggingSuggester(next suggest.Suggester, source suggest.Source, logger *slog.Logger) *LoggingSuggester {
	return &LoggingSuggester{next: next, source: source, logger: logger}
}

// Suggest delegates to the wrapped suggester and logs the request. The line
// carries the run id when the call was made under a LoggingSuggestionService.
func (s *LoggingSuggester) Suggest(ctx context.Context, query string, opts suggest.Options) (results []string, err error) {
	logger := s.logger
	if run, ok := runFromContext(ctx); ok {
		logger = logger.With("run", run)
	}
	defer func(begin time.Time) {
		logger.DebugContext(ctx, "suggest",
			"source", s.source,
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Suggest(ctx, query, opts)
}

// WrapSuggesters wraps every suggester in the registry with a LoggingSuggester.
func WrapSuggesters(suggesters map[suggest.Source]suggest.Suggester, logger *slog.Logger) map[suggest.Source]suggest.Suggester {
	wrapped := make(map[suggest.Source]suggest.Suggester, len(suggesters))
	for source, s := range suggesters {
		wrapped[source] = NewLoggingSuggester(s, source, logger)
	}
	return wrapped
}

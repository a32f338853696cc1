package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/suggest"
	"github.com/google/uuid"
)

// Ensure LoggingSuggestionService implements suggest.SuggestionService.
var _ suggest.SuggestionService = (*LoggingSuggestionService)(nil)

type runKey struct{}

// withRun returns a context carrying the run id for downstream log lines.
func withRun(ctx context.Context, run string) context.Context {
	return context.WithValue(ctx, runKey{}, run)
}

func runFromContext(ctx context.Context) (string, bool) {
	run, ok := ctx.Value(runKey{}).(string)
	return run, ok
}

// LoggingSuggestionService wraps a SuggestionService with logging.
// Each call is tagged with a run id which is passed down through the
// context, so a LoggingSuggester beneath it logs the same run attribute on
// its per-query lines.
type LoggingSuggestionService struct {
	next   suggest.SuggestionService
	logger *slog.Logger
}

// NewLoggingSuggestionService creates a new LoggingSuggestionService.
func NewLoggingSuggestionService(next suggest.SuggestionService, logger *slog.Logger) *LoggingSuggestionService {
	return &LoggingSuggestionService{next: next, logger: logger}
}

// FetchSuggestions delegates to the wrapped service and logs the operation.
func (s *LoggingSuggestionService) FetchSuggestions(ctx context.Context, source suggest.Source, query string, opts suggest.Options) (results []string, err error) {
	run := uuid.NewString()
	ctx = withRun(ctx, run)
	defer func(begin time.Time) {
		s.logger.InfoContext(ctx, "fetch suggestions",
			"run", run,
			"source", source,
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchSuggestions(ctx, source, query, opts)
}

// FetchExpanded delegates to the wrapped service and logs the operation,
// including how many derived queries the expansion produced.
func (s *LoggingSuggestionService) FetchExpanded(ctx context.Context, source suggest.Source, query string, opts suggest.Options, expand suggest.ExpandOptions) (results []string, err error) {
	run := uuid.NewString()
	ctx = withRun(ctx, run)
	s.logger.DebugContext(ctx, "expand query",
		"run", run,
		"query", query,
		"derived", len(suggest.Expand(query, expand)),
	)
	defer func(begin time.Time) {
		s.logger.InfoContext(ctx, "fetch expanded",
			"run", run,
			"source", source,
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchExpanded(ctx, source, query, opts, expand)
}

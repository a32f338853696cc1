package mock

import (
	"context"

	"github.com/fwojciec/suggest"
)

var _ suggest.Suggester = (*Suggester)(nil)

// Suggester is a mock implementation of suggest.Suggester.
type Suggester struct {
	SuggestFn func(ctx context.Context, query string, opts suggest.Options) ([]string, error)
}

func (s *Suggester) Suggest(ctx context.Context, query string, opts suggest.Options) ([]string, error) {
	return s.SuggestFn(ctx, query, opts)
}

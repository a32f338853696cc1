package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/suggest"
	main "github.com/fwojciec/suggest/cmd/suggest"
	"github.com/fwojciec/suggest/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMain returns a Main that reads no config files and uses svc.
func newTestMain(svc suggest.SuggestionService) *main.Main {
	m := main.NewMain()
	m.ConfigPaths = nil
	m.Suggestions = svc
	return m
}

func TestMain_Run_Help(t *testing.T) {
	t.Parallel()

	m := newTestMain(nil)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "suggest")
	assert.Contains(t, stdout.String(), "query")
	assert.Contains(t, stdout.String(), "sources")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	m := newTestMain(nil)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestMain_Run_Sources(t *testing.T) {
	t.Parallel()

	m := newTestMain(nil)
	var stdout, stderr bytes.Buffer

	err := m.Run(context.Background(), []string{"sources"}, &stdout, &stderr)

	require.NoError(t, err)
	output := stdout.String()
	for _, s := range suggest.Sources() {
		assert.Contains(t, output, string(s))
	}
	assert.Contains(t, output, "https://duckduckgo.com/ac/")
	assert.Contains(t, output, "https://www.bing.com/AS/Suggestions")
}

func TestMain_Run_Query(t *testing.T) {
	t.Parallel()

	t.Run("fetches without expansion and prints text", func(t *testing.T) {
		t.Parallel()

		var gotSource suggest.Source
		var gotQuery string
		var gotOpts suggest.Options
		svc := &mock.SuggestionService{
			FetchSuggestionsFn: func(_ context.Context, source suggest.Source, query string, opts suggest.Options) ([]string, error) {
				gotSource, gotQuery, gotOpts = source, query, opts
				return []string{"golang", "go maps"}, nil
			},
		}
		var stdout, stderr bytes.Buffer

		err := newTestMain(svc).Run(context.Background(),
			[]string{"query", "-s", "duckduckgo", "-l", "en", "-c", "us", "go", "lang"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t, suggest.SourceDuckDuckGo, gotSource)
		assert.Equal(t, "go lang", gotQuery)
		assert.Equal(t, "en", gotOpts.Language)
		assert.Equal(t, "us", gotOpts.Country)
		require.NotNil(t, gotOpts.MinDelay)
		assert.Equal(t, 100*time.Millisecond, *gotOpts.MinDelay)
		assert.Equal(t, "golang\ngo maps\n", stdout.String())
	})

	t.Run("uses expansion when requested", func(t *testing.T) {
		t.Parallel()

		var gotExpand suggest.ExpandOptions
		svc := &mock.SuggestionService{
			FetchExpandedFn: func(_ context.Context, _ suggest.Source, _ string, _ suggest.Options, expand suggest.ExpandOptions) ([]string, error) {
				gotExpand = expand
				return []string{"a,b", `c"d`}, nil
			},
		}
		var stdout, stderr bytes.Buffer

		err := newTestMain(svc).Run(context.Background(),
			[]string{"query", "-a", "-q", "-p", "best, top", "-f", "csv", "--delay", "0s", "go"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t, suggest.ExpandOptions{Alphabet: true, Questions: true, Prefixes: "best, top"}, gotExpand)
		assert.Equal(t, "suggestion\n\"a,b\"\n\"c\"\"d\"\n", stdout.String())
	})

	t.Run("prints notice for empty text result", func(t *testing.T) {
		t.Parallel()

		svc := &mock.SuggestionService{
			FetchSuggestionsFn: func(_ context.Context, _ suggest.Source, _ string, _ suggest.Options) ([]string, error) {
				return []string{}, nil
			},
		}
		var stdout, stderr bytes.Buffer

		err := newTestMain(svc).Run(context.Background(), []string{"query", "zzzz"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t, "No suggestions found.\n", stdout.String())
	})

	t.Run("prints empty json array for empty result", func(t *testing.T) {
		t.Parallel()

		svc := &mock.SuggestionService{
			FetchSuggestionsFn: func(_ context.Context, _ suggest.Source, _ string, _ suggest.Options) ([]string, error) {
				return nil, nil
			},
		}
		var stdout, stderr bytes.Buffer

		err := newTestMain(svc).Run(context.Background(), []string{"query", "-f", "json", "zzzz"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t, "[]\n", stdout.String())
	})

	t.Run("reports upstream errors", func(t *testing.T) {
		t.Parallel()

		svc := &mock.SuggestionService{
			FetchSuggestionsFn: func(_ context.Context, _ suggest.Source, _ string, _ suggest.Options) ([]string, error) {
				return nil, &suggest.HTTPError{StatusCode: 429}
			},
		}
		var stdout, stderr bytes.Buffer

		err := newTestMain(svc).Run(context.Background(), []string{"query", "go"}, &stdout, &stderr)

		require.Error(t, err)
		assert.Equal(t, "HTTP error: 429", err.Error())
		assert.Contains(t, stderr.String(), "error: HTTP error: 429")
		assert.Empty(t, stdout.String())
	})

	t.Run("rejects unknown source", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer

		err := newTestMain(&mock.SuggestionService{}).Run(context.Background(),
			[]string{"query", "-s", "yahoo", "go"}, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown source")
	})

	t.Run("rejects invalid language code", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer

		err := newTestMain(&mock.SuggestionService{}).Run(context.Background(),
			[]string{"query", "-l", "not a language", "go"}, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid language code")
	})

	t.Run("rejects invalid country code", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer

		err := newTestMain(&mock.SuggestionService{}).Run(context.Background(),
			[]string{"query", "-c", "XYZ1", "go"}, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid country code")
	})
}

func TestMain_Run_Config(t *testing.T) {
	t.Parallel()

	t.Run("reads flag defaults from YAML file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("source: bing\nformat: json\nlang: de\n"), 0o600))

		var gotSource suggest.Source
		var gotLang string
		svc := &mock.SuggestionService{
			FetchSuggestionsFn: func(_ context.Context, source suggest.Source, _ string, opts suggest.Options) ([]string, error) {
				gotSource, gotLang = source, opts.Language
				return []string{"go"}, nil
			},
		}
		m := newTestMain(svc)
		m.ConfigPaths = []string{path}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"query", "go"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t, suggest.SourceBing, gotSource)
		assert.Equal(t, "de", gotLang)
		assert.Equal(t, "[\n  \"go\"\n]\n", stdout.String())
	})

	t.Run("command-line flags override config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("source: bing\n"), 0o600))

		var gotSource suggest.Source
		svc := &mock.SuggestionService{
			FetchSuggestionsFn: func(_ context.Context, source suggest.Source, _ string, _ suggest.Options) ([]string, error) {
				gotSource = source
				return nil, nil
			},
		}
		m := newTestMain(svc)
		m.ConfigPaths = []string{path}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"query", "-s", "amazon", "go"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t, suggest.SourceAmazon, gotSource)
	})

	t.Run("ignores missing config file", func(t *testing.T) {
		t.Parallel()

		svc := &mock.SuggestionService{
			FetchSuggestionsFn: func(_ context.Context, _ suggest.Source, _ string, _ suggest.Options) ([]string, error) {
				return []string{"go"}, nil
			},
		}
		m := newTestMain(svc)
		m.ConfigPaths = []string{filepath.Join(t.TempDir(), "missing.yaml")}
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"query", "go"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t, "go\n", stdout.String())
	})
}

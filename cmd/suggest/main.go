package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/suggest"
	"github.com/fwojciec/suggest/aggregate"
	suggesthttp "github.com/fwojciec/suggest/http"
	suggestslog "github.com/fwojciec/suggest/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// DefaultConfigPath is read when present. Missing files are ignored.
const DefaultConfigPath = "~/.config/suggest/config.yaml"

// Main represents the program.
type Main struct {
	// Config files consulted for flag defaults, in order. Set before calling Run().
	ConfigPaths []string

	// Suggestion service for end-to-end testing. When nil, Run wires the
	// HTTP suggesters behind a shared rate limiter.
	Suggestions suggest.SuggestionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: []string{DefaultConfigPath},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("suggest"),
		kong.Description("Fetch autocomplete suggestions from search providers"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(YAMLConfig, m.ConfigPaths...),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'suggest --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	deps.Suggestions = m.Suggestions
	if deps.Suggestions == nil {
		deps.Suggestions = newSuggestionService(cli.Query.Timeout, cli.Verbose, logger)
	}

	return kongCtx.Run(deps)
}

// newSuggestionService wires every source behind one shared limiter.
func newSuggestionService(timeout time.Duration, verbose bool, logger *slog.Logger) suggest.SuggestionService {
	suggesters := suggesthttp.NewSuggesters(aggregate.NewLimiter(), suggesthttp.WithTimeout(timeout))
	if !verbose {
		return aggregate.NewAggregator(suggesters)
	}
	suggesters = suggestslog.WrapSuggesters(suggesters, logger)
	return suggestslog.NewLoggingSuggestionService(aggregate.NewAggregator(suggesters), logger)
}

package main

import (
	"context"
	"io"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/suggest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Suggestions suggest.SuggestionService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  kong.ConfigFlag `help:"YAML file with flag defaults" type:"path"`
	Verbose bool            `short:"v" help:"Log requests to stderr"`

	Query   QueryCmd   `cmd:"" help:"Fetch suggestions for a query"`
	Sources SourcesCmd `cmd:"" help:"List supported suggestion sources"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	Words     []string      `arg:"" help:"Query words, joined with spaces"`
	Source    string        `short:"s" default:"google" env:"SUGGEST_SOURCE" help:"Source: google, youtube, duckduckgo, amazon, bing"`
	Lang      string        `short:"l" env:"SUGGEST_LANG" help:"Language code (e.g. en)"`
	Country   string        `short:"c" env:"SUGGEST_COUNTRY" help:"Country code (e.g. us)"`
	Delay     time.Duration `default:"100ms" env:"SUGGEST_DELAY" help:"Minimum delay between requests"`
	Alphabet  bool          `short:"a" help:"Expand with a-z suffixes"`
	Questions bool          `short:"q" help:"Expand with question-word prefixes"`
	Prefixes  string        `short:"p" help:"Expand with comma-separated custom prefixes"`
	Format    string        `short:"f" default:"text" env:"SUGGEST_FORMAT" help:"Output format: text, json, csv"`
	Timeout   time.Duration `default:"10s" env:"SUGGEST_TIMEOUT" help:"HTTP timeout per request"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct{}

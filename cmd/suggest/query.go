package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/suggest"
	"golang.org/x/text/language"
)

// noSuggestions is printed in text mode when nothing was found.
const noSuggestions = "No suggestions found."

// Validate checks flag values after parsing.
func (c *QueryCmd) Validate() error {
	if _, err := suggest.ParseSource(c.Source); err != nil {
		return errors.New(suggest.ErrorMessage(err))
	}
	if _, err := suggest.ParseFormat(c.Format); err != nil {
		return errors.New(suggest.ErrorMessage(err))
	}
	if c.Lang != "" {
		if _, err := language.Parse(c.Lang); err != nil {
			return fmt.Errorf("invalid language code %q", c.Lang)
		}
	}
	if c.Country != "" {
		if _, err := language.ParseRegion(c.Country); err != nil {
			return fmt.Errorf("invalid country code %q", c.Country)
		}
	}
	if c.Delay < 0 {
		return errors.New("delay must not be negative")
	}
	return nil
}

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	source, err := suggest.ParseSource(c.Source)
	if err != nil {
		return err
	}
	format, err := suggest.ParseFormat(c.Format)
	if err != nil {
		return err
	}

	query := strings.Join(c.Words, " ")
	delay := c.Delay
	opts := suggest.Options{
		Language: c.Lang,
		Country:  c.Country,
		MinDelay: &delay,
	}
	expand := suggest.ExpandOptions{
		Alphabet:  c.Alphabet,
		Questions: c.Questions,
		Prefixes:  c.Prefixes,
	}

	var results []string
	if expand.IsZero() {
		results, err = deps.Suggestions.FetchSuggestions(deps.Ctx, source, query, opts)
	} else {
		results, err = deps.Suggestions.FetchExpanded(deps.Ctx, source, query, opts, expand)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", suggest.ErrorMessage(err))
		return err
	}

	output, err := render(results, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, output)

	return nil
}

// render formats results for the terminal. Empty text output is replaced
// with a notice; json and csv keep their empty representations.
func render(results []string, format suggest.Format) (string, error) {
	if format == suggest.FormatText && len(results) == 0 {
		return noSuggestions, nil
	}
	output, err := suggest.FormatSuggestions(results, format)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(output, "\n"), nil
}

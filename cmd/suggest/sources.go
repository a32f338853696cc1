package main

import (
	"fmt"

	"github.com/fwojciec/suggest"
	suggesthttp "github.com/fwojciec/suggest/http"
)

// Run executes the sources command.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	for _, s := range suggest.Sources() {
		fmt.Fprintf(deps.Stdout, "%-12s %s\n", s, suggesthttp.Endpoint(s))
	}
	return nil
}

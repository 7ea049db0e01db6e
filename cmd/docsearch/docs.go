package main

import (
	"fmt"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/docs"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	out, err := deps.Docs.GetDocs(deps.Ctx, c.Query, c.Library)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, out)

	if deps.TokenCounter != nil {
		if tokens, err := deps.TokenCounter.CountTokens(deps.Ctx, out); err == nil {
			fmt.Fprintf(deps.Stderr, "%s, %s\n", docs.FormatBytes(len(out)), docs.FormatTokens(tokens))
		}
	}

	return nil
}

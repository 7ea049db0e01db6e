package main

import (
	"fmt"

	"github.com/fwojciec/docsearch"
	dsmcp "github.com/fwojciec/docsearch/mcp"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := dsmcp.NewServer(deps.Docs, deps.Registry.Libraries(), Version)

	if c.HTTP != "" {
		fmt.Fprintf(deps.Stderr, "Serving MCP over HTTP on %s\n", c.HTTP)
		if err := srv.RunHTTP(deps.Ctx, c.HTTP); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docsearch.ErrorMessage(err))
			return err
		}
		return nil
	}

	return srv.Run(deps.Ctx)
}

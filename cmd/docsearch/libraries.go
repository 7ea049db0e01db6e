package main

import (
	"fmt"
	"text/tabwriter"
)

// Run executes the libraries command.
func (c *LibrariesCmd) Run(deps *Dependencies) error {
	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	for _, lib := range deps.Registry.Libraries() {
		fmt.Fprintf(w, "%s\t%s\n", lib.Name, lib.Domain)
	}
	return w.Flush()
}

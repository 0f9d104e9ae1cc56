package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/tldr"
)

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	// A failed refresh is logged by the service; stale pages still work.
	_ = deps.Service.Initialize(deps.Ctx, deps.Config)

	items, err := deps.Service.Query(deps.Ctx, strings.Join(c.Input, " "))
	printItems(deps.Stdout, items)
	if err != nil {
		return err
	}

	if c.Pick == 0 {
		return nil
	}
	if c.Pick < 0 || c.Pick > len(items) {
		return tldr.Errorf(tldr.EINVALID, "item %d out of range (1-%d)", c.Pick, len(items))
	}

	effect, err := deps.Service.Execute(deps.Ctx, items[c.Pick-1], "")
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "\n%s\t%s\n", effect.Kind, effect.Value)
	return nil
}

// printItems writes items in a terminal-friendly layout.
func printItems(w io.Writer, items []tldr.Item) {
	for i, item := range items {
		switch item.Kind {
		case tldr.ItemError:
			fmt.Fprintf(w, "%d. ! %s\n", i+1, item.Label)
			if item.Description != "" {
				fmt.Fprintf(w, "     %s\n", item.Description)
			}
		case tldr.ItemCommand:
			fmt.Fprintf(w, "%d. %s\n     %s\n", i+1, item.Description, item.Label)
		default:
			fmt.Fprintf(w, "%d. %s\n     %s\n", i+1, item.Label, item.Description)
		}
	}
}

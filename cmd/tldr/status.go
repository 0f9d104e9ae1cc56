package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/tldr"
)

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	deps.Service.Configure(deps.Config)

	status, err := deps.Service.Status(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tldr.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Cache:     %s\n", status.Dir)
	if !status.ArchivePresent {
		fmt.Fprintln(deps.Stdout, "Archive:   not fetched. Use 'tldr update' to fetch it.")
		return nil
	}

	langs := make([]string, 0, len(status.Languages))
	for _, l := range status.Languages {
		langs = append(langs, string(l))
	}

	state := "fresh"
	if status.Stale {
		state = "stale"
	}
	fmt.Fprintf(deps.Stdout, "Archive:   %s (%s)\n", status.LastFetch.Format(time.RFC3339), state)
	fmt.Fprintf(deps.Stdout, "Age:       %s\n", status.Age.Round(time.Minute))
	fmt.Fprintf(deps.Stdout, "Digest:    %s\n", status.Digest)
	fmt.Fprintf(deps.Stdout, "Commands:  %d\n", status.Commands)
	fmt.Fprintf(deps.Stdout, "Languages: %s\n", strings.Join(langs, ", "))
	return nil
}

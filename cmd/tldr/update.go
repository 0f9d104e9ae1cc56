package main

import (
	"fmt"

	"github.com/fwojciec/tldr"
)

// Run executes the update command.
func (c *UpdateCmd) Run(deps *Dependencies) error {
	deps.Service.Configure(deps.Config)

	update := tldr.Item{Kind: tldr.ItemKeyword, Target: tldr.TargetUpdate}
	if _, err := deps.Service.Execute(deps.Ctx, update, ""); err != nil {
		return err
	}

	status, err := deps.Service.Status(deps.Ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Updated page cache: %d commands in %s\n", status.Commands, status.Dir)
	return nil
}

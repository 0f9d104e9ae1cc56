package main

import (
	"fmt"

	"github.com/fwojciec/tldr/toml"
)

// Run executes the settings command.
func (c *SettingsCmd) Run(deps *Dependencies) error {
	s, err := toml.Format(deps.Config)
	if err != nil {
		return err
	}
	fmt.Fprint(deps.Stdout, s)
	return nil
}

// Run executes the capabilities command.
func (c *CapabilitiesCmd) Run(deps *Dependencies) error {
	for _, item := range deps.Service.Capabilities() {
		fmt.Fprintf(deps.Stdout, "%s\t%s\t%s\n", item.Target, item.Label, item.Description)
	}
	return nil
}

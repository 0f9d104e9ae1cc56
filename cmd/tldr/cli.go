package main

import (
	"context"
	"io"

	"github.com/fwojciec/tldr"
	"github.com/fwojciec/tldr/lookup"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Config  tldr.Config
	Service *lookup.Service
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   string `help:"Settings file" env:"TLDR_CONFIG" type:"path"`
	CacheDir string `help:"Page cache directory" env:"TLDR_CACHE_DIR" type:"path"`
	Verbose  bool   `short:"v" help:"Enable debug logging"`
	Retries  int    `help:"Retry a failed archive download this many times" default:"0"`

	Query        QueryCmd        `cmd:"" help:"Show examples for a command"`
	Update       UpdateCmd       `cmd:"" help:"Update the local page cache"`
	Status       StatusCmd       `cmd:"" help:"Show page cache status"`
	Settings     SettingsCmd     `cmd:"" help:"Print the effective settings"`
	Capabilities CapabilitiesCmd `cmd:"" help:"List launcher keyword items"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	Input []string `arg:"" help:"Command name; quote to pass options, e.g. 'tar -p linux -L fr'"`
	Pick  int      `help:"Run the default action of the Nth item and print its effect"`
}

// UpdateCmd is the "update" subcommand.
type UpdateCmd struct{}

// StatusCmd is the "status" subcommand.
type StatusCmd struct{}

// SettingsCmd is the "settings" subcommand.
type SettingsCmd struct{}

// CapabilitiesCmd is the "capabilities" subcommand.
type CapabilitiesCmd struct{}

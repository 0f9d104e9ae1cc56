// Package kong parses launcher queries with typed flags.
package kong

import (
	"io"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/tldr"
	"mvdan.cc/sh/v3/shell"
)

// Ensure QueryParser implements tldr.QueryParser at compile time.
var _ tldr.QueryParser = (*QueryParser)(nil)

// queryArgs is the grammar of a launcher query.
type queryArgs struct {
	Platform string   `short:"p" help:"Platform to show pages for"`
	Language string   `short:"L" help:"Language to show pages in"`
	Terms    []string `arg:"" optional:"" help:"Command name"`
}

// QueryParser splits input into shell words and parses "-p" and "-L"
// options, e.g. "git commit -p linux -L fr".
type QueryParser struct{}

// NewQueryParser creates a new QueryParser.
func NewQueryParser() *QueryParser {
	return &QueryParser{}
}

// ParseQuery parses input. Variables are not expanded.
func (p *QueryParser) ParseQuery(input string) (*tldr.QueryOptions, error) {
	fields, err := shell.Fields(input, func(name string) string { return "$" + name })
	if err != nil {
		return nil, tldr.Errorf(tldr.EINVALIDOPTIONS, "Invalid input format: %v", err)
	}

	var args queryArgs
	parser, err := kong.New(&args,
		kong.Name("tldr"),
		kong.Writers(io.Discard, io.Discard),
		kong.Exit(func(int) {}),
		kong.NoDefaultHelp(),
	)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Parse(fields); err != nil {
		return nil, tldr.Errorf(tldr.EINVALIDOPTIONS, "Invalid input format: %v", err)
	}

	opts := &tldr.QueryOptions{Terms: args.Terms}
	if args.Platform != "" {
		platform, err := tldr.ParsePlatform(args.Platform)
		if err != nil {
			return nil, err
		}
		opts.Platform = &platform
	}
	if args.Language != "" {
		lang, err := tldr.ParseLanguage(args.Language)
		if err != nil {
			return nil, err
		}
		opts.Language = &lang
	}
	return opts, nil
}

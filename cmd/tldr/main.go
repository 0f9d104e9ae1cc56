package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/fwojciec/tldr"
	"github.com/fwojciec/tldr/bloom"
	tldrfs "github.com/fwojciec/tldr/fs"
	tldrhttp "github.com/fwojciec/tldr/http"
	tldrkong "github.com/fwojciec/tldr/kong"
	"github.com/fwojciec/tldr/locale"
	"github.com/fwojciec/tldr/lookup"
	tldrslog "github.com/fwojciec/tldr/slog"
	"github.com/fwojciec/tldr/toml"
	"github.com/fwojciec/tldr/zip"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Settings file and cache directory. Set before calling Run().
	// Flags and environment variables take precedence.
	ConfigPath string
	CacheDir   string

	// Archive source. Set before calling Run() to replace the HTTP fetcher.
	ArchiveURL string
	Fetcher    tldr.ArchiveFetcher

	// Service for end-to-end testing.
	Service *lookup.Service
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
		CacheDir:   defaultCacheDir(),
		ArchiveURL: tldr.ArchiveURL,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tldr"),
		kong.Description("Show tldr-pages examples from a local page cache."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'tldr --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Config != "" {
		m.ConfigPath = cli.Config
	}
	if cli.CacheDir != "" {
		m.CacheDir = cli.CacheDir
	}

	logger := newLogger(stderr, cli.Verbose)

	cfg, err := toml.LoadConfig(m.ConfigPath, locale.Detect())
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", tldr.ErrorMessage(err))
		fmt.Fprintf(stderr, "Hint: Set TLDR_CONFIG to use a different settings file\n")
		return err
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = tldrhttp.NewFetcher(tldrhttp.WithUserAgent("tldr-cli"))
	}
	if cli.Retries > 0 {
		retry := tldrhttp.NewRetryFetcher(fetcher)
		retry.Retries = cli.Retries
		retry.OnRetry = func(url string, attempt int, err error) {
			logger.Warn("retrying archive fetch", "url", url, "attempt", attempt, "err", err)
		}
		fetcher = retry
	}

	cache := tldrfs.NewCache(m.CacheDir, tldrslog.NewLoggingFetcher(fetcher, logger), zip.NewExtractor(), bloom.Build)
	cache.URL = m.ArchiveURL
	store := tldrslog.NewLoggingArchiveStore(cache, logger)

	m.Service = lookup.NewService(store, cache, tldrkong.NewQueryParser(), logger)
	deps.Service = m.Service
	deps.Config = cfg

	return kongCtx.Run(deps)
}

// newLogger returns a logger writing through charmbracelet/log.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Prefix:          "tldr",
		Level:           level,
		ReportTimestamp: verbose,
	})
	return slog.New(handler)
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".tldr"
	}
	return filepath.Join(dir, "tldr")
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "tldr.toml"
	}
	return filepath.Join(dir, "tldr", "config.toml")
}

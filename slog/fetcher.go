// Package slog provides logging decorators for tldr services.
package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/tldr"
)

// Ensure LoggingFetcher implements tldr.ArchiveFetcher.
var _ tldr.ArchiveFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps an ArchiveFetcher with logging.
type LoggingFetcher struct {
	next   tldr.ArchiveFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next tldr.ArchiveFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the download.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string, w io.Writer) (n int64, err error) {
	defer func(begin time.Time) {
		f.logger.Info("archive fetch",
			"url", url,
			"bytes", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url, w)
}

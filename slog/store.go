package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/tldr"
)

// Ensure LoggingArchiveStore implements tldr.ArchiveStore.
var _ tldr.ArchiveStore = (*LoggingArchiveStore)(nil)

// LoggingArchiveStore wraps an ArchiveStore with logging for refreshes.
type LoggingArchiveStore struct {
	next   tldr.ArchiveStore
	logger *slog.Logger
}

// NewLoggingArchiveStore creates a new LoggingArchiveStore.
func NewLoggingArchiveStore(next tldr.ArchiveStore, logger *slog.Logger) *LoggingArchiveStore {
	return &LoggingArchiveStore{next: next, logger: logger}
}

// Refresh delegates to the wrapped store and logs the outcome.
func (s *LoggingArchiveStore) Refresh(ctx context.Context, req tldr.RefreshRequest) (idx tldr.CommandIndex, err error) {
	defer func(begin time.Time) {
		commands := 0
		if idx != nil {
			commands = idx.Len()
		}
		s.logger.Debug("cache refresh",
			"languages", req.Languages,
			"max_age_days", req.MaxAgeDays,
			"force", req.Force,
			"commands", commands,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Refresh(ctx, req)
}

// Index delegates to the wrapped store.
func (s *LoggingArchiveStore) Index() tldr.CommandIndex {
	return s.next.Index()
}

// Status delegates to the wrapped store.
func (s *LoggingArchiveStore) Status(ctx context.Context, maxAgeDays int) (*tldr.CacheStatus, error) {
	return s.next.Status(ctx, maxAgeDays)
}

package mock

import (
	"context"
	"io"

	"github.com/fwojciec/tldr"
)

var _ tldr.ArchiveFetcher = (*ArchiveFetcher)(nil)

// ArchiveFetcher is a mock implementation of tldr.ArchiveFetcher.
type ArchiveFetcher struct {
	FetchFn func(ctx context.Context, url string, w io.Writer) (int64, error)
}

func (f *ArchiveFetcher) Fetch(ctx context.Context, url string, w io.Writer) (int64, error) {
	return f.FetchFn(ctx, url, w)
}

var _ tldr.ArchiveExtractor = (*ArchiveExtractor)(nil)

// ArchiveExtractor is a mock implementation of tldr.ArchiveExtractor.
type ArchiveExtractor struct {
	ExtractFn func(ctx context.Context, path, dir string, keep func(name string) bool) (int, error)
}

func (e *ArchiveExtractor) Extract(ctx context.Context, path, dir string, keep func(name string) bool) (int, error) {
	return e.ExtractFn(ctx, path, dir, keep)
}

var _ tldr.ArchiveStore = (*ArchiveStore)(nil)

// ArchiveStore is a mock implementation of tldr.ArchiveStore.
type ArchiveStore struct {
	RefreshFn func(ctx context.Context, req tldr.RefreshRequest) (tldr.CommandIndex, error)
	IndexFn   func() tldr.CommandIndex
	StatusFn  func(ctx context.Context, maxAgeDays int) (*tldr.CacheStatus, error)
}

func (s *ArchiveStore) Refresh(ctx context.Context, req tldr.RefreshRequest) (tldr.CommandIndex, error) {
	return s.RefreshFn(ctx, req)
}

func (s *ArchiveStore) Index() tldr.CommandIndex {
	return s.IndexFn()
}

func (s *ArchiveStore) Status(ctx context.Context, maxAgeDays int) (*tldr.CacheStatus, error) {
	return s.StatusFn(ctx, maxAgeDays)
}

var _ tldr.CommandIndex = (*CommandIndex)(nil)

// CommandIndex is a mock implementation of tldr.CommandIndex.
type CommandIndex struct {
	ContainsFn func(command string) bool
	IsEmptyFn  func() bool
	LenFn      func() int
}

func (i *CommandIndex) Contains(command string) bool {
	return i.ContainsFn(command)
}

func (i *CommandIndex) IsEmpty() bool {
	return i.IsEmptyFn()
}

func (i *CommandIndex) Len() int {
	return i.LenFn()
}

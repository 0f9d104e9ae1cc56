package tldr

import (
	"context"
	"encoding/json"
	"io"
	"time"
)

// DefaultCacheUpdateAfter is the refresh interval, in days, used when the
// configuration has no usable value.
const DefaultCacheUpdateAfter = 7

// ManifestName is the name of the command manifest at the archive root.
const ManifestName = "index.json"

// CacheManifest describes the fetched archive. It is derived from the
// archive file's modification time and never persisted separately.
type CacheManifest struct {
	LastFetch      time.Time
	ArchivePresent bool
}

// NeedsRefresh reports whether the archive must be fetched again: it was
// never fetched, it is older than maxAgeDays at now, or forced is set.
// Days are fixed 24 hour periods.
func (m CacheManifest) NeedsRefresh(now time.Time, maxAgeDays int, forced bool) bool {
	if forced || !m.ArchivePresent {
		return true
	}
	maxAge := time.Duration(maxAgeDays) * 24 * time.Hour
	return now.Sub(m.LastFetch) > maxAge
}

// CacheStatus summarizes the state of the local mirror.
type CacheStatus struct {
	Dir            string        `json:"dir"`
	ArchivePresent bool          `json:"archivePresent"`
	LastFetch      time.Time     `json:"lastFetch"`
	Age            time.Duration `json:"age"`
	Stale          bool          `json:"stale"`
	Digest         string        `json:"digest"`
	Commands       int           `json:"commands"`
	Languages      []Language    `json:"languages"`
}

// RefreshRequest controls a call to ArchiveStore.Refresh.
type RefreshRequest struct {
	Languages  []Language
	MaxAgeDays int
	Force      bool
}

// CommandIndex is the set of command names listed by the manifest.
// Implementations are immutable once built.
type CommandIndex interface {
	Contains(command string) bool
	IsEmpty() bool
	Len() int
}

// ArchiveFetcher downloads the remote archive.
type ArchiveFetcher interface {
	// Fetch writes the body found at url to w.
	Fetch(ctx context.Context, url string, w io.Writer) (n int64, err error)
}

// ArchiveExtractor unpacks selected archive members.
type ArchiveExtractor interface {
	// Extract writes every member of the archive at path for which keep
	// returns true below dir, and returns the number of files written.
	Extract(ctx context.Context, path, dir string, keep func(name string) bool) (int, error)
}

// ArchiveStore owns the on-disk mirror of the archive.
type ArchiveStore interface {
	// Refresh fetches and extracts the archive when it is stale, missing,
	// or req.Force is set, and in every case rebuilds the command index
	// from the cached manifest. Failures return ECACHEUPDATE and leave
	// the previous index and pages in place.
	Refresh(ctx context.Context, req RefreshRequest) (CommandIndex, error)

	// Index returns the index built by the last successful refresh.
	// The index is empty if no refresh ever succeeded.
	Index() CommandIndex

	// Status describes the cached archive.
	Status(ctx context.Context, maxAgeDays int) (*CacheStatus, error)
}

// ManifestCommand is one entry of the manifest's commands array.
type ManifestCommand struct {
	Name string `json:"name"`
}

// Manifest is the archive-wide command listing.
type Manifest struct {
	Commands []ManifestCommand `json:"commands"`
}

// ParseManifest decodes a manifest and returns its command names.
func ParseManifest(r io.Reader) ([]string, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(m.Commands))
	for _, c := range m.Commands {
		if c.Name != "" {
			names = append(names, c.Name)
		}
	}
	return names, nil
}

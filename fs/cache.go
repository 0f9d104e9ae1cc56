// Package fs keeps the local mirror of the tldr-pages archive on disk.
package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/tldr"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// ArchiveName is the file name of the fetched archive inside the cache
// directory. Its modification time is the only staleness signal.
const ArchiveName = "tldr.zip"

const (
	stagingPrefix = ".staging-"
	partSuffix    = ".part"
)

// Ensure Cache implements tldr.ArchiveStore at compile time.
var _ tldr.ArchiveStore = (*Cache)(nil)

// Cache implements tldr.ArchiveStore on a local directory.
//
// A refresh downloads and extracts into staging locations first and only
// then replaces the live pages. The live tree is not replaced atomically:
// the old archive is removed before the page directories are purged and
// the new archive is moved into place last, so a crash in between leaves
// no archive behind and the next refresh fetches again.
type Cache struct {
	dir string

	// URL of the remote archive.
	URL string

	Fetcher   tldr.ArchiveFetcher
	Extractor tldr.ArchiveExtractor

	// BuildIndex turns manifest names into a command index.
	BuildIndex func(names []string) tldr.CommandIndex

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	group singleflight.Group
	index atomic.Pointer[indexRef]
}

type indexRef struct {
	idx tldr.CommandIndex
}

// NewCache creates a Cache rooted at dir.
func NewCache(dir string, fetcher tldr.ArchiveFetcher, extractor tldr.ArchiveExtractor, buildIndex func([]string) tldr.CommandIndex) *Cache {
	return &Cache{
		dir:        dir,
		URL:        tldr.ArchiveURL,
		Fetcher:    fetcher,
		Extractor:  extractor,
		BuildIndex: buildIndex,
		Now:        time.Now,
	}
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

func (c *Cache) archivePath() string {
	return filepath.Join(c.dir, ArchiveName)
}

// Manifest describes the cached archive.
func (c *Cache) Manifest() (tldr.CacheManifest, error) {
	fi, err := os.Stat(c.archivePath())
	if os.IsNotExist(err) {
		return tldr.CacheManifest{}, nil
	} else if err != nil {
		return tldr.CacheManifest{}, err
	}
	return tldr.CacheManifest{LastFetch: fi.ModTime(), ArchivePresent: true}, nil
}

// Index returns the index built by the last successful refresh.
func (c *Cache) Index() tldr.CommandIndex {
	if ref := c.index.Load(); ref != nil {
		return ref.idx
	}
	return c.BuildIndex(nil)
}

// Refresh brings the mirror up to date and rebuilds the command index.
// Concurrent calls share a single refresh.
func (c *Cache) Refresh(ctx context.Context, req tldr.RefreshRequest) (tldr.CommandIndex, error) {
	v, err, _ := c.group.Do("refresh", func() (any, error) {
		return c.refresh(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return v.(tldr.CommandIndex), nil
}

func (c *Cache) refresh(ctx context.Context, req tldr.RefreshRequest) (tldr.CommandIndex, error) {
	m, err := c.Manifest()
	if err != nil {
		return nil, cacheError(err)
	}

	if !m.NeedsRefresh(c.Now(), req.MaxAgeDays, req.Force) {
		idx, err := c.loadIndex(filepath.Join(c.dir, tldr.ManifestName))
		if err == nil {
			c.index.Store(&indexRef{idx: idx})
			return idx, nil
		}
		// The archive is fresh but the extracted tree is unusable,
		// most likely after an interrupted refresh. Fetch again.
	}

	idx, err := c.update(ctx, req.Languages)
	if err != nil {
		return nil, cacheError(err)
	}
	c.index.Store(&indexRef{idx: idx})
	return idx, nil
}

// update fetches the archive, extracts the wanted languages into a
// staging directory and swaps the result into the cache directory.
func (c *Cache) update(ctx context.Context, langs []tldr.Language) (tldr.CommandIndex, error) {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	part := filepath.Join(c.dir, ArchiveName+"."+id+partSuffix)
	staging := filepath.Join(c.dir, stagingPrefix+id)
	defer os.Remove(part)
	defer os.RemoveAll(staging)

	if err := c.download(ctx, part); err != nil {
		return nil, err
	}

	if _, err := c.Extractor.Extract(ctx, part, staging, KeepFunc(langs)); err != nil {
		return nil, err
	}

	idx, err := c.loadIndex(filepath.Join(staging, tldr.ManifestName))
	if err != nil {
		return nil, err
	}

	if err := c.commit(staging, part); err != nil {
		return nil, err
	}
	return idx, nil
}

func (c *Cache) download(ctx context.Context, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := c.Fetcher.Fetch(ctx, c.URL, f); err != nil {
		f.Close()
		return fmt.Errorf("fetch %s: %w", c.URL, err)
	}
	return f.Close()
}

// commit replaces the live pages with the staged ones.
func (c *Cache) commit(staging, part string) error {
	if err := os.Remove(c.archivePath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := c.purge(filepath.Base(staging), filepath.Base(part)); err != nil {
		return err
	}

	entries, err := os.ReadDir(staging)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.Rename(filepath.Join(staging, e.Name()), filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}

	return os.Rename(part, c.archivePath())
}

// Purge removes every extracted page directory along with leftovers of
// interrupted refreshes. The archive and the manifest are kept.
func (c *Cache) Purge() error {
	return c.purge()
}

// purge is Purge sparing the named entries.
func (c *Cache) purge(except ...string) error {
	entries, err := os.ReadDir(c.dir)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, "pages") && !strings.HasPrefix(name, stagingPrefix) && !strings.HasSuffix(name, partSuffix) {
			continue
		}
		if slices.Contains(except, name) {
			continue
		}
		if err := os.RemoveAll(filepath.Join(c.dir, name)); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cache) loadIndex(path string) (tldr.CommandIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names, err := tldr.ParseManifest(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", tldr.ManifestName, err)
	}
	return c.BuildIndex(names), nil
}

// Status describes the cached archive. The digest is the xxhash of the
// archive file.
func (c *Cache) Status(ctx context.Context, maxAgeDays int) (*tldr.CacheStatus, error) {
	m, err := c.Manifest()
	if err != nil {
		return nil, err
	}

	status := &tldr.CacheStatus{
		Dir:            c.dir,
		ArchivePresent: m.ArchivePresent,
		Stale:          m.NeedsRefresh(c.Now(), maxAgeDays, false),
		Commands:       c.Index().Len(),
	}
	if !m.ArchivePresent {
		return status, nil
	}

	// The index may not have been loaded by this process yet.
	if status.Commands == 0 {
		if idx, err := c.loadIndex(filepath.Join(c.dir, tldr.ManifestName)); err == nil {
			status.Commands = idx.Len()
		}
	}

	status.LastFetch = m.LastFetch
	status.Age = c.Now().Sub(m.LastFetch)

	digest, err := fileDigest(c.archivePath())
	if err != nil {
		return nil, err
	}
	status.Digest = digest

	for _, l := range tldr.Languages {
		if c.LanguageCached(ctx, l) {
			status.Languages = append(status.Languages, l)
		}
	}
	return status, nil
}

func fileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// KeepFunc returns an archive member filter selecting the manifest, the
// default language pages and the pages of every language in langs.
func KeepFunc(langs []tldr.Language) func(name string) bool {
	prefixes := []string{tldr.DefaultLanguage.PagesDir() + "/"}
	for _, l := range langs {
		if l != tldr.DefaultLanguage && l.IsKnown() {
			prefixes = append(prefixes, l.PagesDir()+"/")
		}
	}

	return func(name string) bool {
		if name == tldr.ManifestName {
			return true
		}
		for _, p := range prefixes {
			if strings.HasPrefix(name, p) {
				return true
			}
		}
		return false
	}
}

func cacheError(err error) error {
	return tldr.Errorf(tldr.ECACHEUPDATE, "An error occurred while updating page cache: %v", err)
}

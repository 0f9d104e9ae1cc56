package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/tldr"
)

// Ensure Cache implements tldr.PageSource at compile time.
var _ tldr.PageSource = (*Cache)(nil)

// PagePath returns the location of the fragment for the triple:
// <dir>/pages[.<lang>]/<platform>/<command>.md
func (c *Cache) PagePath(platform tldr.Platform, lang tldr.Language, command string) (string, bool) {
	if command == "" || command == "." || command == ".." || strings.ContainsAny(command, `/\`) {
		return "", false
	}
	return filepath.Join(c.dir, lang.PagesDir(), string(platform), command+".md"), true
}

// PageExists reports whether the fragment for the triple is on disk.
func (c *Cache) PageExists(ctx context.Context, platform tldr.Platform, lang tldr.Language, command string) bool {
	path, ok := c.PagePath(platform, lang, command)
	if !ok {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// LanguageCached reports whether the page directory for lang exists.
func (c *Cache) LanguageCached(ctx context.Context, lang tldr.Language) bool {
	fi, err := os.Stat(filepath.Join(c.dir, lang.PagesDir()))
	return err == nil && fi.IsDir()
}

// ReadPage returns the raw fragment.
func (c *Cache) ReadPage(ctx context.Context, platform tldr.Platform, lang tldr.Language, command string) ([]byte, error) {
	path, ok := c.PagePath(platform, lang, command)
	if !ok {
		return nil, tldr.Errorf(tldr.EPAGENOTFOUND, "no page for %q", command)
	}
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, tldr.Errorf(tldr.EPAGENOTFOUND, "no page for %q on %s in %s", command, platform, lang)
	}
	return b, err
}

// Package zip implements tldr.ArchiveExtractor for zip archives.
package zip

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/tldr"
	"github.com/klauspost/compress/zip"
)

// Ensure Extractor implements tldr.ArchiveExtractor at compile time.
var _ tldr.ArchiveExtractor = (*Extractor)(nil)

// Extractor unpacks selected members of a zip archive.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract writes every member for which keep returns true below dir.
// Member names that would escape dir are rejected.
func (e *Extractor) Extract(ctx context.Context, archivePath, dir string, keep func(name string) bool) (int, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return 0, fmt.Errorf("open archive: %w", err)
	}
	defer r.Close()

	var n int
	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if !keep(f.Name) {
			continue
		}

		target, err := memberPath(dir, f.Name)
		if err != nil {
			return n, err
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return n, err
			}
			continue
		}

		if err := writeMember(f, target); err != nil {
			return n, fmt.Errorf("extract %s: %w", f.Name, err)
		}
		n++
	}

	return n, nil
}

// memberPath maps an archive member name to a path below dir.
func memberPath(dir, name string) (string, error) {
	clean := path.Clean(strings.ReplaceAll(name, `\`, "/"))
	if clean == "." || path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", tldr.Errorf(tldr.EINVALID, "illegal archive member %q", name)
	}
	return filepath.Join(dir, filepath.FromSlash(clean)), nil
}

func writeMember(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Package lookup resolves launcher queries to tldr pages.
package lookup

import (
	"bytes"
	"context"
	"fmt"

	"github.com/fwojciec/tldr"
)

// Request is a fully resolved lookup: the command name plus the platform
// and languages to search.
type Request struct {
	Command   string
	Platform  tldr.Platform
	Languages []tldr.Language
	InfoURL   string

	// LanguageOverride is set when the user asked for a single language
	// explicitly.
	LanguageOverride bool
}

// lastLanguage is the language a failed lookup is reported for.
func (r *Request) lastLanguage() tldr.Language {
	if len(r.Languages) == 0 {
		return tldr.DefaultLanguage
	}
	return r.Languages[len(r.Languages)-1]
}

// Resolver finds the page for a Request on whatever the archive store
// most recently materialized. It never performs network I/O.
type Resolver struct {
	Store tldr.ArchiveStore
	Pages tldr.PageSource
}

// NewResolver creates a new Resolver.
func NewResolver(store tldr.ArchiveStore, pages tldr.PageSource) *Resolver {
	return &Resolver{Store: store, Pages: pages}
}

// Resolve searches platforms in tldr.PlatformSearchOrder and, within each
// platform, languages in preference order, returning the first page found.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*tldr.ResolvedPage, error) {
	idx := r.Store.Index()
	if idx == nil || idx.IsEmpty() {
		return nil, tldr.Errorf(tldr.EEMPTYINDEX, "The command index is empty.")
	}
	if !idx.Contains(req.Command) {
		return nil, tldr.Errorf(tldr.EUNKNOWNCOMMAND, "'%s' command not found. Ensure that the command is correct.", tldr.DisplayName(req.Command))
	}

	langs := req.Languages
	if len(langs) == 0 {
		langs = []tldr.Language{tldr.DefaultLanguage}
	}

	for _, platform := range tldr.PlatformSearchOrder(req.Platform) {
		for _, lang := range langs {
			if !r.Pages.PageExists(ctx, platform, lang, req.Command) {
				continue
			}

			b, err := r.Pages.ReadPage(ctx, platform, lang, req.Command)
			if err != nil {
				return nil, err
			}
			page, err := tldr.ParsePage(bytes.NewReader(b), req.InfoURL)
			if err != nil {
				return nil, fmt.Errorf("parse page %s/%s/%s: %w", lang, platform, req.Command, err)
			}

			return &tldr.ResolvedPage{
				Page:              *page,
				Command:           req.Command,
				Language:          lang,
				ResolvedPlatform:  platform,
				RequestedPlatform: req.Platform,
			}, nil
		}
	}

	last := req.lastLanguage()
	if req.LanguageOverride && r.Pages.LanguageCached(ctx, last) {
		return nil, tldr.Errorf(tldr.EPAGENOTFOUND, "No results found for '%s' command in '%s'.", tldr.DisplayName(req.Command), last)
	}
	return nil, tldr.Errorf(tldr.ELANGUAGEUNAVAILABLE, "Locally cached tldr pages for '%s' not found.", last)
}

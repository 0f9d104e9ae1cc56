// Package tldr resolves command names to tldr-pages usage examples served
// from a periodically refreshed local mirror of the tldr-pages archive.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., zip/, bloom/, kong/).
package tldr

// Upstream locations used by the cache and by the user-facing hints.
const (
	ArchiveURL     = "https://raw.githubusercontent.com/tldr-pages/tldr-pages.github.io/master/assets/tldr.zip"
	TranslationURL = "https://github.com/tldr-pages/tldr/blob/master/CONTRIBUTING.md#translations"
	IssueURL       = "https://github.com/tldr-pages/tldr/issues/new?title=page%20request:%20"
)

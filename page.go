package tldr

import "context"

// Suggestion is one usage example from a page.
type Suggestion struct {
	Command     string `json:"command"`
	Explanation string `json:"explanation"`
}

// Page is the parsed content of a single page fragment.
type Page struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	ReferenceURL string       `json:"referenceUrl"`
	Suggestions  []Suggestion `json:"suggestions"`
}

// ResolvedPage is a page together with where it was found.
type ResolvedPage struct {
	Page

	Command           string   `json:"command"`
	Language          Language `json:"language"`
	ResolvedPlatform  Platform `json:"resolvedPlatform"`
	RequestedPlatform Platform `json:"requestedPlatform"`
}

// PlatformFallback reports whether the page was taken from a platform other
// than the requested one. Common pages never count as a fallback.
func (p *ResolvedPage) PlatformFallback() bool {
	return p.ResolvedPlatform != p.RequestedPlatform && p.ResolvedPlatform != PlatformCommon
}

// PageSource reads page fragments from wherever the archive was materialized.
// Implementations never perform network I/O.
type PageSource interface {
	// PageExists reports whether the fragment for the triple is present.
	PageExists(ctx context.Context, platform Platform, lang Language, command string) bool

	// LanguageCached reports whether any pages for lang are present.
	LanguageCached(ctx context.Context, lang Language) bool

	// ReadPage returns the raw fragment text.
	// Returns EPAGENOTFOUND if the fragment does not exist.
	ReadPage(ctx context.Context, platform Platform, lang Language, command string) ([]byte, error)
}

package mock

import (
	"context"

	"github.com/fwojciec/tldr"
)

var _ tldr.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of tldr.PageSource.
type PageSource struct {
	PageExistsFn     func(ctx context.Context, platform tldr.Platform, lang tldr.Language, command string) bool
	LanguageCachedFn func(ctx context.Context, lang tldr.Language) bool
	ReadPageFn       func(ctx context.Context, platform tldr.Platform, lang tldr.Language, command string) ([]byte, error)
}

func (s *PageSource) PageExists(ctx context.Context, platform tldr.Platform, lang tldr.Language, command string) bool {
	return s.PageExistsFn(ctx, platform, lang, command)
}

func (s *PageSource) LanguageCached(ctx context.Context, lang tldr.Language) bool {
	return s.LanguageCachedFn(ctx, lang)
}

func (s *PageSource) ReadPage(ctx context.Context, platform tldr.Platform, lang tldr.Language, command string) ([]byte, error) {
	return s.ReadPageFn(ctx, platform, lang, command)
}

var _ tldr.QueryParser = (*QueryParser)(nil)

// QueryParser is a mock implementation of tldr.QueryParser.
type QueryParser struct {
	ParseQueryFn func(input string) (*tldr.QueryOptions, error)
}

func (p *QueryParser) ParseQuery(input string) (*tldr.QueryOptions, error) {
	return p.ParseQueryFn(input)
}

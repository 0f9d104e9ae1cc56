package lookup

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fwojciec/tldr"
)

// Service is the long-lived entry point used by a launcher host. It owns
// the configuration and delegates to the archive store and resolver.
// Calls may come from several goroutines; refreshes are serialized by the
// store.
type Service struct {
	Store   tldr.ArchiveStore
	Pages   tldr.PageSource
	Queries tldr.QueryParser
	Logger  *slog.Logger

	resolver *Resolver

	mu     sync.RWMutex
	config tldr.Config
}

// NewService creates a new Service. A nil logger discards log output.
func NewService(store tldr.ArchiveStore, pages tldr.PageSource, queries tldr.QueryParser, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		Store:    store,
		Pages:    pages,
		Queries:  queries,
		Logger:   logger,
		resolver: NewResolver(store, pages),
		config:   tldr.DefaultConfig(tldr.DefaultLanguage),
	}
}

// Config returns the current configuration.
func (s *Service) Config() tldr.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// setConfig normalizes and installs cfg, returning the previous one.
func (s *Service) setConfig(cfg tldr.Config) tldr.Config {
	cfg.Normalize(tldr.DefaultLanguage)

	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.config
	s.config = cfg
	return old
}

// Configure installs cfg without touching the page cache.
func (s *Service) Configure(cfg tldr.Config) {
	s.setConfig(cfg)
}

// Initialize installs cfg and refreshes the page cache if it is stale.
// A refresh failure is logged and returned but leaves the service usable.
func (s *Service) Initialize(ctx context.Context, cfg tldr.Config) error {
	s.setConfig(cfg)
	return s.refresh(ctx, false)
}

// ConfigChanged installs cfg. The cache is refreshed unconditionally when
// the set of configured languages changed, and otherwise only if stale.
func (s *Service) ConfigChanged(ctx context.Context, cfg tldr.Config) error {
	old := s.setConfig(cfg)
	return s.refresh(ctx, !tldr.SameLanguages(old.Languages, cfg.Languages))
}

// Refresh forces a cache update.
func (s *Service) Refresh(ctx context.Context) error {
	return s.refresh(ctx, true)
}

func (s *Service) refresh(ctx context.Context, force bool) error {
	cfg := s.Config()
	_, err := s.Store.Refresh(ctx, tldr.RefreshRequest{
		Languages:  cfg.Languages,
		MaxAgeDays: cfg.CacheUpdateAfter,
		Force:      force,
	})
	if err != nil {
		s.Logger.Error("page cache update failed", "err", tldr.ErrorMessage(err))
	}
	return err
}

// Status describes the page cache.
func (s *Service) Status(ctx context.Context) (*tldr.CacheStatus, error) {
	return s.Store.Status(ctx, s.Config().CacheUpdateAfter)
}

// Capabilities lists the keyword items the host should register.
func (s *Service) Capabilities() []tldr.Item {
	return []tldr.Item{
		{
			Kind:        tldr.ItemKeyword,
			Label:       "tldr: Search",
			Description: "Search for console commands in tldr pages",
			Target:      tldr.TargetSearch,
		},
		{
			Kind:        tldr.ItemKeyword,
			Label:       "tldr: Update Page Cache",
			Description: "Update local page cache from tldr.sh",
			Target:      tldr.TargetUpdate,
		},
	}
}

// ResolveQuery parses input and returns the matching page.
func (s *Service) ResolveQuery(ctx context.Context, input string) (*tldr.ResolvedPage, error) {
	req, err := s.request(input)
	if err != nil {
		return nil, err
	}
	return s.resolver.Resolve(ctx, *req)
}

// request turns raw input into a Request using the current configuration.
func (s *Service) request(input string) (*Request, error) {
	opts, err := s.Queries.ParseQuery(input)
	if err != nil {
		return nil, err
	}
	if len(opts.Terms) == 0 {
		return nil, tldr.Errorf(tldr.EINVALID, "command required")
	}

	cfg := s.Config()
	req := &Request{
		Command:   opts.Command(),
		Platform:  cfg.Platform,
		Languages: tldr.EffectiveLanguages(cfg.Languages),
		InfoURL:   cfg.InfoURL,
	}
	if opts.Platform != nil {
		req.Platform = *opts.Platform
	}
	if opts.Language != nil {
		req.Languages = []tldr.Language{*opts.Language}
		req.LanguageOverride = true
	}
	return req, nil
}

// Suggest resolves input and renders the outcome, including errors, as
// launcher items. Empty input yields no items.
func (s *Service) Suggest(ctx context.Context, input string) []tldr.Item {
	items, _ := s.Query(ctx, input)
	return items
}

// Query is like Suggest but also returns the error that the items
// describe, if any.
func (s *Service) Query(ctx context.Context, input string) ([]tldr.Item, error) {
	req, err := s.request(input)
	if tldr.ErrorCode(err) == tldr.EINVALID {
		return nil, err
	} else if err != nil {
		return ErrorItems(err, nil), err
	}

	page, err := s.resolver.Resolve(ctx, *req)
	if err != nil {
		return ErrorItems(err, req), err
	}
	return PageItems(page), nil
}

// Execute applies action to item and reports what the host should do.
// Selecting the update keyword refreshes the cache.
func (s *Service) Execute(ctx context.Context, item tldr.Item, action string) (tldr.Effect, error) {
	switch {
	case item.Kind == tldr.ItemKeyword && item.Target == tldr.TargetUpdate:
		if err := s.Refresh(ctx); err != nil {
			return tldr.Effect{Kind: tldr.EffectNone}, err
		}
		return tldr.Effect{Kind: tldr.EffectRefreshed}, nil
	case item.Kind == tldr.ItemCommand:
		return tldr.Effect{Kind: tldr.EffectCopy, Value: item.Target}, nil
	case item.Kind == tldr.ItemURL && action == tldr.ActionCopy:
		return tldr.Effect{Kind: tldr.EffectCopy, Value: item.Target}, nil
	case item.Kind == tldr.ItemURL && (action == "" || strings.Contains(action, tldr.ActionBrowse)):
		return tldr.Effect{
			Kind:    tldr.EffectOpenURL,
			Value:   item.Target,
			Private: action == tldr.ActionBrowsePrivate,
		}, nil
	}
	return tldr.Effect{Kind: tldr.EffectNone}, nil
}

// Package toml loads tldr settings from a TOML file.
package toml

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fwojciec/tldr"
	"github.com/pelletier/go-toml/v2"
)

// file mirrors the settings file:
//
//	[main]
//	platform = "linux"
//	language = "fr, en"
//	info_url = "https://duckduckgo.com/?q={query}"
//	cache_update_after = 7
type file struct {
	Main struct {
		Platform         string `toml:"platform"`
		Language         string `toml:"language"`
		InfoURL          string `toml:"info_url"`
		CacheUpdateAfter any    `toml:"cache_update_after"`
	} `toml:"main"`
}

// LoadConfig reads the settings file at path and returns a normalized
// configuration. A missing file yields the defaults.
func LoadConfig(path string, defaultLanguage tldr.Language) (tldr.Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return tldr.DefaultConfig(defaultLanguage), nil
	} else if err != nil {
		return tldr.Config{}, err
	}
	return ParseConfig(b, defaultLanguage)
}

// ParseConfig decodes settings from b.
func ParseConfig(b []byte, defaultLanguage tldr.Language) (tldr.Config, error) {
	var f file
	if err := toml.Unmarshal(b, &f); err != nil {
		return tldr.Config{}, tldr.Errorf(tldr.EINVALID, "invalid settings file: %v", err)
	}

	cfg := tldr.Config{
		Platform:         tldr.Platform(f.Main.Platform),
		InfoURL:          f.Main.InfoURL,
		CacheUpdateAfter: days(f.Main.CacheUpdateAfter),
	}
	if strings.TrimSpace(f.Main.Language) != "" {
		cfg.Languages = tldr.ParseLanguageList(f.Main.Language)
	}
	cfg.Normalize(defaultLanguage)
	return cfg, nil
}

// days accepts integers and numeric strings. Anything else yields 0,
// which Normalize replaces with the default.
func days(v any) int {
	switch v := v.(type) {
	case int64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Format renders cfg as a settings file.
func Format(cfg tldr.Config) (string, error) {
	var f file
	f.Main.Platform = string(cfg.Platform)
	langs := make([]string, 0, len(cfg.Languages))
	for _, l := range cfg.Languages {
		langs = append(langs, string(l))
	}
	f.Main.Language = strings.Join(langs, ",")
	f.Main.InfoURL = cfg.InfoURL
	f.Main.CacheUpdateAfter = int64(cfg.CacheUpdateAfter)

	b, err := toml.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("encode settings: %w", err)
	}
	return string(b), nil
}

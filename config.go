package tldr

import "strings"

// Config holds the settings consumed by the lookup engine.
type Config struct {
	Platform         Platform
	Languages        []Language
	InfoURL          string
	CacheUpdateAfter int
}

// Normalize replaces invalid or missing values with defaults. Languages
// fall back to defaultLanguage when none of the configured ones is known.
func (c *Config) Normalize(defaultLanguage Language) {
	if p, err := ParsePlatform(string(c.Platform)); err == nil {
		c.Platform = p
	} else {
		c.Platform = DefaultPlatform
	}

	var langs []Language
	for _, l := range c.Languages {
		if l.IsKnown() {
			langs = appendUnique(langs, l)
		}
	}
	if len(langs) == 0 {
		if !defaultLanguage.IsKnown() {
			defaultLanguage = DefaultLanguage
		}
		langs = []Language{defaultLanguage}
	}
	c.Languages = langs

	c.InfoURL = strings.TrimSpace(c.InfoURL)
	if c.InfoURL == "" {
		c.InfoURL = DefaultInfoURL
	}

	if c.CacheUpdateAfter <= 0 {
		c.CacheUpdateAfter = DefaultCacheUpdateAfter
	}
}

// DefaultConfig returns a normalized configuration for defaultLanguage.
func DefaultConfig(defaultLanguage Language) Config {
	c := Config{}
	c.Normalize(defaultLanguage)
	return c
}

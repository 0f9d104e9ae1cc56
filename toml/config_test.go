package toml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/tldr"
	"github.com/fwojciec/tldr/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	t.Run("reads every setting", func(t *testing.T) {
		t.Parallel()

		cfg, err := toml.ParseConfig([]byte(`
[main]
platform = "linux"
language = "fr, pt_BR"
info_url = "https://duckduckgo.com/?q={query}"
cache_update_after = 3
`), "en")

		require.NoError(t, err)
		assert.Equal(t, tldr.PlatformLinux, cfg.Platform)
		assert.Equal(t, []tldr.Language{"fr", "pt_BR"}, cfg.Languages)
		assert.Equal(t, "https://duckduckgo.com/?q={query}", cfg.InfoURL)
		assert.Equal(t, 3, cfg.CacheUpdateAfter)
	})

	t.Run("applies defaults for missing settings", func(t *testing.T) {
		t.Parallel()

		cfg, err := toml.ParseConfig([]byte(""), "de")

		require.NoError(t, err)
		assert.Equal(t, tldr.PlatformWindows, cfg.Platform)
		assert.Equal(t, []tldr.Language{"de"}, cfg.Languages)
		assert.Equal(t, tldr.DefaultInfoURL, cfg.InfoURL)
		assert.Equal(t, tldr.DefaultCacheUpdateAfter, cfg.CacheUpdateAfter)
	})

	t.Run("replaces invalid values with defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := toml.ParseConfig([]byte(`
[main]
platform = "plan9"
language = "xx, yy"
cache_update_after = "soon"
`), "en")

		require.NoError(t, err)
		assert.Equal(t, tldr.PlatformWindows, cfg.Platform)
		assert.Equal(t, []tldr.Language{"en"}, cfg.Languages)
		assert.Equal(t, tldr.DefaultCacheUpdateAfter, cfg.CacheUpdateAfter)
	})

	t.Run("accepts numeric strings for the interval", func(t *testing.T) {
		t.Parallel()

		cfg, err := toml.ParseConfig([]byte("[main]\ncache_update_after = \"14\"\n"), "en")

		require.NoError(t, err)
		assert.Equal(t, 14, cfg.CacheUpdateAfter)
	})

	t.Run("returns error for malformed file", func(t *testing.T) {
		t.Parallel()

		_, err := toml.ParseConfig([]byte("[main\nplatform ="), "en")

		require.Error(t, err)
		assert.Equal(t, tldr.EINVALID, tldr.ErrorCode(err))
	})
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("returns defaults for missing file", func(t *testing.T) {
		t.Parallel()

		cfg, err := toml.LoadConfig(filepath.Join(t.TempDir(), "missing.toml"), "fr")

		require.NoError(t, err)
		assert.Equal(t, tldr.DefaultConfig("fr"), cfg)
	})

	t.Run("round trips through Format", func(t *testing.T) {
		t.Parallel()

		want := tldr.Config{
			Platform:         tldr.PlatformOSX,
			Languages:        []tldr.Language{"ja", "en"},
			InfoURL:          "https://example.com/?q={query}",
			CacheUpdateAfter: 30,
		}
		s, err := toml.Format(want)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(s), 0644))

		got, err := toml.LoadConfig(path, "en")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

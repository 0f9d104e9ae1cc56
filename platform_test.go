package tldr_test

import (
	"testing"

	"github.com/fwojciec/tldr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	t.Parallel()

	p, err := tldr.ParsePlatform("OSX")
	require.NoError(t, err)
	assert.Equal(t, tldr.PlatformOSX, p)

	_, err = tldr.ParsePlatform("common")
	assert.Equal(t, tldr.EINVALIDOPTIONS, tldr.ErrorCode(err))
	assert.Contains(t, tldr.ErrorMessage(err), "platform")

	_, err = tldr.ParsePlatform("plan9")
	assert.Equal(t, tldr.EINVALIDOPTIONS, tldr.ErrorCode(err))
}

func TestPlatformSearchOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]tldr.Platform{tldr.PlatformOSX, tldr.PlatformCommon, tldr.PlatformLinux, tldr.PlatformWindows, tldr.PlatformSunOS},
		tldr.PlatformSearchOrder(tldr.PlatformOSX))
	assert.Equal(t,
		[]tldr.Platform{tldr.PlatformWindows, tldr.PlatformCommon, tldr.PlatformLinux, tldr.PlatformOSX, tldr.PlatformSunOS},
		tldr.PlatformSearchOrder(tldr.PlatformWindows))
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	l, err := tldr.ParseLanguage("pt_BR")
	require.NoError(t, err)
	assert.Equal(t, tldr.Language("pt_BR"), l)

	_, err = tldr.ParseLanguage("pt_br")
	assert.Equal(t, tldr.EINVALIDOPTIONS, tldr.ErrorCode(err))
	assert.Contains(t, tldr.ErrorMessage(err), "language")
}

func TestParseLanguageList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []tldr.Language{"fr", "de"}, tldr.ParseLanguageList("fr, xx,de,fr"))
	assert.Empty(t, tldr.ParseLanguageList(""))
}

func TestLanguage_PagesDir(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pages", tldr.Language("en").PagesDir())
	assert.Equal(t, "pages.zh_TW", tldr.Language("zh_TW").PagesDir())
}

func TestEffectiveLanguages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		configured []tldr.Language
		want       []tldr.Language
	}{
		{name: "appends default", configured: []tldr.Language{"fr"}, want: []tldr.Language{"fr", "en"}},
		{name: "keeps explicit default position", configured: []tldr.Language{"en", "fr"}, want: []tldr.Language{"en", "fr"}},
		{name: "drops unknown and duplicates", configured: []tldr.Language{"xx", "de", "de"}, want: []tldr.Language{"de", "en"}},
		{name: "empty means default", configured: nil, want: []tldr.Language{"en"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tldr.EffectiveLanguages(tt.configured))
		})
	}
}

func TestSameLanguages(t *testing.T) {
	t.Parallel()

	assert.True(t, tldr.SameLanguages([]tldr.Language{"fr", "en"}, []tldr.Language{"en", "fr"}))
	assert.True(t, tldr.SameLanguages(nil, nil))
	assert.False(t, tldr.SameLanguages([]tldr.Language{"fr"}, []tldr.Language{"fr", "de"}))
	assert.False(t, tldr.SameLanguages([]tldr.Language{"fr", "de"}, []tldr.Language{"fr"}))
}

func TestResolvedPage_PlatformFallback(t *testing.T) {
	t.Parallel()

	page := func(resolved tldr.Platform) *tldr.ResolvedPage {
		return &tldr.ResolvedPage{ResolvedPlatform: resolved, RequestedPlatform: tldr.PlatformWindows}
	}

	assert.False(t, page(tldr.PlatformWindows).PlatformFallback())
	assert.False(t, page(tldr.PlatformCommon).PlatformFallback())
	assert.True(t, page(tldr.PlatformLinux).PlatformFallback())
}

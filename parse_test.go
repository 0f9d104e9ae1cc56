package tldr_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/fwojciec/tldr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	t.Parallel()

	t.Run("parses title description link and examples", func(t *testing.T) {
		t.Parallel()

		// Given
		src := strings.Join([]string{
			"# tar",
			"",
			"> Archiving utility.",
			"> Often combined with a compression method.",
			"> More information: <https://www.gnu.org/software/tar>.",
			"",
			"- [c]reate an archive and write it to a [f]ile:",
			"",
			"`tar cf {{path/to/target.tar}} {{path/to/file1}}`",
			"",
			"- E[x]tract a (compressed) archive [f]ile into the current directory:",
			"",
			"`tar xf {{path/to/source.tar[.gz|.bz2|.xz]}}`",
		}, "\n")

		// When
		page, err := tldr.ParsePage(strings.NewReader(src), tldr.DefaultInfoURL)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "tar", page.Title)
		assert.Equal(t, "Archiving utility. Often combined with a compression method.", page.Description)
		assert.Equal(t, "https://www.gnu.org/software/tar", page.ReferenceURL)
		assert.Equal(t, []tldr.Suggestion{
			{Command: "tar cf {path/to/target.tar} {path/to/file1}", Explanation: "[c]reate an archive and write it to a [f]ile"},
			{Command: "tar xf {path/to/source.tar[.gz|.bz2|.xz]}", Explanation: "E[x]tract a (compressed) archive [f]ile into the current directory"},
		}, page.Suggestions)
	})

	t.Run("parses minimal page with link and one example", func(t *testing.T) {
		t.Parallel()

		src := "# Foo\n> Description here.\n> More info: <https://example.com/foo>\n- Run foo:\n`foo {{bar}}`\n"

		page, err := tldr.ParsePage(strings.NewReader(src), tldr.DefaultInfoURL)

		require.NoError(t, err)
		assert.Equal(t, "Description here.", page.Description)
		assert.Equal(t, "https://example.com/foo", page.ReferenceURL)
		assert.Equal(t, []tldr.Suggestion{{Command: "foo {bar}", Explanation: "Run foo"}}, page.Suggestions)
	})

	t.Run("builds info URL when page has no link", func(t *testing.T) {
		t.Parallel()

		src := "# git commit\n\n> Commit files to the repository.\n"

		page, err := tldr.ParsePage(strings.NewReader(src), "https://duckduckgo.com/?q={query}")

		require.NoError(t, err)
		assert.Equal(t, "https://duckduckgo.com/?q=git%20commit%20command", page.ReferenceURL)
	})

	t.Run("returns empty suggestions for page without examples", func(t *testing.T) {
		t.Parallel()

		page, err := tldr.ParsePage(strings.NewReader("# ls\n> List files.\n"), "")

		require.NoError(t, err)
		assert.NotNil(t, page.Suggestions)
		assert.Empty(t, page.Suggestions)
		assert.Equal(t, "List files.", page.Description)
	})

	t.Run("keeps example text without trailing colon", func(t *testing.T) {
		t.Parallel()

		page, err := tldr.ParsePage(strings.NewReader("# x\n- Run {{it}}\n`x {{arg}}`\n"), "")

		require.NoError(t, err)
		require.Len(t, page.Suggestions, 1)
		assert.Equal(t, "Run {it}", page.Suggestions[0].Explanation)
		assert.Equal(t, "x {arg}", page.Suggestions[0].Command)
	})

	t.Run("ignores unrecognized lines", func(t *testing.T) {
		t.Parallel()

		page, err := tldr.ParsePage(strings.NewReader("# x\nstray text\n\n    indented\n"), "")

		require.NoError(t, err)
		assert.Equal(t, "x", page.Title)
		assert.Empty(t, page.Description)
		assert.Empty(t, page.Suggestions)
	})
}

func TestInfoURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://google.com/search?q=tar%20command", tldr.InfoURL("", "tar"))
	assert.Equal(t, "https://example.com/tar%20command", tldr.InfoURL("https://example.com/{query}", "tar"))
	assert.Equal(t, "https://google.com/search?q=g%2B%2B%20command", tldr.InfoURL("", "g++"))
	assert.Equal(t, "https://google.com/search?q=a%26b%3Dc%20command", tldr.InfoURL("", "a&b=c"))
}

func TestInfoURL_DecodesToTitle(t *testing.T) {
	t.Parallel()

	for _, title := range []string{"tar", "g++", "a&b=c", "git commit"} {
		u, err := url.Parse(tldr.InfoURL("", title))
		require.NoError(t, err)
		assert.Equal(t, title+" command", u.Query().Get("q"))
	}
}

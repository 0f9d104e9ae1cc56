package tldr

import (
	"bufio"
	"io"
	"net/url"
	"regexp"
	"strings"
)

// DefaultInfoURL is the search template used for pages without a reference link.
const DefaultInfoURL = "https://google.com/search?q={query}"

var referenceURLRe = regexp.MustCompile(`(https?://(?:[a-zA-Z0-9$-_@.&+!*(),]|%[0-9a-fA-F]{2})+)>`)

var braceReplacer = strings.NewReplacer("{{", "{", "}}", "}")

// ParsePage parses a page fragment. Lines are handled independently:
// "#" sets the title, ">" adds description or the reference link, "-"
// starts an example and "`" completes it with the command literal.
// When the page has no reference link one is built from infoURL by
// substituting "<title> command" for {query}.
func ParsePage(r io.Reader, infoURL string) (*Page, error) {
	page := &Page{Suggestions: []Suggestion{}}
	var desc []string
	var explanation string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "#"):
			page.Title = strings.TrimSpace(strings.TrimLeft(line, "#"))
		case strings.HasPrefix(line, ">"):
			if m := referenceURLRe.FindStringSubmatch(line); m != nil {
				page.ReferenceURL = m[1]
				continue
			}
			if d := strings.TrimSpace(strings.TrimLeft(line, ">")); d != "" {
				desc = append(desc, d)
			}
		case strings.HasPrefix(line, "-"):
			explanation = strings.TrimSpace(braceReplacer.Replace(line[1:]))
			explanation = strings.TrimSpace(strings.TrimSuffix(explanation, ":"))
		case strings.HasPrefix(line, "`"):
			command := strings.Trim(strings.TrimSpace(line), "`")
			page.Suggestions = append(page.Suggestions, Suggestion{
				Command:     strings.TrimSpace(braceReplacer.Replace(command)),
				Explanation: explanation,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	page.Description = strings.Join(desc, " ")
	if page.ReferenceURL == "" {
		page.ReferenceURL = InfoURL(infoURL, page.Title)
	}
	return page, nil
}

// InfoURL substitutes "<title> command", percent-encoded, for the {query}
// placeholder in template.
func InfoURL(template, title string) string {
	if template == "" {
		template = DefaultInfoURL
	}
	return strings.ReplaceAll(template, "{query}", QueryEscape(title+" command"))
}

// QueryEscape percent-encodes s for use inside a query string. Spaces
// become %20 rather than "+".
func QueryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

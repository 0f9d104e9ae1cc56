package lookup

import (
	"fmt"

	"github.com/fwojciec/tldr"
)

// PageItems renders a resolved page: a link item carrying the description,
// then one command item per example. A platform fallback is announced by a
// leading notice.
func PageItems(page *tldr.ResolvedPage) []tldr.Item {
	items := make([]tldr.Item, 0, len(page.Suggestions)+2)

	if page.PlatformFallback() {
		items = append(items, tldr.Item{
			Kind:        tldr.ItemError,
			Label:       fmt.Sprintf("'%s' command not found for %s.", tldr.DisplayName(page.Command), page.RequestedPlatform),
			Description: fmt.Sprintf("Showing results for %s.", page.ResolvedPlatform),
		})
	}

	label := page.Description
	if label == "" {
		label = page.Title
	}
	items = append(items, tldr.Item{
		Kind:        tldr.ItemURL,
		Label:       label,
		Description: "URL: " + page.ReferenceURL,
		Target:      page.ReferenceURL,
	})

	for _, s := range page.Suggestions {
		items = append(items, tldr.Item{
			Kind:        tldr.ItemCommand,
			Label:       s.Command,
			Description: s.Explanation,
			Target:      s.Command,
		})
	}
	return items
}

// ErrorItems renders err with a hint and, where one helps, a link.
// req may be nil when the query could not be parsed.
func ErrorItems(err error, req *Request) []tldr.Item {
	msg := tldr.ErrorMessage(err)

	switch tldr.ErrorCode(err) {
	case tldr.EINVALIDOPTIONS:
		return []tldr.Item{errorItem("Invalid input format", msg)}
	case tldr.EEMPTYINDEX:
		return []tldr.Item{errorItem(msg, "Retry updating page cache as there may have been a problem during the operation.")}
	case tldr.ECACHEUPDATE:
		return []tldr.Item{errorItem("Page cache update failed.", msg)}
	}

	if req == nil {
		return []tldr.Item{errorItem(msg, "")}
	}
	name := tldr.DisplayName(req.Command)
	lang := req.lastLanguage()

	switch tldr.ErrorCode(err) {
	case tldr.EUNKNOWNCOMMAND:
		target := tldr.IssueURL + tldr.QueryEscape(name)
		return []tldr.Item{
			errorItem(msg, "If the command is correct, it may not yet be available in tldr pages."),
			linkItem(fmt.Sprintf("Request tldr page for '%s' command.", name), target),
		}
	case tldr.EPAGENOTFOUND:
		return []tldr.Item{
			errorItem(msg, fmt.Sprintf("tldr page for '%s' command is not yet available for the specified language.", name)),
			linkItem(fmt.Sprintf("Contribute tldr page for '%s' command in '%s'.", name, lang), tldr.TranslationURL),
		}
	case tldr.ELANGUAGEUNAVAILABLE:
		return []tldr.Item{
			errorItem(msg, fmt.Sprintf("Try adding '%s' to the language option in the config file or updating the page cache.", lang)),
		}
	}
	return []tldr.Item{errorItem(msg, "")}
}

func errorItem(label, description string) tldr.Item {
	return tldr.Item{Kind: tldr.ItemError, Label: label, Description: description}
}

func linkItem(label, target string) tldr.Item {
	return tldr.Item{Kind: tldr.ItemURL, Label: label, Description: "URL: " + target, Target: target}
}

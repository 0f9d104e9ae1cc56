package tldr

import "strings"

// QueryOptions is the structured form of a launcher query such as
// "git commit -p linux -L fr".
type QueryOptions struct {
	Platform *Platform
	Language *Language
	Terms    []string
}

// Command returns the page name for the query terms. Multi-word commands
// are joined with "-", so "git commit" becomes "git-commit".
func (q *QueryOptions) Command() string {
	return strings.Join(q.Terms, "-")
}

// QueryParser turns raw launcher input into QueryOptions.
type QueryParser interface {
	// ParseQuery returns EINVALIDOPTIONS for an unrecognized flag or a
	// platform or language outside the known set.
	ParseQuery(input string) (*QueryOptions, error)
}

// DisplayName renders a page name the way a user types it.
func DisplayName(command string) string {
	return strings.ReplaceAll(command, "-", " ")
}

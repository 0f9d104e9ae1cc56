// Package locale maps the system locale to a tldr-pages language code.
package locale

import (
	"os"
	"strings"

	"github.com/fwojciec/tldr"
	"golang.org/x/text/language"
)

// envVars are consulted in order; the first non-empty value wins.
var envVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Detect returns the language for the current process environment.
func Detect() tldr.Language {
	return DetectFrom(os.Getenv)
}

// DetectFrom returns the language for the locale found through getenv.
// An exact match such as "pt_BR" is preferred, then the base language,
// then tldr.DefaultLanguage.
func DetectFrom(getenv func(string) string) tldr.Language {
	for _, name := range envVars {
		if v := getenv(name); v != "" {
			return FromLocale(v)
		}
	}
	return tldr.DefaultLanguage
}

// FromLocale maps a POSIX locale string such as "pt_BR.UTF-8" or a BCP 47
// tag such as "zh-Hant-TW" to a known language.
func FromLocale(s string) tldr.Language {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return tldr.DefaultLanguage
	}

	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return tldr.DefaultLanguage
	}

	base, _ := tag.Base()
	if region, conf := tag.Region(); conf == language.Exact {
		if l := tldr.Language(base.String() + "_" + region.String()); l.IsKnown() {
			return l
		}
	}
	if l := tldr.Language(base.String()); l.IsKnown() {
		return l
	}
	return tldr.DefaultLanguage
}

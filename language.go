package tldr

import "strings"

// Language is a tldr-pages translation code such as "fr" or "pt_BR".
type Language string

// DefaultLanguage is always part of the effective preference list. Its
// pages live in the unsuffixed "pages" directory.
const DefaultLanguage Language = "en"

// Languages lists every translation the archive is known to carry.
var Languages = []Language{
	"en", "bs", "da", "de", "es", "fr", "hbs", "hi", "id", "it", "ja", "ko",
	"ml", "nl", "no", "pl", "pt_BR", "pt_PT", "ru", "sv", "ta", "th", "tr",
	"zh", "zh_TW",
}

// IsKnown reports whether l is one of Languages.
func (l Language) IsKnown() bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}

// PagesDir returns the archive directory holding pages for l.
func (l Language) PagesDir() string {
	if l == DefaultLanguage {
		return "pages"
	}
	return "pages." + string(l)
}

// ParseLanguage returns the language named by s. Codes are case-sensitive.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.TrimSpace(s))
	if !l.IsKnown() {
		return "", Errorf(EINVALIDOPTIONS, "The language %q is either incorrect or not yet supported.", s)
	}
	return l, nil
}

// ParseLanguageList splits a comma-separated list, dropping unknown and
// duplicate codes while keeping order.
func ParseLanguageList(s string) []Language {
	var langs []Language
	for _, part := range strings.Split(s, ",") {
		l, err := ParseLanguage(part)
		if err != nil {
			continue
		}
		langs = appendUnique(langs, l)
	}
	return langs
}

// EffectiveLanguages returns the lookup preference list for configured:
// unknown codes dropped, duplicates removed, and DefaultLanguage appended
// when absent. An empty result is treated as just DefaultLanguage.
func EffectiveLanguages(configured []Language) []Language {
	langs := make([]Language, 0, len(configured)+1)
	for _, l := range configured {
		if l.IsKnown() {
			langs = appendUnique(langs, l)
		}
	}
	return appendUnique(langs, DefaultLanguage)
}

// SameLanguages reports whether a and b hold the same set of languages.
func SameLanguages(a, b []Language) bool {
	set := make(map[Language]bool, len(a))
	for _, l := range a {
		set[l] = true
	}
	for _, l := range b {
		if !set[l] {
			return false
		}
	}
	other := make(map[Language]bool, len(b))
	for _, l := range b {
		other[l] = true
	}
	return len(set) == len(other)
}

func appendUnique(langs []Language, l Language) []Language {
	for _, existing := range langs {
		if existing == l {
			return langs
		}
	}
	return append(langs, l)
}

package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported UI language.
type Language string

const (
	English Language = "en"
	French  Language = "fr"
)

// DefaultLanguage is used when nothing else is configured.
const DefaultLanguage = English

// Languages returns all supported languages in display order.
func Languages() []Language {
	return []Language{English, French}
}

// matcher resolves arbitrary BCP 47 tags to a supported language.
// Tag order must follow Languages().
var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
})

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	switch l {
	case English, French:
		return true
	}
	return false
}

// Next returns the language that follows l in display order, wrapping around.
func (l Language) Next() Language {
	langs := Languages()
	for i, cand := range langs {
		if cand == l {
			return langs[(i+1)%len(langs)]
		}
	}
	return DefaultLanguage
}

// Name returns the language's name written in that language.
func (l Language) Name() string {
	return T(l, KeyLanguageName)
}

// ParseLanguage resolves a language code, a BCP 47 tag ("fr-CA") or a POSIX
// locale ("fr_FR.UTF-8") to a supported language.
func ParseLanguage(s string) (Language, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return "", fmt.Errorf("empty language")
	}
	if l := Language(s); l.Valid() {
		return l, nil
	}

	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("parse language %q: %w", s, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("unsupported language %q", s)
	}
	return Languages()[idx], nil
}

// Text is a literal localised into every supported language.
type Text struct {
	EN string
	FR string
}

// In returns the text for lang, falling back to English when the
// translation is missing.
func (t Text) In(lang Language) string {
	if lang == French && t.FR != "" {
		return t.FR
	}
	return t.EN
}

// Complete reports whether every language has a non-empty value.
func (t Text) Complete() bool {
	return strings.TrimSpace(t.EN) != "" && strings.TrimSpace(t.FR) != ""
}

package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language identifies a UI language supported by the catalogs.
type Language string

const (
	English Language = "en"
	French  Language = "fr"

	// BaseLanguage is the fallback for missing keys and unknown languages.
	BaseLanguage = English
)

var supported = []Language{English, French}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
})

// SupportedLanguages returns the languages known to the parser, base first.
func SupportedLanguages() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// ParseLanguage resolves a BCP 47 tag such as "fr", "fr-CA" or "en-US" to a
// supported Language.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty tag", ErrUnsupportedLanguage)
	}

	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}

	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}
	return supported[idx], nil
}

// String returns the language code.
func (l Language) String() string {
	return string(l)
}

// Other returns the language the UI toggle switches to.
func (l Language) Other() Language {
	if l == French {
		return English
	}
	return French
}

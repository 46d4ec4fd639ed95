package i18n

import (
	"strconv"
	"strings"
)

// Message keys used outside this package.
const (
	KeyAppName        = "app_name"
	KeyAllHistory     = "all_history"
	KeyViewing        = "viewing"
	KeyLevel          = "level"
	KeyBC             = "bc"
	KeyAD             = "ad"
	KeyMillennium     = "millennium"
	KeyCentury        = "century"
	KeyEvents         = "events"
	KeyMoreEvents     = "more_events"
	KeyNoEvents       = "no_events"
	KeyHistoricalCtx  = "modal.historical_context"
	KeyReadArticle    = "modal.read_article"
	KeyAncientEra     = "modal.ancient_era"
	KeyMedievalPeriod = "modal.medieval_period"
	KeyModernEra      = "modal.modern_era"
	KeyContextText    = "modal.context_text"
	KeyAdded          = "add.added"

	categoryPrefix = "categories."
	generalKey     = categoryPrefix + "general"
)

// Translations is the lookup bundle for one language: flat message keys,
// the twelve month names, category labels and the context sentence.
type Translations struct {
	lang     Language
	months   []string
	messages map[string]string
	fallback *Translations
	missing  func(lang Language, key string)
}

// Language returns the bundle's language.
func (t *Translations) Language() Language {
	return t.lang
}

func (t *Translations) lookup(key string) (string, bool) {
	if v, ok := t.messages[key]; ok {
		return v, true
	}
	if t.fallback != nil {
		return t.fallback.lookup(key)
	}
	return "", false
}

// T returns the message for key. A missing key falls back to the base
// language and then to the key itself.
func (t *Translations) T(key string) string {
	if v, ok := t.lookup(key); ok {
		return v
	}
	if t.missing != nil {
		t.missing(t.lang, key)
	}
	return key
}

// Format returns the message for key with {{name}} placeholders replaced.
// Unknown placeholders are left untouched.
func (t *Translations) Format(key string, values map[string]string) string {
	out := t.T(key)
	for name, value := range values {
		out = strings.ReplaceAll(out, "{{"+name+"}}", value)
	}
	return out
}

// Months returns a copy of the twelve month names, January first.
func (t *Translations) Months() []string {
	return append([]string(nil), t.months...)
}

// Month returns the name of month n (1..12), or n itself when out of range.
func (t *Translations) Month(n int) string {
	if n < 1 || n > len(t.months) {
		return strconv.Itoa(n)
	}
	return t.months[n-1]
}

// LevelName returns the localized name of a navigation level ("epoch",
// "millennium", ...).
func (t *Translations) LevelName(level string) string {
	if v, ok := t.lookup(level); ok {
		return v
	}
	return level
}

// CategoryLabel returns the display label of an event category. Unknown
// categories render as their raw name; an empty one as the general label.
func (t *Translations) CategoryLabel(category string) string {
	if category == "" {
		return t.T(generalKey)
	}
	if v, ok := t.lookup(categoryPrefix + category); ok {
		return v
	}
	return category
}

// ContextText builds the "historical context" sentence for an era label and
// a category label.
func (t *Translations) ContextText(era, category string) string {
	return t.Format(KeyContextText, map[string]string{
		"era":      era,
		"category": category,
	})
}

package i18n

import "fmt"

// Provider is the mutable language selection over an immutable Catalog.
type Provider struct {
	catalog *Catalog
	lang    Language
}

// NewProvider returns a provider over catalog starting in lang. A nil
// catalog uses Default(); a language missing from the catalog starts in
// the base language.
func NewProvider(catalog *Catalog, lang Language) *Provider {
	if catalog == nil {
		catalog = Default()
	}
	if !catalog.Has(lang) {
		lang = BaseLanguage
	}
	return &Provider{catalog: catalog, lang: lang}
}

// Language returns the active language.
func (p *Provider) Language() Language {
	return p.lang
}

// SetLanguage switches the active language.
func (p *Provider) SetLanguage(lang Language) error {
	if !p.catalog.Has(lang) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	p.lang = lang
	return nil
}

// Toggle flips between English and French and returns the new language.
func (p *Provider) Toggle() Language {
	next := p.lang.Other()
	if p.catalog.Has(next) {
		p.lang = next
	}
	return p.lang
}

// Translations returns the bundle of the active language.
func (p *Provider) Translations() *Translations {
	return p.catalog.Translations(p.lang)
}

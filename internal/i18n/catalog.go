package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const monthsPerYear = 12

type catalogFile struct {
	Language string            `yaml:"language"`
	Months   []string          `yaml:"months"`
	Messages map[string]string `yaml:"messages"`
}

// Catalog holds the translation bundles of every loaded language.
type Catalog struct {
	bundles map[Language]*Translations
	missing func(lang Language, key string)
}

// Option configures a Catalog while it is loaded.
type Option func(*Catalog)

// WithMissingKeyHandler registers a callback invoked whenever a key is not
// found in the requested language nor in the base language.
func WithMissingKeyHandler(fn func(lang Language, key string)) Option {
	return func(c *Catalog) {
		c.missing = fn
	}
}

//go:embed locales/*.yaml
var embeddedLocales embed.FS

var defaultCatalog = mustLoadEmbedded()

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	return defaultCatalog
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded(opts ...Option) (*Catalog, error) {
	return LoadFromFS(embeddedLocales, opts...)
}

// LoadFromFS loads every locales/<lang>.yaml file found in fsys.
func LoadFromFS(fsys fs.FS, opts ...Option) (*Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no catalog files found", ErrInvalidCatalog)
	}
	sort.Strings(paths)

	c := &Catalog{bundles: map[Language]*Translations{}}
	for _, opt := range opts {
		opt(c)
	}

	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %s", ErrInvalidCatalog, p, err)
		}
		if err := c.addFile(p, file); err != nil {
			return nil, err
		}
	}

	base, ok := c.bundles[BaseLanguage]
	if !ok {
		return nil, ErrMissingBaseLanguage
	}
	for lang, t := range c.bundles {
		if lang != BaseLanguage {
			t.fallback = base
		}
	}

	return c, nil
}

func (c *Catalog) addFile(p string, file catalogFile) error {
	fromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))

	lang, err := ParseLanguage(file.Language)
	if err != nil {
		return fmt.Errorf("catalog %s: %w", p, err)
	}
	if string(lang) != fromPath {
		return fmt.Errorf("%w: %s declares language %q but file name says %q", ErrInvalidCatalog, p, file.Language, fromPath)
	}
	if _, exists := c.bundles[lang]; exists {
		return fmt.Errorf("%w: language %q defined twice", ErrInvalidCatalog, lang)
	}
	if len(file.Months) != monthsPerYear {
		return fmt.Errorf("%w: %s has %d month names, want %d", ErrInvalidCatalog, p, len(file.Months), monthsPerYear)
	}

	messages := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("%w: %s has a blank message key", ErrInvalidCatalog, p)
		}
		messages[key] = value
	}

	c.bundles[lang] = &Translations{
		lang:     lang,
		months:   append([]string(nil), file.Months...),
		messages: messages,
		missing:  c.missing,
	}
	return nil
}

// Has reports whether the catalog carries a bundle for lang.
func (c *Catalog) Has(lang Language) bool {
	_, ok := c.bundles[lang]
	return ok
}

// Languages returns the loaded languages, base language first.
func (c *Catalog) Languages() []Language {
	out := make([]Language, 0, len(c.bundles))
	for lang := range c.bundles {
		if lang != BaseLanguage {
			out = append(out, lang)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return append([]Language{BaseLanguage}, out...)
}

// Translations returns the bundle for lang, or the base bundle when lang
// is not loaded.
func (c *Catalog) Translations(lang Language) *Translations {
	if t, ok := c.bundles[lang]; ok {
		return t
	}
	return c.bundles[BaseLanguage]
}

func mustLoadEmbedded() *Catalog {
	c, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return c
}

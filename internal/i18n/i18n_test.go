package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const months = `["1","2","3","4","5","6","7","8","9","10","11","12"]`

func TestLoadEmbeddedHasBothLanguages(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, []Language{English, French}, c.Languages())
	assert.Equal(t, "January", c.Translations(English).Month(1))
	assert.Equal(t, "Décembre", c.Translations(French).Month(12))
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"en", English},
		{"fr", French},
		{"fr-CA", French},
		{"en-GB", English},
		{" FR ", French},
	}
	for _, tc := range tests {
		got, err := ParseLanguage(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseLanguageRejectsUnsupported(t *testing.T) {
	for _, in := range []string{"", "de", "ja-JP", "not a tag!"} {
		_, err := ParseLanguage(in)
		assert.ErrorIs(t, err, ErrUnsupportedLanguage, in)
	}
}

func TestTranslationsMissingKeyFallsBackToKey(t *testing.T) {
	var missed []string
	c, err := LoadEmbedded(WithMissingKeyHandler(func(_ Language, key string) {
		missed = append(missed, key)
	}))
	require.NoError(t, err)

	tr := c.Translations(French)
	assert.Equal(t, "no.such.key", tr.T("no.such.key"))
	assert.Equal(t, []string{"no.such.key"}, missed)
}

func TestTranslationsFallBackToBaseLanguage(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml": {Data: []byte("language: en\nmonths: " + months + "\nmessages:\n  only_en: \"English only\"\n  bc: BC\n")},
		"locales/fr.yaml": {Data: []byte("language: fr\nmonths: " + months + "\nmessages:\n  bc: av. J.-C.\n")},
	}
	c, err := LoadFromFS(fsys)
	require.NoError(t, err)

	fr := c.Translations(French)
	assert.Equal(t, "av. J.-C.", fr.T(KeyBC))
	assert.Equal(t, "English only", fr.T("only_en"))
}

func TestLoadFromFSValidation(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		err  error
	}{
		{
			name: "no files",
			fsys: fstest.MapFS{},
			err:  ErrInvalidCatalog,
		},
		{
			name: "language mismatch with file name",
			fsys: fstest.MapFS{
				"locales/en.yaml": {Data: []byte("language: fr\nmonths: " + months + "\n")},
			},
			err: ErrInvalidCatalog,
		},
		{
			name: "wrong month count",
			fsys: fstest.MapFS{
				"locales/en.yaml": {Data: []byte("language: en\nmonths: [\"Jan\"]\n")},
			},
			err: ErrInvalidCatalog,
		},
		{
			name: "missing base language",
			fsys: fstest.MapFS{
				"locales/fr.yaml": {Data: []byte("language: fr\nmonths: " + months + "\n")},
			},
			err: ErrMissingBaseLanguage,
		},
		{
			name: "invalid yaml",
			fsys: fstest.MapFS{
				"locales/en.yaml": {Data: []byte(":::not yaml{{{")},
			},
			err: ErrInvalidCatalog,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFromFS(tc.fsys)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestMonthOutOfRange(t *testing.T) {
	tr := Default().Translations(English)
	assert.Equal(t, "0", tr.Month(0))
	assert.Equal(t, "13", tr.Month(13))
	assert.Len(t, tr.Months(), 12)
}

func TestCategoryLabel(t *testing.T) {
	en := Default().Translations(English)
	fr := Default().Translations(French)

	assert.Equal(t, "War & Conflict", en.CategoryLabel("war"))
	assert.Equal(t, "Guerre et Conflits", fr.CategoryLabel("war"))
	assert.Equal(t, "General", en.CategoryLabel(""))
	assert.Equal(t, "astrology", en.CategoryLabel("astrology"))
}

func TestContextText(t *testing.T) {
	en := Default().Translations(English)
	fr := Default().Translations(French)

	assert.Equal(t,
		"This event occurred during the Modern Era. It fits broadly into the category of Science & Tech.",
		en.ContextText("Modern Era", "Science & Tech"))
	assert.Equal(t,
		"Cet événement a eu lieu pendant l'Ère Moderne. Il appartient à la catégorie : Science et Tech.",
		fr.ContextText("l'Ère Moderne", "Science et Tech"))
}

func TestProvider(t *testing.T) {
	p := NewProvider(nil, English)
	assert.Equal(t, English, p.Language())
	assert.Equal(t, "All History", p.Translations().T(KeyAllHistory))

	require.NoError(t, p.SetLanguage(French))
	assert.Equal(t, "Toute l'Histoire", p.Translations().T(KeyAllHistory))

	assert.Equal(t, English, p.Toggle())
	assert.Equal(t, French, p.Toggle())

	err := p.SetLanguage(Language("de"))
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.Equal(t, French, p.Language())
}

func TestNewProviderUnknownLanguageStartsInBase(t *testing.T) {
	p := NewProvider(Default(), Language("xx"))
	assert.Equal(t, BaseLanguage, p.Language())
}

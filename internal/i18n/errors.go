package i18n

import "errors"

var (
	ErrUnsupportedLanguage = errors.New("i18n: unsupported language")
	ErrInvalidCatalog      = errors.New("i18n: invalid catalog file")
	ErrMissingBaseLanguage = errors.New("i18n: base language catalog is missing")
)

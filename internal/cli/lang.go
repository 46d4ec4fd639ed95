package cli

import (
	"context"
	"strings"

	"github.com/ghaliela/cochrono/internal/i18n"
)

// Execute implements the go-flags Commander interface for LangCommand.
func (c *LangCommand) Execute(args []string) error {
	return runCommand(c.globals, "lang", func(ctx context.Context, s *session) error {
		return c.executeWithSession(ctx, s, args)
	})
}

// executeWithSession shows the active language, or switches it when given
// a language tag or "toggle".
func (c *LangCommand) executeWithSession(ctx context.Context, s *session, args []string) error {
	if len(args) > 0 {
		arg := strings.TrimSpace(args[0])
		if strings.EqualFold(arg, "toggle") {
			if _, err := s.browser.ToggleLanguage(ctx); err != nil {
				return err
			}
		} else {
			lang, err := i18n.ParseLanguage(arg)
			if err != nil {
				return err
			}
			if err := s.browser.SetLanguage(ctx, lang); err != nil {
				return err
			}
		}
	}

	lang := s.browser.Language()
	if s.out.json {
		supported := make([]string, 0, len(i18n.SupportedLanguages()))
		for _, l := range i18n.SupportedLanguages() {
			supported = append(supported, l.String())
		}
		return writeJSON(s.out.w, map[string]interface{}{
			"language":  lang.String(),
			"supported": supported,
		})
	}

	s.out.printf("Language: %s\n", lang)
	return nil
}

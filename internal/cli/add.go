package cli

import (
	"context"
	"fmt"

	"github.com/ghaliela/cochrono/internal/i18n"
	"github.com/ghaliela/cochrono/internal/storage"
)

// Execute implements the go-flags Commander interface for AddCommand.
func (c *AddCommand) Execute(args []string) error {
	return runCommand(c.globals, "add", c.executeWithSession)
}

// executeWithSession runs the add logic against a provided session (used by tests).
func (c *AddCommand) executeWithSession(ctx context.Context, s *session) error {
	event, err := s.browser.AddEvent(ctx, storage.EventInput{
		Title:       c.Title,
		Year:        c.Year,
		BC:          c.BC,
		Month:       c.Month,
		Day:         c.Day,
		Description: c.Description,
		Category:    c.Category,
		Link:        c.Link,
	})
	if err != nil {
		return fmt.Errorf("add event: %w", err)
	}

	if s.out.json {
		out := map[string]interface{}{"added": event != nil}
		if event != nil {
			out["event"] = event
		}
		return writeJSON(s.out.w, out)
	}

	if event == nil {
		s.out.println("Nothing added: --title and --year are required.")
		return nil
	}

	tr := s.browser.Translations()
	s.out.printf("%s %s\n", tr.T(i18n.KeyAdded), event.ID)
	s.out.eventLine("  ", *event, tr)
	return nil
}

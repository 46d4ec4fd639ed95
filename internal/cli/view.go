package cli

import (
	"context"
	"fmt"
)

// Execute implements the go-flags Commander interface for ViewCommand.
func (c *ViewCommand) Execute(args []string) error {
	return runCommand(c.globals, "view", c.executeWithSession)
}

// executeWithSession renders the current view (used by tests).
func (c *ViewCommand) executeWithSession(ctx context.Context, s *session) error {
	return renderView(ctx, s)
}

// renderView prints the browser's current screen.
func renderView(ctx context.Context, s *session) error {
	v, err := s.browser.View(ctx)
	if err != nil {
		return fmt.Errorf("build view: %w", err)
	}
	return s.out.view(v, s.browser.Translations())
}

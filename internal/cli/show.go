package cli

import (
	"context"
	"fmt"
)

// Execute implements the go-flags Commander interface for ShowCommand.
func (c *ShowCommand) Execute(args []string) error {
	if c.ID == "" {
		return fmt.Errorf("--id is required for show command")
	}
	return runCommand(c.globals, "show", c.executeWithSession)
}

// executeWithSession prints the detail of one event (used by tests).
func (c *ShowCommand) executeWithSession(ctx context.Context, s *session) error {
	d, err := s.browser.Detail(ctx, c.ID)
	if err != nil {
		return err
	}
	return s.out.eventDetail(d, s.browser.Translations())
}

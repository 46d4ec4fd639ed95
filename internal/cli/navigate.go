package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Execute implements the go-flags Commander interface for DrillCommand.
func (c *DrillCommand) Execute(args []string) error {
	return runCommand(c.globals, "drill", c.executeWithSession)
}

// executeWithSession drills into the numbered block and shows the result.
func (c *DrillCommand) executeWithSession(ctx context.Context, s *session) error {
	if c.Args.Block < 1 {
		return fmt.Errorf("block number must be 1 or greater, got %d", c.Args.Block)
	}
	if err := s.browser.Drill(ctx, c.Args.Block-1); err != nil {
		return err
	}
	return renderView(ctx, s)
}

// Execute implements the go-flags Commander interface for BackCommand.
func (c *BackCommand) Execute(args []string) error {
	return runCommand(c.globals, "back", c.executeWithSession)
}

// executeWithSession jumps to the breadcrumb and shows the result.
func (c *BackCommand) executeWithSession(ctx context.Context, s *session) error {
	index, err := parseCrumbIndex(c.Args.Index)
	if err != nil {
		return err
	}
	if err := s.browser.Back(ctx, index); err != nil {
		return err
	}
	return renderView(ctx, s)
}

// Execute implements the go-flags Commander interface for HomeCommand.
func (c *HomeCommand) Execute(args []string) error {
	return runCommand(c.globals, "home", c.executeWithSession)
}

// executeWithSession resets to the root view and shows it.
func (c *HomeCommand) executeWithSession(ctx context.Context, s *session) error {
	if err := s.browser.Home(ctx); err != nil {
		return err
	}
	return renderView(ctx, s)
}

// parseCrumbIndex accepts a breadcrumb index or "home". Negative numbers
// must follow "--" on the command line.
func parseCrumbIndex(s string) (int, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "home") {
		return -1, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid breadcrumb index %q (want a number or home)", s)
	}
	return n, nil
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// Execute implements the go-flags Commander interface for PurgeCommand.
func (c *PurgeCommand) Execute(args []string) error {
	if !c.All {
		return fmt.Errorf("purge requires --all flag for safety")
	}

	// Confirmation prompt unless --force
	if !c.Force {
		if err := confirmPurge(os.Stdin); err != nil {
			return err
		}
	}

	return runCommand(c.globals, "purge", c.executeWithSession)
}

// confirmPurge prints the warning and requires the user to type PURGE.
func confirmPurge(in io.Reader) error {
	fmt.Println("⚠ WARNING: This will permanently delete ALL events,")
	fmt.Println("including the seeded collection and everything you added.")
	fmt.Println("Language and navigation settings are kept.")
	fmt.Println()
	fmt.Println("This action cannot be undone.")
	fmt.Println()
	fmt.Print(`Type "PURGE" to confirm: `)

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return fmt.Errorf("aborted: no input received")
	}
	if strings.TrimSpace(scanner.Text()) != "PURGE" {
		return fmt.Errorf("aborted: confirmation text did not match")
	}
	return nil
}

// executeWithSession deletes every event in the session's store.
func (c *PurgeCommand) executeWithSession(ctx context.Context, s *session) error {
	if err := s.store.PurgeAll(ctx); err != nil {
		return fmt.Errorf("purge failed: %w", err)
	}
	s.logger.InfoContext(ctx, "all events purged")

	if s.out.json {
		return writeJSON(s.out.w, map[string]interface{}{
			"purged":  true,
			"message": "all events deleted",
		})
	}

	s.out.println("Purged all events. The timeline is empty.")
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ghaliela/cochrono/internal/storage"
)

// Execute implements the go-flags Commander interface for SearchCommand.
func (c *SearchCommand) Execute(args []string) error {
	return runCommand(c.globals, "search", func(ctx context.Context, s *session) error {
		return c.executeWithSession(ctx, s, args)
	})
}

// executeWithSession runs the search against a provided session (for testing).
func (c *SearchCommand) executeWithSession(ctx context.Context, s *session, args []string) error {
	query := strings.Join(args, " ")

	sq := storage.SearchQuery{
		Query:    query,
		FromYear: c.From,
		ToYear:   c.To,
		Limit:    c.Limit,
		Offset:   c.Offset,
	}
	if c.Category != "" {
		cat, err := storage.ParseCategory(c.Category)
		if err != nil {
			return err
		}
		sq.Category = cat
	}
	if sq.FromYear != 0 && sq.ToYear != 0 && sq.FromYear > sq.ToYear {
		return fmt.Errorf("--from %d is after --to %d", sq.FromYear, sq.ToYear)
	}

	results, err := s.store.SearchEvents(ctx, sq)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if s.out.json {
		return c.printJSON(s, query, results)
	}
	return c.printHuman(s, query, results)
}

func (c *SearchCommand) printHuman(s *session, query string, results []storage.Event) error {
	if len(results) == 0 {
		if query != "" {
			s.out.printf("No results found for %q\n", query)
		} else {
			s.out.println("No results found")
		}
		return nil
	}

	resultWord := "results"
	if len(results) == 1 {
		resultWord = "result"
	}
	if query != "" {
		s.out.printf("Found %d %s for %q\n\n", len(results), resultWord, query)
	} else {
		s.out.printf("Found %d %s\n\n", len(results), resultWord)
	}

	tr := s.browser.Translations()
	for i, e := range results {
		s.out.printf("%d. ", i+1+c.Offset)
		s.out.eventLine("", e, tr)
		s.out.printf("   %s\n", s.out.muted.Render(tr.CategoryLabel(string(e.Category))))

		if i < len(results)-1 {
			s.out.println("")
		}
	}

	return nil
}

type jsonResult struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	Month    int    `json:"month,omitempty"`
	Day      int    `json:"day,omitempty"`
	Category string `json:"category"`
	Source   string `json:"source"`
}

type jsonSearchOutput struct {
	Count   int          `json:"count"`
	Query   string       `json:"query"`
	Results []jsonResult `json:"results"`
}

func (c *SearchCommand) printJSON(s *session, query string, results []storage.Event) error {
	out := jsonSearchOutput{
		Count:   len(results),
		Query:   query,
		Results: make([]jsonResult, len(results)),
	}

	for i, e := range results {
		out.Results[i] = jsonResult{
			ID:       e.ID,
			Title:    e.Title,
			Year:     e.Year,
			Month:    e.Month,
			Day:      e.Day,
			Category: string(e.Category),
			Source:   e.Source,
		}
	}

	return writeJSON(s.out.w, out)
}

package storage

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventInput is the raw form submitted when adding an event.
type EventInput struct {
	Title       string
	Year        string
	BC          bool
	Month       string
	Day         string
	Description string
	Category    string
	Link        string
}

// ParseInput validates an add-event form. ok is false, with no error, when
// the title or year is blank: such a submission is ignored rather than
// reported.
func ParseInput(in EventInput) (Event, bool, error) {
	title := strings.TrimSpace(in.Title)
	yearStr := strings.TrimSpace(in.Year)
	if title == "" || yearStr == "" {
		return Event{}, false, nil
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return Event{}, false, fmt.Errorf("%w: %q", ErrInvalidYear, in.Year)
	}
	if in.BC {
		year = -year
	}

	e := Event{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Year:        year,
		Source:      SourceManual,
	}

	if e.Month, err = parseOptional(in.Month, ErrInvalidMonth); err != nil {
		return Event{}, false, err
	}
	if e.Day, err = parseOptional(in.Day, ErrInvalidDay); err != nil {
		return Event{}, false, err
	}
	if e.Month == 0 && strings.TrimSpace(in.Month) != "" {
		return Event{}, false, fmt.Errorf("%w: %q", ErrInvalidMonth, in.Month)
	}
	if e.Day == 0 && strings.TrimSpace(in.Day) != "" {
		return Event{}, false, fmt.Errorf("%w: %q", ErrInvalidDay, in.Day)
	}

	if e.Category, err = ParseCategory(in.Category); err != nil {
		return Event{}, false, err
	}

	if link := strings.TrimSpace(in.Link); link != "" {
		u, err := url.ParseRequestURI(link)
		if err != nil || u.Host == "" {
			return Event{}, false, fmt.Errorf("%w: %q", ErrInvalidLink, link)
		}
		e.Link = link
	}

	if err := validate(&e); err != nil {
		return Event{}, false, err
	}
	return e, true, nil
}

func parseOptional(s string, sentinel error) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", sentinel, s)
	}
	return n, nil
}

// validate normalizes the category and checks month and day bounds.
func validate(e *Event) error {
	cat, err := ParseCategory(string(e.Category))
	if err != nil {
		return err
	}
	e.Category = cat

	if e.Month < 0 || e.Month > 12 {
		return fmt.Errorf("%w: %d (want 1-12)", ErrInvalidMonth, e.Month)
	}
	if e.Day < 0 || e.Day > 31 {
		return fmt.Errorf("%w: %d (want 1-31)", ErrInvalidDay, e.Day)
	}
	return nil
}

// prepare readies an event for insertion. skip is true when the title is
// blank, in which case the event must be silently dropped.
func prepare(e *Event) (skip bool, err error) {
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		return true, nil
	}
	if err := validate(e); err != nil {
		return false, err
	}
	if e.ID == "" {
		e.ID = generateID()
	}
	if e.Source == "" {
		e.Source = SourceManual
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	return false, nil
}

// generateID creates an event ID: EVT- + a random UUID.
func generateID() string {
	return "EVT-" + uuid.NewString()
}

// sortByYear reorders events ascending by year. Relative order of events in
// the same year is not preserved.
func sortByYear(events []Event) {
	sort.Slice(events, func(i, j int) bool { return events[i].Year < events[j].Year })
}

package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ghaliela/cochrono/internal/timeline"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidYear     = errors.New("invalid year")
	ErrInvalidMonth    = errors.New("invalid month")
	ErrInvalidDay      = errors.New("invalid day")
	ErrInvalidLink     = errors.New("invalid link")
)

// Event sources.
const (
	SourceSeed   = "seed"
	SourceManual = "manual"
)

// Category classifies an event.
type Category string

const (
	CategoryGeneral  Category = "general"
	CategoryWar      Category = "war"
	CategoryPolitics Category = "politics"
	CategoryScience  Category = "science"
	CategoryArt      Category = "art"
	CategoryReligion Category = "religion"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryGeneral, CategoryWar, CategoryPolitics,
		CategoryScience, CategoryArt, CategoryReligion,
	}
}

// ParseCategory validates a category name. An empty name is general.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CategoryGeneral, nil
	}
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Event is a dated historical event. Year is negative for BC and positive
// for AD. Month and Day are 0 when absent.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Year        int       `json:"year"`
	Month       int       `json:"month,omitempty"`
	Day         int       `json:"day,omitempty"`
	Link        string    `json:"link,omitempty"`
	Category    Category  `json:"category"`
	Source      string    `json:"source"` // "seed", "manual"
	CreatedAt   time.Time `json:"created_at"`
}

// BlockQuery selects the events shown in one timeline block.
type BlockQuery struct {
	Level timeline.Level
	Block timeline.TimeRange

	// Year is the inspected year at the year level, where Block carries a
	// month number. Ignored at other levels.
	Year int
}

// Matches reports whether e belongs to the block.
func (q BlockQuery) Matches(e Event) bool {
	if q.Level == timeline.Year {
		return e.Year == q.Year && e.Month == q.Block.Start
	}
	return q.Block.Contains(e.Year)
}

// SearchQuery defines filters for searching events. Zero years are unbounded.
type SearchQuery struct {
	Query    string
	Category Category
	FromYear int
	ToYear   int
	Limit    int
	Offset   int
}

// Stats holds aggregate statistics about the event collection.
type Stats struct {
	TotalEvents  int64
	SeedEvents   int64
	ManualEvents int64
	EarliestYear int
	LatestYear   int
	Categories   []CategoryCount
}

// CategoryCount pairs a category with its event count.
type CategoryCount struct {
	Category Category
	Count    int64
}

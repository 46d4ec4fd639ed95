package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// MemoryStore keeps events in a slice ordered by year. It is meant for a
// single actor and does no locking.
type MemoryStore struct {
	events   []Event
	settings map[string]string
}

// NewMemoryStore returns a store holding the given events.
func NewMemoryStore(seed ...Event) (*MemoryStore, error) {
	s := &MemoryStore{settings: map[string]string{}}
	for i := range seed {
		e := seed[i]
		if err := s.AddEvent(context.Background(), &e); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// AddEvent appends the event and re-sorts the whole collection by year.
// An event with a blank title is silently skipped (ID stays empty). The
// caller's event receives the generated fields only when it is stored.
func (s *MemoryStore) AddEvent(_ context.Context, event *Event) error {
	e := *event
	skip, err := prepare(&e)
	if err != nil {
		return fmt.Errorf("add event: %w", err)
	}
	if skip {
		return nil
	}
	for _, existing := range s.events {
		if existing.ID == e.ID {
			return fmt.Errorf("add event: duplicate id %s", e.ID)
		}
	}

	s.events = append(s.events, e)
	sortByYear(s.events)
	*event = e
	return nil
}

// GetEvent retrieves a single event by ID.
func (s *MemoryStore) GetEvent(_ context.Context, id string) (*Event, error) {
	for _, e := range s.events {
		if e.ID == id {
			out := e
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrEventNotFound, id)
}

// QueryBlock returns every event inside the block, ascending by year.
func (s *MemoryStore) QueryBlock(_ context.Context, q BlockQuery) ([]Event, error) {
	out := []Event{}
	for _, e := range s.events {
		if q.Matches(e) {
			out = append(out, e)
		}
	}
	sortByYear(out)
	return out, nil
}

// SearchEvents filters events by text, category and year bounds.
func (s *MemoryStore) SearchEvents(_ context.Context, q SearchQuery) ([]Event, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	needle := strings.ToLower(strings.TrimSpace(q.Query))

	out := []Event{}
	skipped := 0
	for _, e := range s.events {
		if needle != "" &&
			!strings.Contains(strings.ToLower(e.Title), needle) &&
			!strings.Contains(strings.ToLower(e.Description), needle) {
			continue
		}
		if q.Category != "" && e.Category != q.Category {
			continue
		}
		if q.FromYear != 0 && e.Year < q.FromYear {
			continue
		}
		if q.ToYear != 0 && e.Year > q.ToYear {
			continue
		}
		if skipped < q.Offset {
			skipped++
			continue
		}
		out = append(out, e)
		if len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

// AllEvents returns a copy of the whole collection.
func (s *MemoryStore) AllEvents(_ context.Context) ([]Event, error) {
	return append([]Event{}, s.events...), nil
}

// GetStats returns aggregate statistics about the collection.
func (s *MemoryStore) GetStats(_ context.Context) (*Stats, error) {
	stats := &Stats{TotalEvents: int64(len(s.events))}
	counts := map[Category]int64{}
	for i, e := range s.events {
		if e.Source == SourceSeed {
			stats.SeedEvents++
		} else {
			stats.ManualEvents++
		}
		if i == 0 || e.Year < stats.EarliestYear {
			stats.EarliestYear = e.Year
		}
		if i == 0 || e.Year > stats.LatestYear {
			stats.LatestYear = e.Year
		}
		counts[e.Category]++
	}
	stats.Categories = categoryCounts(counts)
	return stats, nil
}

// PurgeAll deletes every event. Settings are kept.
func (s *MemoryStore) PurgeAll(_ context.Context) error {
	s.events = nil
	return nil
}

// GetSetting returns a stored setting value.
func (s *MemoryStore) GetSetting(_ context.Context, key string) (string, bool, error) {
	v, ok := s.settings[key]
	return v, ok, nil
}

// PutSetting stores a setting value.
func (s *MemoryStore) PutSetting(_ context.Context, key, value string) error {
	s.settings[key] = value
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

// categoryCounts orders non-zero counts by descending count, then by
// category display order.
func categoryCounts(counts map[Category]int64) []CategoryCount {
	var out []CategoryCount
	for _, c := range Categories() {
		if n := counts[c]; n > 0 {
			out = append(out, CategoryCount{Category: c, Count: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

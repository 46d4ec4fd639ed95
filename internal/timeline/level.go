// Package timeline holds the pure time-navigation model: navigation levels,
// inclusive year ranges, decomposition of a range into child blocks, and the
// locale-aware labels shown for those blocks.
package timeline

import (
	"errors"
	"fmt"
	"strings"
)

// Level is the granularity of a timeline view. Levels are totally ordered
// from coarsest (Epoch) to finest (Year).
type Level int

const (
	Epoch Level = iota
	Millennium
	Century
	Decade
	Year
)

var ErrUnknownLevel = errors.New("unknown navigation level")

var levelNames = [...]string{
	Epoch:      "epoch",
	Millennium: "millennium",
	Century:    "century",
	Decade:     "decade",
	Year:       "year",
}

// Levels returns every level, coarsest first.
func Levels() []Level {
	return []Level{Epoch, Millennium, Century, Decade, Year}
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= Epoch && l <= Year
}

// String returns the lowercase level name, which is also its message key.
func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

// Next returns the next finer level. Year is terminal and has none.
func (l Level) Next() (Level, bool) {
	if !l.Valid() || l == Year {
		return l, false
	}
	return l + 1, true
}

// Parent returns the next coarser level. Epoch is the root and has none.
func (l Level) Parent() (Level, bool) {
	if !l.Valid() || l == Epoch {
		return l, false
	}
	return l - 1, true
}

// Terminal reports whether l has no finer level.
func (l Level) Terminal() bool {
	_, ok := l.Next()
	return !ok
}

// ParseLevel parses a level name as returned by String.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range levelNames {
		if name == s {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// MarshalText encodes the level by name.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText decodes a level name.
func (l *Level) UnmarshalText(b []byte) error {
	parsed, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Package navigation holds the drill-down state of the timeline browser:
// the current level and range plus the breadcrumb trail back to the root.
package navigation

import (
	"errors"
	"fmt"

	"github.com/ghaliela/cochrono/internal/i18n"
	"github.com/ghaliela/cochrono/internal/timeline"
)

var (
	ErrBreadcrumbOutOfRange = errors.New("breadcrumb index out of range")
	ErrInvalidState         = errors.New("invalid navigation state")
)

// Localizer supplies the active translation table.
type Localizer interface {
	Translations() *i18n.Translations
}

// Breadcrumb records an ancestor the user drilled out of. Level is the level
// being left and Start/End its range. Label is the text rendered when the
// crumb was pushed.
type Breadcrumb struct {
	Level timeline.Level `json:"level"`
	Label string         `json:"label"`
	Start int            `json:"start"`
	End   int            `json:"end"`
}

// Range returns the crumb's range.
func (b Breadcrumb) Range() timeline.TimeRange {
	return timeline.TimeRange{Start: b.Start, End: b.End}
}

// State is a snapshot of the navigator.
type State struct {
	Level       timeline.Level     `json:"level"`
	Range       timeline.TimeRange `json:"range"`
	Breadcrumbs []Breadcrumb       `json:"breadcrumbs"`
}

// RootState is the state every session starts in.
func RootState() State {
	return State{Level: timeline.Epoch, Range: timeline.RootRange, Breadcrumbs: []Breadcrumb{}}
}

// Navigator is the breadcrumb state machine. It is not safe for concurrent use.
type Navigator struct {
	loc   Localizer
	state State
}

// New returns a navigator at the root state.
func New(loc Localizer) *Navigator {
	return &Navigator{loc: loc, state: RootState()}
}

// Level returns the current level.
func (n *Navigator) Level() timeline.Level {
	return n.state.Level
}

// Range returns the current range. At the year level Start is the inspected year.
func (n *Navigator) Range() timeline.TimeRange {
	return n.state.Range
}

// Depth returns the number of breadcrumbs.
func (n *Navigator) Depth() int {
	return len(n.state.Breadcrumbs)
}

// Blocks decomposes the current range into the child blocks shown at the
// current level.
func (n *Navigator) Blocks() []timeline.TimeRange {
	return timeline.Decompose(n.state.Level, n.state.Range)
}

// Advance drills into the block [start, end]. It reports false, leaving the
// state unchanged, when the current level is terminal.
func (n *Navigator) Advance(start, end int) bool {
	next, ok := n.state.Level.Next()
	if !ok {
		return false
	}

	n.state.Breadcrumbs = append(n.state.Breadcrumbs, Breadcrumb{
		Level: n.state.Level,
		Label: crumbLabel(n.state.Level, n.state.Range, n.loc.Translations()),
		Start: n.state.Range.Start,
		End:   n.state.Range.End,
	})

	n.state.Level = next
	if next.Terminal() {
		end = start
	}
	n.state.Range = timeline.TimeRange{Start: start, End: end}
	return true
}

// Navigate jumps back to breadcrumb index, restoring the level and range
// recorded in it and dropping it and every later crumb. Index -1 resets to
// the root.
func (n *Navigator) Navigate(index int) error {
	if index == -1 {
		n.Reset()
		return nil
	}
	if index < 0 || index >= len(n.state.Breadcrumbs) {
		return fmt.Errorf("%w: %d (have %d)", ErrBreadcrumbOutOfRange, index, len(n.state.Breadcrumbs))
	}

	crumb := n.state.Breadcrumbs[index]
	n.state.Breadcrumbs = n.state.Breadcrumbs[:index]
	n.state.Level = crumb.Level
	n.state.Range = crumb.Range()
	return nil
}

// Reset returns to the root state.
func (n *Navigator) Reset() {
	n.state = RootState()
}

// State returns a deep copy of the current state.
func (n *Navigator) State() State {
	s := n.state
	s.Breadcrumbs = append([]Breadcrumb{}, n.state.Breadcrumbs...)
	return s
}

// Restore replaces the current state with s after checking that the trail
// is a consistent chain from the root down to s.Level.
func (n *Navigator) Restore(s State) error {
	if err := validate(s); err != nil {
		return err
	}
	n.state = s
	n.state.Breadcrumbs = append([]Breadcrumb{}, s.Breadcrumbs...)
	return nil
}

// Trail returns the breadcrumbs with labels formatted in tr's language.
// The stored labels are left untouched.
func (n *Navigator) Trail(tr *i18n.Translations) []Breadcrumb {
	out := make([]Breadcrumb, len(n.state.Breadcrumbs))
	for i, c := range n.state.Breadcrumbs {
		c.Label = crumbLabel(c.Level, c.Range(), tr)
		out[i] = c
	}
	return out
}

// crumbLabel names the range being left the way it appears one level up.
func crumbLabel(l timeline.Level, r timeline.TimeRange, tr *i18n.Translations) string {
	parent, ok := l.Parent()
	if !ok {
		return tr.T(i18n.KeyAllHistory)
	}
	return timeline.FormatLabel(r.Start, r.End, parent, tr)
}

func validate(s State) error {
	if !s.Level.Valid() {
		return fmt.Errorf("%w: level %d", ErrInvalidState, int(s.Level))
	}
	if len(s.Breadcrumbs) != int(s.Level) {
		return fmt.Errorf("%w: %d breadcrumbs at level %s", ErrInvalidState, len(s.Breadcrumbs), s.Level)
	}
	if !inRoot(s.Range) {
		return fmt.Errorf("%w: range %d..%d", ErrInvalidState, s.Range.Start, s.Range.End)
	}
	if s.Level.Terminal() && s.Range.Start != s.Range.End {
		return fmt.Errorf("%w: year range %d..%d", ErrInvalidState, s.Range.Start, s.Range.End)
	}

	for i, c := range s.Breadcrumbs {
		if c.Level != timeline.Level(i) {
			return fmt.Errorf("%w: breadcrumb %d has level %s", ErrInvalidState, i, c.Level)
		}
		if !inRoot(c.Range()) {
			return fmt.Errorf("%w: breadcrumb %d range %d..%d", ErrInvalidState, i, c.Start, c.End)
		}
	}
	if len(s.Breadcrumbs) > 0 && s.Breadcrumbs[0].Range() != timeline.RootRange {
		return fmt.Errorf("%w: first breadcrumb is not the root range", ErrInvalidState)
	}

	// Each crumb lies inside its parent, and the current range inside the last crumb.
	for i := 1; i < len(s.Breadcrumbs); i++ {
		if !within(s.Breadcrumbs[i].Range(), s.Breadcrumbs[i-1].Range()) {
			return fmt.Errorf("%w: breadcrumb %d is outside breadcrumb %d", ErrInvalidState, i, i-1)
		}
	}
	if n := len(s.Breadcrumbs); n > 0 && !within(s.Range, s.Breadcrumbs[n-1].Range()) {
		return fmt.Errorf("%w: range %d..%d is outside the last breadcrumb", ErrInvalidState, s.Range.Start, s.Range.End)
	}
	return nil
}

func inRoot(r timeline.TimeRange) bool {
	return r.Start <= r.End && timeline.RootRange.Contains(r.Start) && timeline.RootRange.Contains(r.End)
}

func within(inner, outer timeline.TimeRange) bool {
	return outer.Contains(inner.Start) && outer.Contains(inner.End)
}

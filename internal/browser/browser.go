// Package browser is the session facade over the timeline: it composes the
// event store, the navigator and the active language into renderable views
// and persists the session between invocations.
package browser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ghaliela/cochrono/internal/i18n"
	"github.com/ghaliela/cochrono/internal/logging"
	"github.com/ghaliela/cochrono/internal/navigation"
	"github.com/ghaliela/cochrono/internal/storage"
	"github.com/ghaliela/cochrono/internal/timeline"
)

// Settings keys.
const (
	SettingLanguage   = "language"
	SettingNavigation = "navigation"
)

var ErrNoSuchBlock = errors.New("no such block")

// Browser is one user's session. It is not safe for concurrent use.
type Browser struct {
	store    storage.Store
	provider *i18n.Provider
	nav      *navigation.Navigator
	logger   *slog.Logger

	// saved is the language Save persists. A temporary switch made on the
	// provider directly does not change it.
	saved i18n.Language
}

// Option configures a Browser.
type Option func(*Browser)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(b *Browser) {
		if l != nil {
			b.logger = l
		}
	}
}

// New returns a browser at the root of the timeline.
func New(store storage.Store, provider *i18n.Provider, opts ...Option) *Browser {
	if provider == nil {
		provider = i18n.NewProvider(nil, i18n.BaseLanguage)
	}
	b := &Browser{
		store:    store,
		provider: provider,
		nav:      navigation.New(provider),
		logger:   logging.NewNope(),
		saved:    provider.Language(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Language returns the active language.
func (b *Browser) Language() i18n.Language {
	return b.provider.Language()
}

// Translations returns the active translation table.
func (b *Browser) Translations() *i18n.Translations {
	return b.provider.Translations()
}

// State returns a copy of the navigation state.
func (b *Browser) State() navigation.State {
	return b.nav.State()
}

// Load restores the language and navigation state saved by Save. A saved
// value that no longer parses is logged and ignored.
func (b *Browser) Load(ctx context.Context) error {
	if v, ok, err := b.store.GetSetting(ctx, SettingLanguage); err != nil {
		return fmt.Errorf("load language: %w", err)
	} else if ok {
		lang, err := i18n.ParseLanguage(v)
		if err == nil {
			err = b.provider.SetLanguage(lang)
		}
		if err != nil {
			b.logger.WarnContext(ctx, "ignoring saved language", "value", v, "error", err)
		} else {
			b.saved = lang
		}
	}

	v, ok, err := b.store.GetSetting(ctx, SettingNavigation)
	if err != nil {
		return fmt.Errorf("load navigation: %w", err)
	}
	if !ok {
		return nil
	}

	var state navigation.State
	if err := json.Unmarshal([]byte(v), &state); err != nil {
		b.logger.WarnContext(ctx, "ignoring saved navigation", "error", err)
		return nil
	}
	if err := b.nav.Restore(state); err != nil {
		b.logger.WarnContext(ctx, "ignoring saved navigation", "error", err)
		return nil
	}

	b.logger.DebugContext(ctx, "session restored",
		"language", b.provider.Language(),
		"view_level", state.Level,
		"depth", len(state.Breadcrumbs),
	)
	return nil
}

// Save persists the chosen language and the navigation state.
func (b *Browser) Save(ctx context.Context) error {
	if err := b.store.PutSetting(ctx, SettingLanguage, b.saved.String()); err != nil {
		return fmt.Errorf("save language: %w", err)
	}

	data, err := json.Marshal(b.nav.State())
	if err != nil {
		return fmt.Errorf("encode navigation: %w", err)
	}
	if err := b.store.PutSetting(ctx, SettingNavigation, string(data)); err != nil {
		return fmt.Errorf("save navigation: %w", err)
	}
	return nil
}

// Drill advances into the block at index (0-based, in View order).
func (b *Browser) Drill(ctx context.Context, index int) error {
	if b.nav.Level().Terminal() {
		b.logger.DebugContext(ctx, "drill ignored at year level", "index", index)
		return nil
	}

	blocks := b.nav.Blocks()
	if index < 0 || index >= len(blocks) {
		return fmt.Errorf("%w: %d (have %d)", ErrNoSuchBlock, index+1, len(blocks))
	}

	blk := blocks[index]
	b.nav.Advance(blk.Start, blk.End)
	b.logger.DebugContext(ctx, "drilled", "view_level", b.nav.Level(), "start", blk.Start, "end", blk.End)
	return b.Save(ctx)
}

// Back jumps to breadcrumb index; -1 goes home.
func (b *Browser) Back(ctx context.Context, index int) error {
	if err := b.nav.Navigate(index); err != nil {
		return err
	}
	b.logger.DebugContext(ctx, "navigated back", "index", index, "view_level", b.nav.Level())
	return b.Save(ctx)
}

// Home returns to the root of the timeline.
func (b *Browser) Home(ctx context.Context) error {
	b.nav.Reset()
	return b.Save(ctx)
}

// SetLanguage switches and persists the active language.
func (b *Browser) SetLanguage(ctx context.Context, lang i18n.Language) error {
	if err := b.provider.SetLanguage(lang); err != nil {
		return err
	}
	b.saved = lang
	return b.Save(ctx)
}

// ToggleLanguage flips between English and French and persists the choice.
func (b *Browser) ToggleLanguage(ctx context.Context) (i18n.Language, error) {
	lang := b.provider.Toggle()
	b.saved = lang
	return lang, b.Save(ctx)
}

// AddEvent validates a submitted form and stores the event. A blank title
// or year is ignored: the returned event is nil and the error is nil.
func (b *Browser) AddEvent(ctx context.Context, in storage.EventInput) (*storage.Event, error) {
	e, ok, err := storage.ParseInput(in)
	if err != nil {
		return nil, err
	}
	if !ok {
		b.logger.DebugContext(ctx, "ignoring blank event submission")
		return nil, nil
	}

	if err := b.store.AddEvent(ctx, &e); err != nil {
		return nil, err
	}
	b.logger.InfoContext(ctx, "event added", "id", e.ID, "year", e.Year)
	return &e, nil
}

// EventDetail is the full view of one event.
type EventDetail struct {
	Event         storage.Event `json:"event"`
	YearLabel     string        `json:"year_label"`
	FullDate      string        `json:"full_date"`
	Era           string        `json:"era"`
	CategoryLabel string        `json:"category_label"`
	Context       string        `json:"context"`
}

// Detail returns the localized detail view of event id.
func (b *Browser) Detail(ctx context.Context, id string) (*EventDetail, error) {
	e, err := b.store.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	tr := b.provider.Translations()
	era := timeline.EraOf(e.Year).Label(tr)
	category := tr.CategoryLabel(string(e.Category))
	return &EventDetail{
		Event:         *e,
		YearLabel:     timeline.FormatYear(e.Year, tr),
		FullDate:      timeline.FormatFullDate(e.Year, e.Month, e.Day, tr),
		Era:           era,
		CategoryLabel: category,
		Context:       tr.ContextText(era, category),
	}, nil
}

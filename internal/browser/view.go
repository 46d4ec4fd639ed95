package browser

import (
	"context"
	"fmt"

	"github.com/ghaliela/cochrono/internal/i18n"
	"github.com/ghaliela/cochrono/internal/navigation"
	"github.com/ghaliela/cochrono/internal/storage"
	"github.com/ghaliela/cochrono/internal/timeline"
)

// View is everything needed to render the current timeline screen.
type View struct {
	Language  i18n.Language           `json:"language"`
	Level     timeline.Level          `json:"level"`
	Header    string                  `json:"header"`
	Range     timeline.TimeRange      `json:"range"`
	Trail     []navigation.Breadcrumb `json:"trail"`
	Blocks    []Block                 `json:"blocks"`
	Drillable bool                    `json:"drillable"`
}

// Block is one card of the view with every event that falls into it.
type Block struct {
	Number int                `json:"number"`
	Label  string             `json:"label"`
	Range  timeline.TimeRange `json:"range"`
	Events []storage.Event    `json:"events"`
}

// View builds the current screen.
func (b *Browser) View(ctx context.Context) (*View, error) {
	tr := b.provider.Translations()
	level := b.nav.Level()
	current := b.nav.Range()

	v := &View{
		Language:  tr.Language(),
		Level:     level,
		Header:    fmt.Sprintf("%s: %s %s", tr.T(i18n.KeyViewing), tr.LevelName(level.String()), tr.T(i18n.KeyLevel)),
		Range:     current,
		Trail:     b.nav.Trail(tr),
		Drillable: !level.Terminal(),
	}

	for i, blk := range b.nav.Blocks() {
		events, err := b.store.QueryBlock(ctx, storage.BlockQuery{
			Level: level,
			Block: blk,
			Year:  current.Start,
		})
		if err != nil {
			return nil, fmt.Errorf("query block %d: %w", i+1, err)
		}
		v.Blocks = append(v.Blocks, Block{
			Number: i + 1,
			Label:  timeline.FormatLabel(blk.Start, blk.End, level, tr),
			Range:  blk,
			Events: events,
		})
	}
	return v, nil
}

package cli

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghaliela/cochrono/internal/browser"
	"github.com/ghaliela/cochrono/internal/timeline"
)

func TestViewCommand_Root(t *testing.T) {
	s, out := testSession(t, nil)

	cmd := &ViewCommand{globals: &GlobalFlags{}}
	require.NoError(t, cmd.executeWithSession(context.Background(), s))

	text := out.String()
	assert.Contains(t, text, "⌂\n")
	assert.Contains(t, text, "Viewing: Epoch Level")
	assert.Contains(t, text, "1. 4th Millennium BC (1)")
	assert.Contains(t, text, "3200 BC  Invention of writing in Sumer  seed-0001")
	assert.Contains(t, text, "6. 2nd Millennium AD (13)")
	assert.Contains(t, text, "+ 10 more events")
	assert.Contains(t, text, "7. 3rd Millennium AD (0)")
	assert.Contains(t, text, "No significant events recorded")
}

func TestViewCommand_MaxEventsPerBlock(t *testing.T) {
	s, out := testSession(t, nil)
	s.out.maxEvents = 5

	cmd := &ViewCommand{globals: &GlobalFlags{}}
	require.NoError(t, cmd.executeWithSession(context.Background(), s))
	assert.Contains(t, out.String(), "+ 8 more events")
}

func TestDrillCommand_ShowsChildLevel(t *testing.T) {
	s, out := testSession(t, nil)
	ctx := context.Background()

	cmd := &DrillCommand{globals: &GlobalFlags{}}
	cmd.Args.Block = 6
	require.NoError(t, cmd.executeWithSession(ctx, s))

	text := out.String()
	assert.Contains(t, text, "⌂ › All History [0]")
	assert.Contains(t, text, "Viewing: Millennium Level")
	assert.Contains(t, text, "1. 11th Century AD (1)")
	assert.Contains(t, text, "10. 20th Century AD (4)")

	// The position is persisted for the next invocation.
	v, ok, err := s.store.GetSetting(ctx, browser.SettingNavigation)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, v, `"level":"millennium"`)
}

func TestDrillCommand_Errors(t *testing.T) {
	s, _ := testSession(t, nil)
	ctx := context.Background()

	cmd := &DrillCommand{globals: &GlobalFlags{}}
	cmd.Args.Block = 0
	assert.Error(t, cmd.executeWithSession(ctx, s))

	cmd.Args.Block = 8
	assert.ErrorIs(t, cmd.executeWithSession(ctx, s), browser.ErrNoSuchBlock)
}

func TestBackAndHomeCommands(t *testing.T) {
	s, out := testSession(t, nil)
	ctx := context.Background()

	for _, n := range []int{6, 10, 7} {
		drill := &DrillCommand{globals: &GlobalFlags{}}
		drill.Args.Block = n
		require.NoError(t, drill.executeWithSession(ctx, s))
	}
	assert.Equal(t, timeline.Decade, s.browser.State().Level)
	assert.Contains(t, out.String(), "⌂ › All History [0] › 2nd Millennium AD [1] › 20th Century AD [2]")

	back := &BackCommand{globals: &GlobalFlags{}}
	back.Args.Index = "1"
	require.NoError(t, back.executeWithSession(ctx, s))
	assert.Equal(t, timeline.Millennium, s.browser.State().Level)

	back.Args.Index = "5"
	assert.Error(t, back.executeWithSession(ctx, s))

	home := &HomeCommand{globals: &GlobalFlags{}}
	require.NoError(t, home.executeWithSession(ctx, s))
	assert.Equal(t, timeline.Epoch, s.browser.State().Level)
	assert.Empty(t, s.browser.State().Breadcrumbs)
}

func TestViewCommand_YearLevelJSON(t *testing.T) {
	s, out := testSession(t, &GlobalFlags{JSON: true})
	ctx := context.Background()

	for _, idx := range []int{5, 9, 6, 9} {
		require.NoError(t, s.browser.Drill(ctx, idx))
	}

	cmd := &ViewCommand{globals: &GlobalFlags{JSON: true}}
	require.NoError(t, cmd.executeWithSession(ctx, s))

	var v browser.View
	require.NoError(t, json.Unmarshal(out.Bytes(), &v))
	assert.Equal(t, timeline.Year, v.Level)
	assert.False(t, v.Drillable)
	require.Len(t, v.Blocks, 12)
	assert.Equal(t, "July", v.Blocks[6].Label)
	require.Len(t, v.Blocks[6].Events, 1)
	assert.Equal(t, "seed-0018", v.Blocks[6].Events[0].ID)
	require.Len(t, v.Trail, 4)
	assert.Equal(t, "1960s", v.Trail[3].Label)
}

func TestViewCommand_LangOverride(t *testing.T) {
	s, out := testSession(t, &GlobalFlags{Lang: "fr"})

	cmd := &ViewCommand{globals: &GlobalFlags{}}
	require.NoError(t, cmd.executeWithSession(context.Background(), s))
	assert.Contains(t, out.String(), "av. J.-C.")
}

func TestDrillCommand_LangOverrideIsNotSaved(t *testing.T) {
	s, out := testSession(t, &GlobalFlags{Lang: "fr"})
	ctx := context.Background()

	drill := &DrillCommand{globals: &GlobalFlags{}}
	drill.Args.Block = 6
	require.NoError(t, drill.executeWithSession(ctx, s))
	assert.Contains(t, out.String(), "Toute l'Histoire")

	home := &HomeCommand{globals: &GlobalFlags{}}
	require.NoError(t, home.executeWithSession(ctx, s))

	v, ok, err := s.store.GetSetting(ctx, "language")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "en", v)

	_, ok, err = s.store.GetSetting(ctx, "navigation")
	require.NoError(t, err)
	assert.True(t, ok)
}

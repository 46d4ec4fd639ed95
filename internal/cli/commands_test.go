package cli

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghaliela/cochrono/internal/i18n"
	"github.com/ghaliela/cochrono/internal/storage"
)

func TestAddCommand_BasicEvent(t *testing.T) {
	s, out := testSession(t, nil)
	ctx := context.Background()

	cmd := &AddCommand{
		Title:       "Battle of Marathon",
		Year:        "490",
		BC:          true,
		Month:       "9",
		Description: "Athens defeats the Persian invasion",
		Category:    "war",
		globals:     &GlobalFlags{},
	}
	require.NoError(t, cmd.executeWithSession(ctx, s))

	text := out.String()
	assert.Contains(t, text, "Added event EVT-")
	assert.Contains(t, text, "490 BC  Battle of Marathon")

	stats, err := s.store.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.ManualEvents)
}

func TestAddCommand_BlankIsIgnored(t *testing.T) {
	s, out := testSession(t, nil)
	ctx := context.Background()

	cmd := &AddCommand{Title: "No year", globals: &GlobalFlags{}}
	require.NoError(t, cmd.executeWithSession(ctx, s))
	assert.Contains(t, out.String(), "Nothing added")

	stats, err := s.store.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.ManualEvents)
}

func TestAddCommand_InvalidInput(t *testing.T) {
	s, _ := testSession(t, nil)
	ctx := context.Background()

	cmd := &AddCommand{Title: "x", Year: "1", Category: "sports", globals: &GlobalFlags{}}
	assert.ErrorIs(t, cmd.executeWithSession(ctx, s), storage.ErrUnknownCategory)

	cmd = &AddCommand{Title: "x", Year: "1", Link: "not a url", globals: &GlobalFlags{}}
	assert.ErrorIs(t, cmd.executeWithSession(ctx, s), storage.ErrInvalidLink)
}

func TestAddCommand_JSON(t *testing.T) {
	s, out := testSession(t, &GlobalFlags{JSON: true})

	cmd := &AddCommand{Title: "Printing in Korea", Year: "1377", Category: "science", globals: &GlobalFlags{}}
	require.NoError(t, cmd.executeWithSession(context.Background(), s))

	var got struct {
		Added bool          `json:"added"`
		Event storage.Event `json:"event"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.True(t, got.Added)
	assert.Equal(t, 1377, got.Event.Year)
	assert.Equal(t, storage.CategoryScience, got.Event.Category)
	assert.True(t, strings.HasPrefix(got.Event.ID, "EVT-"))
}

func TestShowCommand(t *testing.T) {
	s, out := testSession(t, nil)

	cmd := &ShowCommand{ID: "seed-0015", globals: &GlobalFlags{}}
	require.NoError(t, cmd.executeWithSession(context.Background(), s))

	text := out.String()
	assert.Contains(t, text, "Storming of the Bastille")
	assert.Contains(t, text, "July 14 1789 AD · Politics & Leaders")
	assert.Contains(t, text, "Historical Context")
	assert.Contains(t, text, "This event occurred during the Modern Era.")
	assert.Contains(t, text, "Read Article: https://fr.wikipedia.org/wiki/Prise_de_la_Bastille")
	assert.Contains(t, text, "ID: seed-0015")
}

func TestShowCommand_French(t *testing.T) {
	s, out := testSession(t, &GlobalFlags{Lang: "fr"})

	cmd := &ShowCommand{ID: "seed-0015", globals: &GlobalFlags{}}
	require.NoError(t, cmd.executeWithSession(context.Background(), s))
	assert.Contains(t, out.String(), "14 Juillet 1789")
}

func TestShowCommand_NotFound(t *testing.T) {
	s, _ := testSession(t, nil)

	cmd := &ShowCommand{ID: "EVT-missing", globals: &GlobalFlags{}}
	err := cmd.executeWithSession(context.Background(), s)
	assert.ErrorIs(t, err, storage.ErrEventNotFound)
}

func TestSearchCommand(t *testing.T) {
	s, out := testSession(t, nil)

	cmd := &SearchCommand{Category: "war", Limit: 10, globals: &GlobalFlags{}}
	require.NoError(t, cmd.executeWithSession(context.Background(), s, nil))

	text := out.String()
	assert.Contains(t, text, "Found 3 results")
	assert.Contains(t, text, "1. 476  Fall of the Western Roman Empire")
	assert.Contains(t, text, "War & Conflict")
}

func TestSearchCommand_QueryAndRange(t *testing.T) {
	s, out := testSession(t, &GlobalFlags{JSON: true})

	cmd := &SearchCommand{From: -1000, To: 1000, Limit: 10, globals: &GlobalFlags{}}
	require.NoError(t, cmd.executeWithSession(context.Background(), s, []string{"rome"}))

	var got jsonSearchOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "rome", got.Query)
	require.Equal(t, 2, got.Count)
	assert.Equal(t, -753, got.Results[0].Year)
}

func TestSearchCommand_Errors(t *testing.T) {
	s, _ := testSession(t, nil)
	ctx := context.Background()

	cmd := &SearchCommand{Category: "sports", globals: &GlobalFlags{}}
	assert.ErrorIs(t, cmd.executeWithSession(ctx, s, nil), storage.ErrUnknownCategory)

	cmd = &SearchCommand{From: 1500, To: 1000, globals: &GlobalFlags{}}
	assert.Error(t, cmd.executeWithSession(ctx, s, nil))
}

func TestSearchCommand_NoResults(t *testing.T) {
	s, out := testSession(t, nil)

	cmd := &SearchCommand{Limit: 10, globals: &GlobalFlags{}}
	require.NoError(t, cmd.executeWithSession(context.Background(), s, []string{"zeppelin"}))
	assert.Contains(t, out.String(), `No results found for "zeppelin"`)
}

func TestLangCommand(t *testing.T) {
	s, out := testSession(t, nil)
	ctx := context.Background()

	cmd := &LangCommand{globals: &GlobalFlags{}}
	require.NoError(t, cmd.executeWithSession(ctx, s, nil))
	assert.Contains(t, out.String(), "Language: en")

	require.NoError(t, cmd.executeWithSession(ctx, s, []string{"fr-CA"}))
	assert.Equal(t, i18n.French, s.browser.Language())

	v, ok, err := s.store.GetSetting(ctx, "language")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "fr", v)

	require.NoError(t, cmd.executeWithSession(ctx, s, []string{"toggle"}))
	assert.Equal(t, i18n.English, s.browser.Language())

	err = cmd.executeWithSession(ctx, s, []string{"de"})
	assert.ErrorIs(t, err, i18n.ErrUnsupportedLanguage)
}

func TestStatusCommand_Human(t *testing.T) {
	s, out := testSession(t, nil)

	cmd := &StatusCommand{globals: &GlobalFlags{}, version: "1.0.0"}
	require.NoError(t, cmd.executeWithSession(context.Background(), s))

	text := out.String()
	assert.Contains(t, text, "ChronoStream Status")
	assert.Contains(t, text, "Version:       1.0.0")
	assert.Contains(t, text, "schema v1")
	assert.Contains(t, text, "Events:        20 (20 seeded, 0 added)")
	assert.Contains(t, text, "Earliest:      3200 BC")
	assert.Contains(t, text, "Latest:        1991")
	assert.Contains(t, text, "Politics & Leaders")
	assert.Contains(t, text, "Language:      en")
}

func TestStatusCommand_JSON(t *testing.T) {
	s, out := testSession(t, &GlobalFlags{JSON: true})

	cmd := &StatusCommand{globals: &GlobalFlags{}, version: "1.0.0"}
	require.NoError(t, cmd.executeWithSession(context.Background(), s))

	var got statusJSON
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "1.0.0", got.Version)
	assert.Equal(t, 1, got.SchemaVersion)
	assert.Equal(t, int64(20), got.TotalEvents)
	require.NotNil(t, got.EarliestYear)
	assert.Equal(t, -3200, *got.EarliestYear)
	assert.Greater(t, got.DatabaseSizeBytes, int64(0))
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, 0, got.Depth)
	assert.Equal(t, "politics", got.Categories[0].Category)
}

func TestPurgeCommand(t *testing.T) {
	s, out := testSession(t, nil)
	ctx := context.Background()
	require.NoError(t, s.browser.SetLanguage(ctx, i18n.French))

	cmd := &PurgeCommand{All: true, Force: true, globals: &GlobalFlags{}}
	require.NoError(t, cmd.executeWithSession(ctx, s))
	assert.Contains(t, out.String(), "Purged all events")

	all, err := s.store.AllEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// Settings survive a purge.
	v, ok, err := s.store.GetSetting(ctx, "language")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "fr", v)
}

func TestConfirmPurge(t *testing.T) {
	var err error
	output := captureOutput(t, func() {
		err = confirmPurge(strings.NewReader("PURGE\n"))
	})
	assert.NoError(t, err)
	assert.Contains(t, output, "WARNING")

	captureOutput(t, func() {
		err = confirmPurge(strings.NewReader("yes\n"))
	})
	assert.ErrorContains(t, err, "did not match")

	captureOutput(t, func() {
		err = confirmPurge(strings.NewReader(""))
	})
	assert.ErrorContains(t, err, "no input")
}

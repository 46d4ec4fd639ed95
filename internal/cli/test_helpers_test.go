package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	goflags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"

	"github.com/ghaliela/cochrono/internal/config"
	"github.com/ghaliela/cochrono/internal/logging"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// testSession opens a session over a fresh, seeded SQLite database in a
// temp dir. Output goes to the returned buffer with colors disabled.
func testSession(t *testing.T, globals *GlobalFlags) (*session, *bytes.Buffer) {
	t.Helper()
	if globals == nil {
		globals = &GlobalFlags{}
	}
	ctx := context.Background()

	cfg := config.DefaultConfig()
	cfg.Display.Color = false

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, store, err := openStore(ctx, dbPath, cfg.Storage.JournalMode)
	require.NoError(t, err)

	s := &session{
		cfg:    cfg,
		dbPath: dbPath,
		db:     db,
		store:  store,
		logger: logging.NewNope(),
	}
	t.Cleanup(func() { s.Close() })

	var buf bytes.Buffer
	require.NoError(t, s.init(ctx, globals, cfg.Locale.Language, &buf))
	return s, &buf
}

// parseOnly parses args without executing the matched command.
func parseOnly(t *testing.T, args ...string) (*GlobalFlags, *commands, error) {
	t.Helper()
	parser, globals, cmds := buildParser("test")
	parser.CommandHandler = func(goflags.Commander, []string) error { return nil }
	_, err := parser.ParseArgs(args)
	return globals, cmds, err
}

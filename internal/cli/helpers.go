package cli

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ghaliela/cochrono/internal/browser"
	"github.com/ghaliela/cochrono/internal/config"
	"github.com/ghaliela/cochrono/internal/i18n"
	"github.com/ghaliela/cochrono/internal/logging"
	"github.com/ghaliela/cochrono/internal/storage"
)

// session bundles everything a command needs for one invocation.
type session struct {
	cfg     *config.Config
	dbPath  string
	db      *sql.DB
	store   storage.Store
	browser *browser.Browser
	logger  *slog.Logger
	out     *printer
}

// loadConfig reads the config file named by --config, or the default one.
func loadConfig(globals *GlobalFlags) (*config.Config, error) {
	if globals.Config != "" {
		path, err := config.ExpandPath(globals.Config)
		if err != nil {
			return nil, err
		}
		return config.LoadOrCreateAt(path)
	}
	return config.LoadOrCreate()
}

// openSession loads config, opens and migrates the database, and restores
// the saved browsing session.
func openSession(ctx context.Context, globals *GlobalFlags) (*session, error) {
	cfg, err := loadConfig(globals)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Verbose: globals.Verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	dbPath := globals.DBPath
	if dbPath == "" {
		if dbPath, err = cfg.DBPath(); err != nil {
			return nil, err
		}
	}

	db, store, err := openStore(ctx, dbPath, cfg.Storage.JournalMode)
	if err != nil {
		return nil, err
	}
	logger.DebugContext(ctx, "database ready", "path", dbPath)

	s := &session{
		cfg:    cfg,
		dbPath: dbPath,
		db:     db,
		store:  store,
		logger: logger,
	}
	if err := s.init(ctx, globals, cfg.Locale.Language, os.Stdout); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// init builds the localizer, browser and printer on top of s.store.
func (s *session) init(ctx context.Context, globals *GlobalFlags, defaultLang string, w io.Writer) error {
	lang, err := i18n.ParseLanguage(defaultLang)
	if err != nil {
		s.logger.WarnContext(ctx, "unsupported configured language, using English", "language", defaultLang)
		lang = i18n.BaseLanguage
	}

	provider := i18n.NewProvider(nil, lang)
	s.browser = browser.New(s.store, provider, browser.WithLogger(s.logger))
	if err := s.browser.Load(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	// --lang applies to this invocation only; the lang command persists.
	if globals.Lang != "" {
		override, err := i18n.ParseLanguage(globals.Lang)
		if err != nil {
			return err
		}
		if err := provider.SetLanguage(override); err != nil {
			return err
		}
	}

	s.out = newPrinter(w, globals.JSON, s.cfg.Display.Color, s.cfg.Display.MaxEventsPerBlock)
	return nil
}

// Close releases the store and database.
func (s *session) Close() error {
	if s.store != nil {
		s.store.Close()
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// openStore opens the SQLite database at dbPath, runs migrations, and
// returns a ready-to-use store and the underlying *sql.DB.
func openStore(ctx context.Context, dbPath, journalMode string) (*sql.DB, *storage.SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	runner, err := storage.NewMigrationRunner(db, journalMode)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	if err := runner.Run(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	store, err := storage.NewSQLiteStore(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("init store: %w", err)
	}

	return db, store, nil
}

// runCommand opens a session, tags the context with the command name and
// hands both to fn.
func runCommand(globals *GlobalFlags, name string, fn func(ctx context.Context, s *session) error) error {
	ctx := logging.WithCommand(context.Background(), name)
	s, err := openSession(ctx, globals)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(ctx, s)
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

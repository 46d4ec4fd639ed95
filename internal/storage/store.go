package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ghaliela/cochrono/internal/timeline"
)

// Store defines the event store and session settings operations.
type Store interface {
	AddEvent(ctx context.Context, event *Event) error
	GetEvent(ctx context.Context, id string) (*Event, error)
	QueryBlock(ctx context.Context, q BlockQuery) ([]Event, error)
	SearchEvents(ctx context.Context, q SearchQuery) ([]Event, error)
	AllEvents(ctx context.Context) ([]Event, error)
	GetStats(ctx context.Context) (*Stats, error)
	PurgeAll(ctx context.Context) error
	GetSetting(ctx context.Context, key string) (string, bool, error)
	PutSetting(ctx context.Context, key, value string) error
	Close() error
}

var (
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

const eventColumns = `id, title, description, year, month, day, link, category, source, created_at`

// SQLiteStore implements Store backed by a SQLite database.
type SQLiteStore struct {
	db *sql.DB

	// Prepared statements
	insertEvent *sql.Stmt
	getEvent    *sql.Stmt
	getSetting  *sql.Stmt
	putSetting  *sql.Stmt
}

// NewSQLiteStore creates a new SQLiteStore from an already-opened and migrated database.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}

	if err := s.prepareStatements(); err != nil {
		s.Close()
		return nil, fmt.Errorf("prepare statements: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) prepareStatements() error {
	var err error

	s.insertEvent, err = s.db.Prepare(`
		INSERT INTO events (` + eventColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}

	s.getEvent, err = s.db.Prepare(`SELECT ` + eventColumns + ` FROM events WHERE id = ?`)
	if err != nil {
		return err
	}

	s.getSetting, err = s.db.Prepare(`SELECT value FROM settings WHERE key = ?`)
	if err != nil {
		return err
	}

	s.putSetting, err = s.db.Prepare(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return err
	}

	return nil
}

// AddEvent inserts a new event. ID, Source and CreatedAt are populated when
// empty. An event with a blank title is silently skipped (ID remains empty,
// no error). A failed insert leaves the caller's event untouched. Reads
// always return events ordered by year.
func (s *SQLiteStore) AddEvent(ctx context.Context, event *Event) error {
	e := *event
	skip, err := prepare(&e)
	if err != nil {
		return fmt.Errorf("add event: %w", err)
	}
	if skip {
		return nil
	}

	_, err = s.insertEvent.ExecContext(ctx,
		e.ID, e.Title, e.Description, e.Year,
		nullInt(e.Month), nullInt(e.Day), e.Link,
		string(e.Category), e.Source,
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	*event = e
	return nil
}

// GetEvent retrieves a single event by ID.
func (s *SQLiteStore) GetEvent(ctx context.Context, id string) (*Event, error) {
	e, err := scanEvent(s.getEvent.QueryRowContext(ctx, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrEventNotFound, id)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

// QueryBlock returns every event inside the block, ascending by year.
func (s *SQLiteStore) QueryBlock(ctx context.Context, q BlockQuery) ([]Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE year BETWEEN ? AND ? ORDER BY year`
	args := []interface{}{q.Block.Start, q.Block.End}
	if q.Level == timeline.Year {
		query = `SELECT ` + eventColumns + ` FROM events WHERE year = ? AND month = ? ORDER BY year`
		args = []interface{}{q.Year, q.Block.Start}
	}
	return s.scanEvents(ctx, query, args...)
}

// SearchEvents queries events with optional filters.
func (s *SQLiteStore) SearchEvents(ctx context.Context, q SearchQuery) ([]Event, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}

	var clauses []string
	var args []interface{}

	if text := strings.TrimSpace(q.Query); text != "" {
		like := "%" + text + "%"
		clauses = append(clauses, "(title LIKE ? OR description LIKE ?)")
		args = append(args, like, like)
	}
	if q.Category != "" {
		clauses = append(clauses, "category = ?")
		args = append(args, string(q.Category))
	}
	if q.FromYear != 0 {
		clauses = append(clauses, "year >= ?")
		args = append(args, q.FromYear)
	}
	if q.ToYear != 0 {
		clauses = append(clauses, "year <= ?")
		args = append(args, q.ToYear)
	}

	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + strings.Join(clauses, " AND ")
	}

	fullQuery := `SELECT ` + eventColumns + ` FROM events` + where + ` ORDER BY year LIMIT ? OFFSET ?`
	args = append(args, q.Limit, q.Offset)

	return s.scanEvents(ctx, fullQuery, args...)
}

// AllEvents returns every event ordered by year.
func (s *SQLiteStore) AllEvents(ctx context.Context) ([]Event, error) {
	return s.scanEvents(ctx, `SELECT `+eventColumns+` FROM events ORDER BY year`)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*Event, error) {
	var e Event
	var month, day sql.NullInt64
	var category, tsStr string

	if err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Year, &month, &day,
		&e.Link, &category, &e.Source, &tsStr,
	); err != nil {
		return nil, err
	}

	e.Month = int(month.Int64)
	e.Day = int(day.Int64)
	e.Category = Category(category)
	e.CreatedAt, _ = parseTimestamp(tsStr)
	return &e, nil
}

// scanEvents executes a query and scans results into Event slices.
func (s *SQLiteStore) scanEvents(ctx context.Context, query string, args ...interface{}) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := []Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// GetStats returns aggregate statistics about the database.
func (s *SQLiteStore) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(source = 'seed'), 0),
		       COALESCE(MIN(year), 0),
		       COALESCE(MAX(year), 0)
		FROM events
	`).Scan(&stats.TotalEvents, &stats.SeedEvents, &stats.EarliestYear, &stats.LatestYear)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	stats.ManualEvents = stats.TotalEvents - stats.SeedEvents

	rows, err := s.db.QueryContext(ctx, `SELECT category, COUNT(*) FROM events GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	defer rows.Close()

	counts := map[Category]int64{}
	for rows.Next() {
		var cat string
		var n int64
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, err
		}
		counts[Category(cat)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	stats.Categories = categoryCounts(counts)

	return stats, nil
}

// PurgeAll deletes every event. Settings are kept.
func (s *SQLiteStore) PurgeAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM events"); err != nil {
		return fmt.Errorf("purge events: %w", err)
	}
	return nil
}

// GetSetting returns a stored setting value; ok is false when unset.
func (s *SQLiteStore) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.getSetting.QueryRowContext(ctx, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %s: %w", key, err)
	}
	return value, true, nil
}

// PutSetting inserts or replaces a setting value.
func (s *SQLiteStore) PutSetting(ctx context.Context, key, value string) error {
	if _, err := s.putSetting.ExecContext(ctx, key, value); err != nil {
		return fmt.Errorf("put setting %s: %w", key, err)
	}
	return nil
}

// Close releases all prepared statements. The underlying *sql.DB is NOT
// closed, that is the caller's responsibility.
func (s *SQLiteStore) Close() error {
	stmts := []*sql.Stmt{s.insertEvent, s.getEvent, s.getSetting, s.putSetting}
	for _, stmt := range stmts {
		if stmt != nil {
			stmt.Close()
		}
	}
	return nil
}

// parseTimestamp tries several common SQLite timestamp formats.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse timestamp: %s", s)
}

func nullInt(n int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(n), Valid: n != 0}
}

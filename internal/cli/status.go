package cli

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/ghaliela/cochrono/internal/i18n"
	"github.com/ghaliela/cochrono/internal/storage"
	"github.com/ghaliela/cochrono/internal/timeline"
)

// statusJSON is the JSON output structure for the status command.
type statusJSON struct {
	Version           string              `json:"version"`
	DatabasePath      string              `json:"database_path,omitempty"`
	DatabaseSizeBytes int64               `json:"database_size_bytes"`
	SchemaVersion     int                 `json:"schema_version"`
	TotalEvents       int64               `json:"total_events"`
	SeedEvents        int64               `json:"seed_events"`
	ManualEvents      int64               `json:"manual_events"`
	EarliestYear      *int                `json:"earliest_year,omitempty"`
	LatestYear        *int                `json:"latest_year,omitempty"`
	Categories        []categoryCountJSON `json:"categories"`
	Language          string              `json:"language"`
	Level             timeline.Level      `json:"level"`
	Depth             int                 `json:"depth"`
}

type categoryCountJSON struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
	return runCommand(c.globals, "status", c.executeWithSession)
}

// executeWithSession runs status against a provided session (for testing).
func (c *StatusCommand) executeWithSession(ctx context.Context, s *session) error {
	stats, err := s.store.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("get stats: %w", err)
	}

	var dbSize int64
	var schema int
	if s.db != nil {
		dbSize = getDatabaseSize(s.db, s.dbPath)
		runner, err := storage.NewMigrationRunner(s.db, s.cfg.Storage.JournalMode)
		if err != nil {
			return err
		}
		if schema, err = runner.Version(ctx); err != nil {
			return err
		}
	}

	if s.out.json {
		return c.printStatusJSON(s, stats, dbSize, schema)
	}
	return c.printStatusHuman(s, stats, dbSize, schema)
}

func (c *StatusCommand) printStatusHuman(s *session, stats *storage.Stats, dbSize int64, schema int) error {
	tr := s.browser.Translations()
	state := s.browser.State()

	heading := tr.T(i18n.KeyAppName) + " Status"
	s.out.println(s.out.title.Render(heading))
	s.out.println(strings.Repeat("=", len(heading)))
	s.out.printf("Version:       %s\n", c.version)
	if s.dbPath != "" {
		s.out.printf("Database:      %s (%s, schema v%d)\n", s.dbPath, formatBytes(dbSize), schema)
	}
	s.out.printf("Events:        %s (%s seeded, %s added)\n",
		formatNumber(stats.TotalEvents), formatNumber(stats.SeedEvents), formatNumber(stats.ManualEvents))

	if stats.TotalEvents > 0 {
		s.out.printf("Earliest:      %s\n", timeline.FormatYear(stats.EarliestYear, tr))
		s.out.printf("Latest:        %s\n", timeline.FormatYear(stats.LatestYear, tr))
	}

	if len(stats.Categories) > 0 {
		s.out.println("")
		s.out.println("Categories:")
		for _, cc := range stats.Categories {
			s.out.printf("  %-20s %s\n", tr.CategoryLabel(string(cc.Category)), formatNumber(cc.Count))
		}
	}

	s.out.println("")
	s.out.printf("Language:      %s\n", s.browser.Language())
	s.out.printf("Level:         %s (%d breadcrumbs)\n", tr.LevelName(state.Level.String()), len(state.Breadcrumbs))

	return nil
}

func (c *StatusCommand) printStatusJSON(s *session, stats *storage.Stats, dbSize int64, schema int) error {
	state := s.browser.State()
	out := statusJSON{
		Version:           c.version,
		DatabasePath:      s.dbPath,
		DatabaseSizeBytes: dbSize,
		SchemaVersion:     schema,
		TotalEvents:       stats.TotalEvents,
		SeedEvents:        stats.SeedEvents,
		ManualEvents:      stats.ManualEvents,
		Categories:        make([]categoryCountJSON, len(stats.Categories)),
		Language:          s.browser.Language().String(),
		Level:             state.Level,
		Depth:             len(state.Breadcrumbs),
	}

	if stats.TotalEvents > 0 {
		earliest, latest := stats.EarliestYear, stats.LatestYear
		out.EarliestYear = &earliest
		out.LatestYear = &latest
	}

	for i, cc := range stats.Categories {
		out.Categories[i] = categoryCountJSON{Category: string(cc.Category), Count: cc.Count}
	}

	return writeJSON(s.out.w, out)
}

// getDatabaseSize returns the database file size in bytes.
// For on-disk databases, it uses os.Stat. For in-memory databases,
// it queries page_count * page_size.
func getDatabaseSize(db *sql.DB, dbPath string) int64 {
	// Try file stat first
	if info, err := os.Stat(dbPath); err == nil {
		return info.Size()
	}

	// Fallback: query SQLite for in-memory or unavailable file
	var pageCount, pageSize int64
	if err := db.QueryRow("PRAGMA page_count").Scan(&pageCount); err != nil {
		return 0
	}
	if err := db.QueryRow("PRAGMA page_size").Scan(&pageSize); err != nil {
		return 0
	}
	return pageCount * pageSize
}

// formatBytes formats a byte count into a human-readable string.
func formatBytes(b int64) string {
	switch {
	case b >= 1<<30:
		return fmt.Sprintf("%.1f GB", float64(b)/float64(1<<30))
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/float64(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/float64(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}

// formatNumber formats an int64 with comma separators.
func formatNumber(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if i > 0 {
			result.WriteString(",")
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

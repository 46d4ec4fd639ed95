package storage

import (
	"context"
	"database/sql"
)

// migrateV001 creates the initial schema: the events and settings tables,
// their indexes, and the seeded event collection. Every statement uses
// IF NOT EXISTS / OR IGNORE for idempotency.
func migrateV001(ctx context.Context, tx *sql.Tx) error {
	stmts := []string{
		// ── Tables ──────────────────────────────────────────────

		`CREATE TABLE IF NOT EXISTS events (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			year        INTEGER NOT NULL,
			month       INTEGER CHECK (month BETWEEN 1 AND 12),
			day         INTEGER CHECK (day BETWEEN 1 AND 31),
			link        TEXT NOT NULL DEFAULT '',
			category    TEXT NOT NULL DEFAULT 'general'
			            CHECK (category IN ('general', 'war', 'politics', 'science', 'art', 'religion')),
			source      TEXT NOT NULL DEFAULT 'manual',
			created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS settings (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,

		// ── Indexes ────────────────────────────────────────────

		`CREATE INDEX IF NOT EXISTS idx_events_year       ON events(year)`,
		`CREATE INDEX IF NOT EXISTS idx_events_year_month ON events(year, month)`,
		`CREATE INDEX IF NOT EXISTS idx_events_category   ON events(category)`,
		`CREATE INDEX IF NOT EXISTS idx_events_source     ON events(source)`,
	}

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return seedDefaultEvents(ctx, tx)
}

// DefaultEvents returns the curated collection every new database starts with.
func DefaultEvents() []Event {
	events := []Event{
		{ID: "seed-0001", Year: -3200, Category: CategoryScience, Title: "Invention of writing in Sumer",
			Description: "Cuneiform script appears in Mesopotamia, first used to keep temple accounts."},
		{ID: "seed-0002", Year: -2560, Category: CategoryArt, Title: "Great Pyramid of Giza completed",
			Description: "The tomb of the pharaoh Khufu becomes the tallest structure built by humans for nearly four thousand years."},
		{ID: "seed-0003", Year: -1754, Category: CategoryPolitics, Title: "Code of Hammurabi",
			Description: "The Babylonian king has his laws inscribed on a basalt stele.",
			Link:        "https://en.wikipedia.org/wiki/Code_of_Hammurabi"},
		{ID: "seed-0004", Year: -753, Month: 4, Day: 21, Category: CategoryPolitics, Title: "Founding of Rome",
			Description: "Traditional date of the founding of Rome by Romulus."},
		{ID: "seed-0005", Year: -44, Month: 3, Day: 15, Category: CategoryPolitics, Title: "Assassination of Julius Caesar",
			Description: "Caesar is stabbed to death by senators on the Ides of March.",
			Link:        "https://en.wikipedia.org/wiki/Assassination_of_Julius_Caesar"},
		{ID: "seed-0006", Year: 476, Month: 9, Category: CategoryWar, Title: "Fall of the Western Roman Empire",
			Description: "Odoacer deposes Romulus Augustulus, the last western emperor."},
		{ID: "seed-0007", Year: 800, Month: 12, Day: 25, Category: CategoryReligion, Title: "Coronation of Charlemagne",
			Description: "Pope Leo III crowns Charlemagne emperor in Rome."},
		{ID: "seed-0008", Year: 1066, Month: 10, Day: 14, Category: CategoryWar, Title: "Battle of Hastings",
			Description: "William of Normandy defeats Harold II and begins the Norman conquest of England.",
			Link:        "https://en.wikipedia.org/wiki/Battle_of_Hastings"},
		{ID: "seed-0009", Year: 1215, Month: 6, Day: 15, Category: CategoryPolitics, Title: "Magna Carta sealed",
			Description: "King John accepts a charter limiting royal power."},
		{ID: "seed-0010", Year: 1440, Category: CategoryScience, Title: "Gutenberg's printing press",
			Description: "Movable type printing spreads across Europe."},
		{ID: "seed-0011", Year: 1492, Month: 10, Day: 12, Category: CategoryGeneral, Title: "Columbus reaches the Americas",
			Description: "The expedition lands in the Bahamas."},
		{ID: "seed-0012", Year: 1517, Month: 10, Day: 31, Category: CategoryReligion, Title: "Luther's Ninety-five Theses",
			Description: "The start of the Protestant Reformation."},
		{ID: "seed-0013", Year: 1687, Month: 7, Day: 5, Category: CategoryScience, Title: "Newton publishes the Principia",
			Description: "The laws of motion and universal gravitation are set out."},
		{ID: "seed-0014", Year: 1776, Month: 7, Day: 4, Category: CategoryPolitics, Title: "Declaration of Independence",
			Description: "Thirteen American colonies declare independence from Great Britain."},
		{ID: "seed-0015", Year: 1789, Month: 7, Day: 14, Category: CategoryPolitics, Title: "Storming of the Bastille",
			Description: "Parisians seize the royal fortress, a flashpoint of the French Revolution.",
			Link:        "https://fr.wikipedia.org/wiki/Prise_de_la_Bastille"},
		{ID: "seed-0016", Year: 1859, Month: 11, Day: 24, Category: CategoryScience, Title: "On the Origin of Species",
			Description: "Charles Darwin publishes his theory of evolution by natural selection."},
		{ID: "seed-0017", Year: 1914, Month: 7, Day: 28, Category: CategoryWar, Title: "Outbreak of the First World War",
			Description: "Austria-Hungary declares war on Serbia."},
		{ID: "seed-0018", Year: 1969, Month: 7, Day: 20, Category: CategoryScience, Title: "Apollo 11 Moon landing",
			Description: "Neil Armstrong and Buzz Aldrin walk on the Moon.",
			Link:        "https://en.wikipedia.org/wiki/Apollo_11"},
		{ID: "seed-0019", Year: 1989, Month: 11, Day: 9, Category: CategoryPolitics, Title: "Fall of the Berlin Wall",
			Description: "East Germany opens its border crossings."},
		{ID: "seed-0020", Year: 1991, Month: 8, Day: 6, Category: CategoryScience, Title: "World Wide Web goes public",
			Description: "Tim Berners-Lee announces the WWW project."},
	}
	for i := range events {
		events[i].Source = SourceSeed
	}
	return events
}

// seedDefaultEvents inserts the curated collection. Uses INSERT OR IGNORE
// so re-running is safe.
func seedDefaultEvents(ctx context.Context, tx *sql.Tx) error {
	const insertSQL = `INSERT OR IGNORE INTO events (` + eventColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 'seed', CURRENT_TIMESTAMP)`

	for _, e := range DefaultEvents() {
		if _, err := tx.ExecContext(ctx, insertSQL,
			e.ID, e.Title, e.Description, e.Year,
			nullInt(e.Month), nullInt(e.Day), e.Link, string(e.Category),
		); err != nil {
			return err
		}
	}

	return nil
}

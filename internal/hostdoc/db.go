package hostdoc

import (
	"embed"
	"fmt"
	"log/slog"

	"github.com/danieljhkim/combos/internal/clock"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Document is an open project document.
type Document struct {
	dbConn *sqlx.DB
	path   string
	logger *slog.Logger
	clock  clock.Clock
}

// Open connects to the SQLite file at path, creating it if needed, and
// applies pending migrations.
func Open(path string, logger *slog.Logger) (*Document, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sqlx.Connect("sqlite", fmt.Sprintf("%s?_journal=WAL&_timeout=5000&_fk=true", path))
	if err != nil {
		return nil, fmt.Errorf("connecting to project document: %w", err)
	}

	// A unit of work holds the only connection until it ends.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting dialect for migrations: %w", err)
	}
	if err := goose.Up(db.DB, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying migrations: %w", err)
	}

	logger.Debug("project document opened", "path", path)
	return &Document{dbConn: db, path: path, logger: logger, clock: clock.System}, nil
}

// SetClock replaces the time source used to stamp new instances.
func (d *Document) SetClock(c clock.Clock) {
	d.clock = c
}

// Path returns the file the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// Close releases the connection.
func (d *Document) Close() error {
	if err := d.dbConn.Close(); err != nil {
		return fmt.Errorf("closing project document: %w", err)
	}
	return nil
}

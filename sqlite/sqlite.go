// Package sqlite provides SQLite-based storage for extraction results.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// pragma is a connection setting applied on Open.
type pragma struct {
	stmt     string
	fileOnly bool
}

var pragmas = []pragma{
	// Wait for locks instead of failing with "database is locked".
	{stmt: "PRAGMA busy_timeout = 5000"},
	// WAL is not supported for in-memory databases.
	{stmt: "PRAGMA journal_mode = WAL", fileOnly: true},
	// Child pages are deleted with their parent.
	{stmt: "PRAGMA foreign_keys = ON"},
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	for _, p := range pragmas {
		if p.fileOnly && db.path == ":memory:" {
			continue
		}
		if _, err := conn.Exec(p.stmt); err != nil {
			conn.Close()
			return fmt.Errorf("failed to apply %q: %w", p.stmt, err)
		}
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, nil)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS pages (
			id TEXT PRIMARY KEY,
			parent_id TEXT REFERENCES pages(id) ON DELETE CASCADE,
			url TEXT NOT NULL,
			depth INTEGER NOT NULL DEFAULT 0,
			position INTEGER NOT NULL DEFAULT 0,
			payload TEXT NOT NULL,
			content_hash TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_pages_parent_id ON pages(parent_id);
		CREATE INDEX IF NOT EXISTS idx_pages_url ON pages(url);
	`

	_, err := db.db.Exec(schema)
	return err
}

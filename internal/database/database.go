package database

import (
	"fmt"
	"net/url"
	"os"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// DefaultPath is the store location used when no path is configured.
const DefaultPath = "questions.db"

// DB wraps the single SQLite handle shared by every finder.
//
// The handle is opened query_only: nothing in this package writes to the
// store, and the driver rejects any statement that would.
type DB struct {
	conn *sqlx.DB
	path string
	mu   sync.Mutex
}

// New opens the questions store at path.
// The file must already exist; schema creation and seeding happen elsewhere.
func New(path string) (*DB, error) {
	if path == "" {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn, err := sqlx.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// One process-wide handle, no pooling
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	log.Debug().Str("path", path).Msg("Database connection established")

	return &DB{
		conn: conn,
		path: path,
	}, nil
}

// dsn builds a file: URI for path. The path is percent-escaped so names
// containing '?' or '#' reach SQLite intact, and mode=ro stops the driver
// from creating a file that vanished after the Stat.
func dsn(path string) string {
	u := url.URL{
		Scheme:   "file",
		Path:     path,
		OmitHost: true,
		RawQuery: "mode=ro&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=query_only(1)",
	}
	return u.String()
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}

// Close releases the underlying handle.
func (db *DB) Close() error {
	if db == nil || db.conn == nil {
		return nil
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	log.Debug().Str("path", db.path).Msg("Closing database connection")
	return db.conn.Close()
}

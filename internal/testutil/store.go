// Package testutil builds throwaway questions stores for tests.
package testutil

import (
	"database/sql"
	_ "embed"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

//go:embed testdata/schema.sql
var SchemaSQL string

//go:embed testdata/fixtures.sql
var FixturesSQL string

// NewStore creates a questions store in a temp dir with the schema applied,
// runs each script against it and returns the file path.
func NewStore(t *testing.T, scripts ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "questions.db")

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer conn.Close()

	for i, script := range append([]string{SchemaSQL}, scripts...) {
		for j, stmt := range SplitSQLStatements(script) {
			if _, err := conn.Exec(stmt); err != nil {
				t.Fatalf("script %d statement %d failed: %v", i, j+1, err)
			}
		}
	}

	return path
}

// FixtureStore creates a store seeded with testdata/fixtures.sql.
func FixtureStore(t *testing.T) string {
	t.Helper()
	return NewStore(t, FixturesSQL)
}

// SplitSQLStatements splits a SQL script into individual statements.
// It skips comment lines and only returns non-empty statements.
func SplitSQLStatements(script string) []string {
	var statements []string
	var current strings.Builder

	for line := range strings.SplitSeq(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSpace(current.String())
			if stmt != "" && stmt != ";" {
				statements = append(statements, stmt)
			}
			current.Reset()
		}
	}

	if remaining := strings.TrimSpace(current.String()); remaining != "" {
		statements = append(statements, remaining)
	}

	return statements
}

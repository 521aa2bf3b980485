// Package genedb builds and checks the gene summary SQLite database.
//
// The database is rebuilt locally from CSV shards because it is too large
// to distribute whole. Build is idempotent: an existing non-empty database
// is left untouched unless the rebuild is forced. Check validates the
// schema the way the result-file validator works - accumulating issues
// rather than stopping at the first one.
package genedb

import (
	"database/sql"
	"fmt"

	// Register sqlite driver
	_ "modernc.org/sqlite"
)

// Table schemas the database must carry. Column order matters for shard
// routing; declared types are what Check verifies against PRAGMA
// table_info.
var expectedTables = map[string][]Column{
	"gene_summary": {
		{Name: "tax_id", Type: "TEXT"},
		{Name: "gene_id", Type: "TEXT"},
		{Name: "source", Type: "TEXT"},
	},
	"identifier_counts": {
		{Name: "identifier", Type: "TEXT"},
		{Name: "count", Type: "INTEGER"},
	},
}

// Column is one expected column: a name and its declared SQLite type.
type Column struct {
	Name string
	Type string
}

// open opens the database with the WAL and busy-timeout pragmas. WAL allows
// a concurrent Check while a Build transaction is still committing; the
// busy timeout avoids "database is locked" on slow disks.
func open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}
	if _, err := db.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	return db, nil
}

// createSchema creates the expected tables if they do not exist.
func createSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS gene_summary (
			tax_id  TEXT,
			gene_id TEXT,
			source  TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS identifier_counts (
			identifier TEXT,
			count      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_gene_summary_gene ON gene_summary(gene_id)`,
		`CREATE INDEX IF NOT EXISTS idx_identifier_counts_id ON identifier_counts(identifier)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

// build.go implements the rebuild of the gene summary database from CSV
// shards.
//
// A shard's header row decides which table it feeds: a (tax_id, gene_id,
// source) header loads gene_summary, an (identifier, count) header loads
// identifier_counts. Shards for the same table append, so a table split
// into halves for distribution loads from both files.

package genedb

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// BuildResult reports what a build did.
type BuildResult struct {
	Skipped bool           `json:"skipped"`          // true when an existing database was kept
	Loaded  map[string]int `json:"loaded,omitempty"` // rows inserted per table
}

// Build creates the database at dbPath and loads the given CSV shards.
// If the database already exists and is non-empty the build is skipped,
// unless force is set, in which case the file is recreated from scratch.
func Build(dbPath string, shards []string, force bool) (BuildResult, error) {
	result := BuildResult{Loaded: map[string]int{}}

	if info, err := os.Stat(dbPath); err == nil && info.Size() > 0 {
		if !force {
			result.Skipped = true
			return result, nil
		}
		if err := os.Remove(dbPath); err != nil {
			return result, fmt.Errorf("removing existing database: %w", err)
		}
	}

	db, err := open(dbPath)
	if err != nil {
		return result, err
	}
	defer db.Close()

	if err := createSchema(db); err != nil {
		return result, err
	}

	for _, shard := range shards {
		table, rows, err := loadShard(db, shard)
		if err != nil {
			return result, fmt.Errorf("loading shard %s: %w", shard, err)
		}
		result.Loaded[table] += rows
	}

	return result, nil
}

// loadShard reads one CSV shard and appends its rows to the table its
// header names. The whole shard loads in one transaction.
func loadShard(db *sql.DB, path string) (string, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return "", 0, fmt.Errorf("reading header: %w", err)
	}

	table, cols, err := routeShard(header)
	if err != nil {
		return "", 0, err
	}
	// The reader now enforces the column count per record.
	r.FieldsPerRecord = len(cols)

	tx, err := db.Begin()
	if err != nil {
		return "", 0, err
	}
	defer tx.Rollback()

	names := make([]string, len(cols))
	marks := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
		marks[i] = "?"
	}
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(names, ", "), strings.Join(marks, ", ")))
	if err != nil {
		return "", 0, err
	}
	defer stmt.Close()

	count := 0
	for line := 2; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", 0, fmt.Errorf("line %d: %w", line, err)
		}

		args := make([]any, len(record))
		for i, v := range record {
			if cols[i].Type == "INTEGER" {
				n, convErr := strconv.Atoi(strings.TrimSpace(v))
				if convErr != nil {
					return "", 0, fmt.Errorf("line %d: column %s: %q is not an integer", line, cols[i].Name, v)
				}
				args[i] = n
				continue
			}
			args[i] = v
		}

		if _, err := stmt.Exec(args...); err != nil {
			return "", 0, fmt.Errorf("line %d: %w", line, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return "", 0, err
	}
	return table, count, nil
}

// routeShard matches a CSV header against the expected tables.
// Matching is case-insensitive and ignores surrounding whitespace, but the
// column order must be exact.
func routeShard(header []string) (string, []Column, error) {
	norm := make([]string, len(header))
	for i, h := range header {
		norm[i] = strings.ToLower(strings.TrimSpace(h))
	}

	for table, cols := range expectedTables {
		if len(norm) != len(cols) {
			continue
		}
		match := true
		for i, c := range cols {
			if norm[i] != c.Name {
				match = false
				break
			}
		}
		if match {
			return table, cols, nil
		}
	}
	return "", nil, fmt.Errorf("unrecognised shard header %v", header)
}

package genedb

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"oracheck/internal/enrichment"
)

// Check validates the database schema at dbPath and returns a report
// listing every issue found: missing tables, missing columns, and columns
// whose declared type differs from the expected one.
func Check(dbPath string) enrichment.Report {
	if _, err := os.Stat(dbPath); err != nil {
		return enrichment.Report{Errors: []string{fmt.Sprintf("Database not found: %s", dbPath)}}
	}

	db, err := open(dbPath)
	if err != nil {
		return enrichment.Report{Errors: []string{fmt.Sprintf("Database error: %v", err)}}
	}
	defer db.Close()

	var issues []string
	for _, table := range []string{"gene_summary", "identifier_counts"} {
		cols, err := tableColumns(db, table)
		if err != nil {
			return enrichment.Report{Errors: []string{fmt.Sprintf("Database error: %v", err)}}
		}
		if cols == nil {
			issues = append(issues, fmt.Sprintf("Missing table: %s", table))
			continue
		}
		for _, want := range expectedTables[table] {
			got, ok := cols[want.Name]
			if !ok {
				issues = append(issues, fmt.Sprintf("Table %s: missing column '%s'.", table, want.Name))
				continue
			}
			if !strings.EqualFold(got, want.Type) {
				issues = append(issues, fmt.Sprintf("Table %s: column '%s' has type %s, expected %s.",
					table, want.Name, got, want.Type))
			}
		}
	}

	return enrichment.Report{Valid: len(issues) == 0, Errors: issues}
}

// tableColumns returns the declared type per column of a table, keyed by
// lowercased column name, or nil when the table does not exist.
func tableColumns(db *sql.DB, table string) (map[string]string, error) {
	rows, err := db.Query(fmt.Sprintf(`PRAGMA table_info(%s)`, table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := map[string]string{}
	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &defaultVal, &pk); err != nil {
			return nil, err
		}
		cols[strings.ToLower(name)] = typ
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, nil
	}
	return cols, nil
}

package export

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Lumos-Labs-HQ/martgen/internal/dataset"
	"github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// WriteSQLite snapshots the dataset into a local SQLite file, one table
// per entity kind. Columns are left untyped; SQLite's affinity rules make
// that sufficient for a backup that is only read back by ad-hoc queries.
func WriteSQLite(ds *dataset.Dataset, path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open SQLite file: %w", err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin SQLite transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range ds.Tables() {
		if _, err := tx.Exec(createTableSQL(table)); err != nil {
			return fmt.Errorf("failed to create SQLite table %s: %w", table.Name, err)
		}

		insert := insertSQL(table)
		for i, row := range table.Rows {
			args := make([]any, 0, len(table.Columns))
			for _, col := range table.Columns {
				args = append(args, plainArg(row[col]))
			}
			if _, err := tx.Exec(insert, args...); err != nil {
				return fmt.Errorf("failed to insert %s row %d: %w", table.Name, i, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit SQLite snapshot: %w", err)
	}
	return nil
}

func createTableSQL(table dataset.Table) string {
	cols := make([]string, 0, len(table.Columns))
	for _, col := range table.Columns {
		cols = append(cols, pq.QuoteIdentifier(col))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		pq.QuoteIdentifier(table.Name), strings.Join(cols, ", "))
}

func insertSQL(table dataset.Table) string {
	cols := make([]string, 0, len(table.Columns))
	for _, col := range table.Columns {
		cols = append(cols, pq.QuoteIdentifier(col))
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(table.Columns)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		pq.QuoteIdentifier(table.Name), strings.Join(cols, ", "), placeholders)
}

// plainArg converts a row value into something database/sql can bind.
func plainArg(v any) any {
	if v == nil {
		return nil
	}
	switch v.(type) {
	case int, int64, string, bool:
		return v
	default:
		return plainValue(v)
	}
}

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Lumos-Labs-HQ/martgen/internal/dataset"
)

// SQLScript renders the whole dataset as one script of semicolon-terminated
// INSERT statements, one block per table in dependency order.
func SQLScript(tables []dataset.Table) string {
	var sb strings.Builder
	sb.WriteString("-- Generated Database Insert Statements\n\n")

	for _, table := range tables {
		if len(table.Rows) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("-- Insert data for %s\n", table.Name))
		for _, row := range table.Rows {
			values := make([]string, 0, len(table.Columns))
			for _, col := range table.Columns {
				values = append(values, sqlValue(row[col]))
			}
			sb.WriteString(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);\n",
				table.Name,
				strings.Join(table.Columns, ", "),
				strings.Join(values, ", ")))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// WriteSQLScript writes the flat SQL backup to path, creating parent
// directories as needed.
func WriteSQLScript(ds *dataset.Dataset, path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(SQLScript(ds.Tables())), 0644); err != nil {
		return fmt.Errorf("failed to write SQL script: %w", err)
	}
	return nil
}

package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Lumos-Labs-HQ/martgen/internal/dataset"
)

// WriteCSV writes one <table>.csv per entity kind into dir, header row
// first, columns in the table's declared order.
func WriteCSV(ds *dataset.Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create CSV directory: %w", err)
	}

	for _, table := range ds.Tables() {
		if len(table.Rows) == 0 {
			continue
		}

		path := filepath.Join(dir, table.Name+".csv")
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create CSV file for %s: %w", table.Name, err)
		}

		writer := csv.NewWriter(file)
		if err := writer.Write(table.Columns); err != nil {
			file.Close()
			return fmt.Errorf("failed to write CSV header for %s: %w", table.Name, err)
		}

		for _, row := range table.Rows {
			record := make([]string, 0, len(table.Columns))
			for _, col := range table.Columns {
				record = append(record, plainValue(row[col]))
			}
			if err := writer.Write(record); err != nil {
				file.Close()
				return fmt.Errorf("failed to write CSV row for %s: %w", table.Name, err)
			}
		}

		writer.Flush()
		if err := writer.Error(); err != nil {
			file.Close()
			return fmt.Errorf("failed to flush CSV for %s: %w", table.Name, err)
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("failed to close CSV file for %s: %w", table.Name, err)
		}
	}

	return nil
}

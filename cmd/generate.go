package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/Lumos-Labs-HQ/martgen/internal/config"
	"github.com/Lumos-Labs-HQ/martgen/internal/dataset"
	"github.com/Lumos-Labs-HQ/martgen/internal/export"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	genSQLPath    string
	genCSVDir     string
	genSQLitePath string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the dataset and write flat-file backups",
	Long: `
Generate every collection in dependency order and write the flat SQL
script. CSV and SQLite snapshots are written when requested.

Examples:
  martgen generate
  martgen generate --sql out/inserts.sql
  martgen generate --csv out/csv --sqlite out/mart.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		ds, err := generateDataset(cfg)
		if err != nil {
			return err
		}

		sqlPath := genSQLPath
		if sqlPath == "" {
			sqlPath = filepath.Join(cfg.ExportPath, "database_inserts.sql")
		}
		if err := export.WriteSQLScript(ds, sqlPath); err != nil {
			return err
		}
		color.Green("✅ SQL script written: %s", sqlPath)

		if genCSVDir != "" {
			if err := export.WriteCSV(ds, genCSVDir); err != nil {
				return err
			}
			color.Green("✅ CSV export written: %s", genCSVDir)
		}

		if genSQLitePath != "" {
			if err := export.WriteSQLite(ds, genSQLitePath); err != nil {
				return err
			}
			color.Green("✅ SQLite snapshot written: %s", genSQLitePath)
		}

		printSummary(ds)
		return nil
	},
}

func generateDataset(cfg *config.Config) (*dataset.Dataset, error) {
	color.Cyan("🎲 Generating data (seed %d)...", cfg.Seed)

	g := dataset.New(cfg.Seed)
	g.OrderYearStart = cfg.OrderYearStart
	g.OrderYearEnd = cfg.OrderYearEnd

	ds, err := g.Generate(cfg.Counts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate dataset: %w", err)
	}
	return ds, nil
}

func printSummary(ds *dataset.Dataset) {
	fmt.Println()
	color.Cyan("Generated:")
	for _, line := range ds.Summary() {
		fmt.Printf("  %d %s\n", line.Count, line.Label)
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&genSQLPath, "sql", "", "SQL script path (default <export_path>/database_inserts.sql)")
	generateCmd.Flags().StringVar(&genCSVDir, "csv", "", "Directory for per-table CSV files")
	generateCmd.Flags().StringVar(&genSQLitePath, "sqlite", "", "Path for a SQLite snapshot file")
}

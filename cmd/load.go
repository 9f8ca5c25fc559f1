package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/martgen/internal/config"
	"github.com/Lumos-Labs-HQ/martgen/internal/database"
	"github.com/Lumos-Labs-HQ/martgen/internal/dataset"
	"github.com/Lumos-Labs-HQ/martgen/internal/loader"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Generate the dataset and batch-load it into PostgreSQL",
	Long: `
Generate every collection, relax the schema's foreign keys, upsert each
table in dependency order with insert-or-ignore-on-conflict semantics, then
restore the foreign keys. Every row is tagged with a batch id and a load
timestamp; re-running against a partially loaded store skips existing rows.

The target tables must already exist. The batch_id and time_updated
tracking columns are added on the fly when missing.`,
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

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx := context.Background()
		db, err := database.Connect(ctx, dbURL)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.EnsureTrackingColumns(ctx, dataset.DependencyOrder); err != nil {
			return err
		}

		batchID := loader.BatchID(time.Now())
		color.Cyan("📦 Loading batch %s...", batchID)

		l := loader.New(db, nil)
		results, runErr := l.Run(ctx, ds.Tables(), batchID)

		fmt.Println()
		for _, r := range results {
			if r.Unmapped {
				color.Yellow("  ⚠️  %s: no primary key mapping, skipped", r.Table)
				continue
			}
			if r.Failed > 0 {
				color.Yellow("  %s: %d inserted, %d skipped, %d failed", r.Table, r.Inserted, r.Skipped, r.Failed)
			} else {
				color.Green("  %s: %d inserted, %d skipped, %d failed", r.Table, r.Inserted, r.Skipped, r.Failed)
			}
		}

		printSummary(ds)

		if runErr != nil {
			color.Red("\n❌ Batch finished degraded: %v", runErr)
			return runErr
		}

		color.Green("\n✅ Batch %s loaded", batchID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

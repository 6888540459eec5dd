// ABOUTME: CLI command for migrating legacy Badger KV data to SQLite.
// ABOUTME: One-time migration tool for users upgrading from older versions.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sporhocam/sporhocam/internal/kvstore"
	"github.com/sporhocam/sporhocam/internal/storage"
)

var (
	migrateFrom   string
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate legacy Badger data to SQLite",
	Long: `Migrate measurements from the legacy Badger KV storage to SQLite.

This is a one-time migration tool for users upgrading from older versions
that stored measurements in a Badger key-value directory.

IMPORTANT:

  - The legacy Badger directory must exist and be non-empty
  - Existing SQLite data will NOT be overwritten (duplicates cause errors)
  - Run with --dry-run first to see what would be migrated

USAGE:

  sporhocam migrate --dry-run   # Preview what would be migrated
  sporhocam migrate             # Perform the migration

AFTER MIGRATION:

  Once migration is complete, you can delete the old Badger directory:
    rm -rf ~/.local/share/sporhocam/kv/

  The new data is stored at:
    ~/.local/share/sporhocam/sporhocam.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := migrateFrom
		if dir == "" {
			dir = filepath.Join(cfg.GetDataDir(), "kv")
		}

		nonEmpty, err := storage.IsDirNonEmpty(dir)
		if err != nil {
			return fmt.Errorf("failed to check legacy data directory: %w", err)
		}
		if !nonEmpty {
			fmt.Printf("No legacy data found at %s. Nothing to migrate.\n", dir)
			return nil
		}

		kv, err := kvstore.Open(dir)
		if err != nil {
			return fmt.Errorf("failed to open legacy store: %w", err)
		}
		defer kv.Close()

		if migrateDryRun {
			color.Yellow("Dry run mode - no changes will be made")
			measurements, err := kv.ListMeasurements()
			if err != nil {
				return fmt.Errorf("failed to read legacy store: %w", err)
			}
			fmt.Printf("Would migrate %d measurements from %s\n", len(measurements), dir)
			return nil
		}

		summary, err := storage.MigrateData(kv, repo)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated %d measurements", summary.Measurements)
		fmt.Printf("\nYou can now delete the old data:\n  rm -rf %s\n", dir)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "", "legacy Badger directory (default: <data-dir>/kv)")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}

// ABOUTME: CLI command running the reference-data seeding pipeline.
// ABOUTME: Prints per-stage progress and a per-category summary.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sporhocam/sporhocam/internal/models"
	"github.com/sporhocam/sporhocam/internal/seed"
	"github.com/sporhocam/sporhocam/internal/seed/seeddata"
)

var (
	seedForce     bool
	seedRepair    bool
	seedBatchSize int
	seedCurated   bool
	seedVerbose   bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the bundled reference data",
	Long: `Load the embedded reference data into the local database.

The pipeline seeds foods, exercises, CrossFit movements, benchmark WODs,
cardio templates, lift programs, and workout routines, then runs name
normalization and builds food search aliases.

Seeding is idempotent: categories that are already fully seeded are
skipped. An interrupted category is cleared and re-seeded on the next run.

MODES:

  (default)    Skip entirely when every category is already seeded
  --repair     Re-check each category and fill in anything missing
  --force      Clear and re-seed every category
  --curated    Import a quota-limited exercise subset instead of all rows

EXAMPLES:

  sporhocam seed                 # First-time setup
  sporhocam seed --repair        # Fix a partially seeded database
  sporhocam seed --force         # Start over from the bundle`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logrus.New()
		log.SetOutput(os.Stderr)
		if seedVerbose {
			log.SetLevel(logrus.DebugLevel)
		} else {
			log.SetLevel(logrus.WarnLevel)
		}

		if !seedForce && !seedRepair {
			done, err := fullySeeded()
			if err != nil {
				return err
			}
			if done {
				fmt.Println("Reference data already seeded. Use --repair or --force to re-run.")
				return nil
			}
		}

		opts := seed.Options{
			BatchSize: seedBatchSize,
			Curated:   seedCurated,
			Force:     seedForce,
		}
		if !cmd.Flags().Changed("batch-size") && cfg.Seed.BatchSize > 0 {
			opts.BatchSize = cfg.Seed.BatchSize
		}
		if !cmd.Flags().Changed("curated") {
			opts.Curated = cfg.Seed.Curated
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		go func() {
			<-sigChan
			cancel()
		}()

		faint := color.New(color.Faint)
		progress := func(p seed.Progress) {
			if p.Stage == seed.StageError {
				color.Red("  %s: %s", p.Title, p.Message)
				return
			}
			faint.Printf("  [%3.0f%%] %s\n", p.Fraction*100, p.Title)
		}

		src := seed.NewSource(seeddata.FS(), log)
		seeder := seed.New(repo, src, opts, log, progress)

		summary, err := seeder.Run(ctx)
		if err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}

		fmt.Println()
		for _, r := range summary.Results {
			switch {
			case r.Err != nil:
				color.Red("✗ %-20s %v", r.Category, r.Err)
			case r.Skipped:
				faint.Printf("- %-20s already seeded\n", r.Category)
			default:
				fmt.Printf("%s %-20s %d records\n", color.GreenString("✓"), r.Category, r.Inserted)
			}
		}
		if summary.Normalized > 0 {
			faint.Printf("  normalized %d names\n", summary.Normalized)
		}
		if summary.Aliases > 0 {
			faint.Printf("  created %d food aliases\n", summary.Aliases)
		}

		if summary.FallbackUsed {
			color.Yellow("\n⚠ Critical data failed to load; a minimal exercise set was installed.")
			color.Yellow("  Run 'sporhocam seed --repair' to retry the full import.")
		} else {
			color.Green("\n✓ Seeding complete")
		}

		return nil
	},
}

// fullySeeded reports whether every category has a completed ledger entry
// at the current data version.
func fullySeeded() (bool, error) {
	for _, cat := range models.AllDataCategories {
		entry, err := repo.SeedLedger(cat)
		if err != nil {
			return false, fmt.Errorf("failed to read seed ledger: %w", err)
		}
		if entry == nil || !entry.Completed || entry.Version < seed.DataVersion {
			return false, nil
		}
	}
	return true, nil
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "clear and re-seed every category")
	seedCmd.Flags().BoolVar(&seedRepair, "repair", false, "re-check each category and fill in missing data")
	seedCmd.Flags().IntVar(&seedBatchSize, "batch-size", seed.DefaultBatchSize, "records per insert batch")
	seedCmd.Flags().BoolVar(&seedCurated, "curated", false, "import a curated exercise subset")
	seedCmd.Flags().BoolVarP(&seedVerbose, "verbose", "v", false, "verbose logging")
	rootCmd.AddCommand(seedCmd)
}

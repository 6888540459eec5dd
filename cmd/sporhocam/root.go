// ABOUTME: Root Cobra command for sporhocam CLI.
// ABOUTME: Opens config and storage via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sporhocam/sporhocam/internal/config"
	"github.com/sporhocam/sporhocam/internal/storage"
)

var (
	cfg  *config.Config
	repo storage.Repository
)

var rootCmd = &cobra.Command{
	Use:   "sporhocam",
	Short: "Fitness and nutrition tracker",
	Long: `Sporhocam is a CLI tool for tracking body measurements, nutrition,
and training against a bundled exercise/food reference database.

WHAT IT TRACKS:

  Body        weight, body_fat, waist, neck, hip, chest, bicep, thigh
  Nutrition   calories, protein, carbs, fat, water
  Activity    steps

QUICK START:

  $ sporhocam seed                       # Load the bundled reference data
  $ sporhocam add weight 82.5            # Log your weight
  $ sporhocam add waist 88 --notes "am"  # Log with notes
  $ sporhocam list                       # See recent measurements
  $ sporhocam trend weight --days 60     # Trend analysis with prediction

REFERENCE DATA:

  The seed command loads foods, exercises, CrossFit movements, benchmark
  WODs, cardio templates, lift programs, and routines from the embedded
  data bundle. Seeding is idempotent; use --force to re-seed.

  $ sporhocam exercises search squat     # Search seeded exercises
  $ sporhocam foods search yogurt        # Search foods (TR/EN aliases)

CALCULATORS:

  $ sporhocam profile set --sex male --age 30 --height 180 --activity moderate
  $ sporhocam bmr                        # Mifflin-St Jeor basal rate
  $ sporhocam tdee                       # Daily energy expenditure
  $ sporhocam bodyfat                    # US Navy body-fat estimate

MCP INTEGRATION:

  Run 'sporhocam mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "sporhocam": { "command": "sporhocam", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Measurements and reference data are stored in SQLite at
  ~/.local/share/sporhocam/sporhocam.db. Configuration lives at
  ~/.config/sporhocam/config.json, with SPORHOCAM_* env overrides.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

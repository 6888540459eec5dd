// ABOUTME: CLI command for adding body and nutrition measurements.
// ABOUTME: Validates the measurement type and supports backdated entries.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sporhocam/sporhocam/internal/models"
)

var (
	addAt    string
	addNotes string
)

var addCmd = &cobra.Command{
	Use:     "add <type> <value>",
	Aliases: []string{"a"},
	Short:   "Add a measurement",
	Long: `Add a measurement to your log.

Examples:
  sporhocam add weight 82.5
  sporhocam add waist 88 --at "2025-06-14 07:00"
  sporhocam add protein 140 --notes "training day"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		measurementType := args[0]

		if !models.IsValidMeasurementType(measurementType) {
			return fmt.Errorf("unknown measurement type: %s\nValid types: weight, body_fat, waist, neck, hip, chest, bicep, thigh, calories, protein, carbs, fat, water, steps", measurementType)
		}

		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}

		m := models.NewMeasurement(models.MeasurementType(measurementType), value)

		if addAt != "" {
			t, err := parseTime(addAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", addAt)
			}
			m.WithRecordedAt(t)
		}

		if addNotes != "" {
			m.WithNotes(addNotes)
		}

		if err := repo.CreateMeasurement(m); err != nil {
			return fmt.Errorf("failed to create measurement: %w", err)
		}

		color.Green("✓ Added %s", measurementType)
		fmt.Printf("  %s %.2f %s\n",
			color.New(color.Faint).Sprint(m.ID.String()[:8]),
			m.Value, m.Unit)

		return nil
	},
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	addCmd.Flags().StringVar(&addAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "notes for the measurement")
	rootCmd.AddCommand(addCmd)
}

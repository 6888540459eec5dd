// ABOUTME: CLI command for listing measurements.
// ABOUTME: Supports filtering by type and limiting results.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sporhocam/sporhocam/internal/models"
)

var (
	listType  string
	listLimit int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List measurements",
	Long: `List recent measurements from your log.

OUTPUT FORMAT:

  Each line shows: ID  TIMESTAMP  TYPE  VALUE  UNIT  (NOTES)

  The ID is an 8-character prefix you can use with delete commands.

FILTERING:

  Use --type to filter by measurement type:
    weight, body_fat, waist, neck, hip, chest, bicep, thigh,
    calories, protein, carbs, fat, water, steps

EXAMPLES:

  sporhocam list                   # Show last 20 measurements (all types)
  sporhocam list --type weight     # Show only weight entries
  sporhocam list -t waist -n 50    # Show last 50 waist entries`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var measurementType *models.MeasurementType
		if listType != "" {
			if !models.IsValidMeasurementType(listType) {
				return fmt.Errorf("unknown measurement type: %s", listType)
			}
			mt := models.MeasurementType(listType)
			measurementType = &mt
		}

		measurements, err := repo.ListMeasurements(measurementType, listLimit)
		if err != nil {
			return fmt.Errorf("failed to list measurements: %w", err)
		}

		if len(measurements) == 0 {
			fmt.Println("No measurements found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range measurements {
			notes := ""
			if m.Notes != nil && *m.Notes != "" {
				notes = faint.Sprintf(" (%s)", truncate(*m.Notes, 30))
			}
			fmt.Printf("%s %s %s %.2f %s%s\n",
				faint.Sprint(m.ID.String()[:8]),
				faint.Sprint(m.RecordedAt.Format("2006-01-02 15:04")),
				padRight(string(m.Type), 12),
				m.Value,
				m.Unit,
				notes)
		}

		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "filter by measurement type")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	rootCmd.AddCommand(listCmd)
}

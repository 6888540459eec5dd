// ABOUTME: CLI command for deleting measurements.
// ABOUTME: Supports deletion by full ID or ID prefix.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a measurement",
	Long: `Delete a measurement by its ID or ID prefix.

You can use either the full UUID or just the first few characters (prefix).
The ID prefix is shown in the first column of 'sporhocam list' output.

EXAMPLES:

  sporhocam delete abc12345                 # Delete by 8-char prefix
  sporhocam delete abc12345-1234-1234-...   # Delete by full UUID
  sporhocam rm abc1                         # Short prefix (if unique)

CAUTION:

  This permanently deletes the measurement. There is no undo.
  If the prefix matches multiple measurements, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idOrPrefix := args[0]

		// First, try to get the measurement to show what we're deleting
		m, err := repo.GetMeasurement(idOrPrefix)
		if err != nil {
			return fmt.Errorf("measurement not found: %s", idOrPrefix)
		}

		if err := repo.DeleteMeasurement(idOrPrefix); err != nil {
			return fmt.Errorf("failed to delete measurement: %w", err)
		}

		color.Yellow("✗ Deleted %s", m.Type)
		fmt.Printf("  %s %.2f %s\n",
			color.New(color.Faint).Sprint(m.ID.String()[:8]),
			m.Value, m.Unit)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

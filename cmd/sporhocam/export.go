// ABOUTME: CLI commands for exporting and importing tracker data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sporhocam/sporhocam/internal/models"
)

var (
	exportOutput string
	exportType   string
	exportSince  string
)

// exporter is the format-rendering surface of the SQLite store.
type exporter interface {
	ExportJSON() ([]byte, error)
	ExportYAML() ([]byte, error)
	ExportMarkdown(t *models.MeasurementType, since *time.Time) (string, error)
	ImportJSON(data []byte) error
}

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export tracker data",
	Long: `Export tracker data in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown tables (for documentation/sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --type, -t     Filter by measurement type (markdown only)
  --since        Only include data since this date (YYYY-MM-DD)

EXAMPLES:

  sporhocam export json                        # Export all data as JSON
  sporhocam export json -o backup.json         # Save to file
  sporhocam export yaml                        # Export as YAML
  sporhocam export markdown --type weight      # Export weight as Markdown
  sporhocam export markdown --since 2025-01-01 # Export data from 2025 onward`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		exp, ok := repo.(exporter)
		if !ok {
			return fmt.Errorf("storage backend does not support export")
		}

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = exp.ExportJSON()
		case "yaml":
			data, err = exp.ExportYAML()
		case "markdown":
			var measurementType *models.MeasurementType
			if exportType != "" {
				mt := models.MeasurementType(exportType)
				measurementType = &mt
			}
			var since *time.Time
			if exportSince != "" {
				t, err := time.Parse("2006-01-02", exportSince)
				if err != nil {
					return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
				}
				since = &t
			}
			md, err := exp.ExportMarkdown(measurementType, since)
			if err != nil {
				return err
			}
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import tracker data from JSON",
	Long: `Import tracker data from a JSON backup file.

This imports measurements and reference data from a previously exported
JSON file. Duplicate entries (same ID) will cause an error.

EXAMPLES:

  sporhocam import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		exp, ok := repo.(exporter)
		if !ok {
			return fmt.Errorf("storage backend does not support import")
		}

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := exp.ImportJSON(data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportType, "type", "t", "", "filter by measurement type (markdown only)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include data since date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

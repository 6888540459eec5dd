// ABOUTME: CLI command for trend analysis over stored measurements.
// ABOUTME: Prints direction, fit quality, and a next-value prediction.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sporhocam/sporhocam/internal/models"
	"github.com/sporhocam/sporhocam/internal/stats"
)

var trendDays int

var trendCmd = &cobra.Command{
	Use:   "trend <type>",
	Short: "Analyze the trend of a measurement",
	Long: `Analyze the trend of a measurement type over a time window.

For three or more data points a least-squares line is fit over the series;
the direction (increasing, decreasing, stable) is classified from the slope
and the fit quality (R²). With one or two points a simple percent-change
band is used instead.

EXAMPLES:

  sporhocam trend weight             # Last 30 days of weight
  sporhocam trend waist --days 90    # Last 90 days of waist`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidMeasurementType(args[0]) {
			return fmt.Errorf("unknown measurement type: %s", args[0])
		}
		measurementType := models.MeasurementType(args[0])

		since := time.Now().AddDate(0, 0, -trendDays)
		measurements, err := repo.MeasurementSeries(measurementType, since)
		if err != nil {
			return fmt.Errorf("failed to load measurements: %w", err)
		}

		points := make([]stats.DataPoint, len(measurements))
		for i, m := range measurements {
			points[i] = stats.DataPoint{Date: m.RecordedAt, Value: m.Value}
		}

		trend := stats.Analyze(points)
		unit := models.MeasurementUnits[measurementType]
		faint := color.New(color.Faint)

		if trend.Count == 0 {
			fmt.Printf("No %s data in the last %d days.\n", measurementType, trendDays)
			return nil
		}

		switch trend.Direction {
		case stats.Increasing:
			color.Red("↑ %s is increasing", measurementType)
		case stats.Decreasing:
			color.Green("↓ %s is decreasing", measurementType)
		default:
			fmt.Printf("→ %s is stable\n", measurementType)
		}

		fmt.Printf("  mean %.2f %s, median %.2f %s over %d points\n",
			trend.Mean, unit, trend.Median, unit, trend.Count)
		if trend.StdDev > 0 {
			faint.Printf("  stddev %.2f, volatility %.1f%%\n", trend.StdDev, trend.Volatility)
		}
		if trend.Count >= 3 {
			faint.Printf("  slope %+.3f %s/point, R² %.2f (%s fit)\n",
				trend.Slope, unit, trend.RSquared, trend.FitQuality())
		} else {
			faint.Printf("  change %+.1f%%\n", trend.PercentChange)
		}
		if trend.Prediction != nil {
			fmt.Printf("  next value estimate: %.2f %s\n", *trend.Prediction, unit)
		}

		return nil
	},
}

func init() {
	trendCmd.Flags().IntVar(&trendDays, "days", 30, "analysis window in days")
	rootCmd.AddCommand(trendCmd)
}

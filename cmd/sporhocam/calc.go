// ABOUTME: CLI calculator commands: BMR, TDEE, body fat, BMI.
// ABOUTME: Combines the stored profile with the latest logged measurements.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sporhocam/sporhocam/internal/health"
	"github.com/sporhocam/sporhocam/internal/models"
)

var bmrCmd = &cobra.Command{
	Use:   "bmr",
	Short: "Basal metabolic rate (Mifflin-St Jeor)",
	Long: `Estimate your basal metabolic rate using the Mifflin-St Jeor equation.

Requires sex, age, and height in your profile plus at least one logged
weight measurement.

  sporhocam profile set --sex male --age 30 --height 180
  sporhocam add weight 82.5
  sporhocam bmr`,
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := latestValue(models.MeasurementWeight)
		if err != nil {
			return err
		}

		bmr, err := health.BMR(cfg.Profile.Sex, weight, cfg.Profile.HeightCm, cfg.Profile.Age)
		if err != nil {
			return profileHint(err)
		}

		fmt.Printf("BMR: %.0f kcal/day\n", bmr)
		return nil
	},
}

var tdeeCmd = &cobra.Command{
	Use:   "tdee",
	Short: "Total daily energy expenditure",
	Long: `Estimate your total daily energy expenditure: BMR scaled by the
activity level in your profile (sedentary, light, moderate, active,
extra_active).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := latestValue(models.MeasurementWeight)
		if err != nil {
			return err
		}

		bmr, err := health.BMR(cfg.Profile.Sex, weight, cfg.Profile.HeightCm, cfg.Profile.Age)
		if err != nil {
			return profileHint(err)
		}
		tdee, err := health.TDEE(bmr, cfg.Profile.ActivityLevel)
		if err != nil {
			return profileHint(err)
		}

		fmt.Printf("BMR:  %.0f kcal/day\n", bmr)
		fmt.Printf("TDEE: %.0f kcal/day (%s)\n", tdee, cfg.Profile.ActivityLevel)
		return nil
	},
}

var bodyfatCmd = &cobra.Command{
	Use:   "bodyfat",
	Short: "Body fat estimate (US Navy method)",
	Long: `Estimate body fat percentage from circumference measurements using
the US Navy method.

Requires sex and height in your profile plus logged neck and waist
measurements; hip is also required for the female formula.

  sporhocam add neck 38
  sporhocam add waist 88
  sporhocam bodyfat`,
	RunE: func(cmd *cobra.Command, args []string) error {
		neck, err := latestValue(models.MeasurementNeck)
		if err != nil {
			return err
		}
		waist, err := latestValue(models.MeasurementWaist)
		if err != nil {
			return err
		}

		var hip float64
		if cfg.Profile.Sex == models.SexFemale {
			hip, err = latestValue(models.MeasurementHip)
			if err != nil {
				return err
			}
		}

		pct, err := health.BodyFat(cfg.Profile.Sex, cfg.Profile.HeightCm, neck, waist, hip)
		if err != nil {
			return profileHint(err)
		}

		fmt.Printf("Body fat: %.1f%%\n", pct)
		return nil
	},
}

var bmiCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Body mass index",
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := latestValue(models.MeasurementWeight)
		if err != nil {
			return err
		}

		bmi, err := health.BMI(weight, cfg.Profile.HeightCm)
		if err != nil {
			return profileHint(err)
		}

		fmt.Printf("BMI: %.1f (%s)\n", bmi, health.BMIClass(bmi))
		return nil
	},
}

// latestValue returns the most recent logged value of a measurement type.
func latestValue(t models.MeasurementType) (float64, error) {
	m, err := repo.LatestMeasurement(t)
	if err != nil {
		return 0, fmt.Errorf("no %s measurement logged yet; add one with 'sporhocam add %s <value>'", t, t)
	}
	return m.Value, nil
}

func profileHint(err error) error {
	color.Yellow("Check your profile with 'sporhocam profile show'.")
	return err
}

func init() {
	rootCmd.AddCommand(bmrCmd)
	rootCmd.AddCommand(tdeeCmd)
	rootCmd.AddCommand(bodyfatCmd)
	rootCmd.AddCommand(bmiCmd)
}

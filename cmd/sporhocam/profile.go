// ABOUTME: CLI commands for viewing and updating the user profile.
// ABOUTME: Profile attributes feed the BMR/TDEE/body-fat calculators.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sporhocam/sporhocam/internal/models"
)

var (
	profileSex      string
	profileAge      int
	profileHeight   float64
	profileActivity string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View or update your profile",
	Long: `View or update the profile attributes used by the calculators.

The profile stores sex, age, height, and activity level. Current weight is
taken from the measurement log, not the profile.`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := cfg.Profile
		faint := color.New(color.Faint)

		printField := func(name, value string) {
			if value == "" {
				fmt.Printf("  %s %s\n", padRight(name, 10), faint.Sprint("(not set)"))
				return
			}
			fmt.Printf("  %s %s\n", padRight(name, 10), value)
		}

		age, height := "", ""
		if p.Age != 0 {
			age = fmt.Sprintf("%d", p.Age)
		}
		if p.HeightCm != 0 {
			height = fmt.Sprintf("%.1f cm", p.HeightCm)
		}

		printField("sex", string(p.Sex))
		printField("age", age)
		printField("height", height)
		printField("activity", string(p.ActivityLevel))
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile attributes",
	Long: `Update one or more profile attributes.

EXAMPLES:

  sporhocam profile set --sex male --age 30
  sporhocam profile set --height 180 --activity moderate

Activity levels: sedentary, light, moderate, active, extra_active`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileSex != "" {
			sex, ok := models.ParseSex(profileSex)
			if !ok {
				return fmt.Errorf("unknown sex: %s (use male or female)", profileSex)
			}
			cfg.Profile.Sex = sex
		}
		if cmd.Flags().Changed("age") {
			cfg.Profile.Age = profileAge
		}
		if cmd.Flags().Changed("height") {
			cfg.Profile.HeightCm = profileHeight
		}
		if profileActivity != "" {
			level, ok := models.ParseActivityLevel(profileActivity)
			if !ok {
				return fmt.Errorf("unknown activity level: %s (use sedentary, light, moderate, active, or extra_active)", profileActivity)
			}
			cfg.Profile.ActivityLevel = level
		}

		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Profile updated")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileSex, "sex", "", "male or female")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "age in years")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "height in cm")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "activity level")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}

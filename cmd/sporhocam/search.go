// ABOUTME: CLI commands for searching seeded exercises and foods.
// ABOUTME: Food search matches Turkish/English names and their aliases.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var searchLimit int

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "Work with the seeded exercise database",
}

var exercisesSearchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search exercises by name",
	Long: `Search the seeded exercise database by English or Turkish name.

EXAMPLES:

  sporhocam exercises search squat
  sporhocam exercises search "bench press" -n 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := repo.SearchExercises(args[0], searchLimit)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if len(exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range exercises {
			compound := ""
			if e.Compound {
				compound = faint.Sprint(" compound")
			}
			fmt.Printf("%s %s %s%s\n",
				padRight(e.NameEN, 28),
				faint.Sprint(padRight(string(e.Category), 10)),
				faint.Sprint(string(e.Equipment)),
				compound)
		}
		return nil
	},
}

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "Work with the seeded food database",
}

var foodsSearchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search foods by name",
	Long: `Search the seeded food database by English or Turkish name.

Turkish names match with or without diacritics: "sut" finds "Süt".

EXAMPLES:

  sporhocam foods search yogurt
  sporhocam foods search tavuk -n 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := repo.SearchFoods(args[0], searchLimit)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if len(foods) == 0 {
			fmt.Println("No foods found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, f := range foods {
			fmt.Printf("%s %s\n",
				padRight(f.NameEN, 28),
				faint.Sprintf("%.0f kcal  P %.1f  C %.1f  F %.1f (per 100g)",
					f.Calories, f.Protein, f.Carbs, f.Fat))
		}
		return nil
	},
}

func init() {
	exercisesSearchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "max number of results")
	foodsSearchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "max number of results")
	exercisesCmd.AddCommand(exercisesSearchCmd)
	foodsCmd.AddCommand(foodsSearchCmd)
	rootCmd.AddCommand(exercisesCmd)
	rootCmd.AddCommand(foodsCmd)
}

// ABOUTME: DataCategory enum for the seeded reference-data categories.
// ABOUTME: Each category is seeded independently with its own ledger entry.
package models

// DataCategory identifies one independently seeded reference-data category.
type DataCategory string

const (
	DataFoods      DataCategory = "foods"
	DataExercises  DataCategory = "exercises"
	DataMovements  DataCategory = "crossfit_movements"
	DataBenchmarks DataCategory = "benchmark_wods"
	DataCardio     DataCategory = "cardio_workouts"
	DataPrograms   DataCategory = "lift_programs"
	DataRoutines   DataCategory = "routine_templates"
)

// AllDataCategories lists categories in their seeding order. Foods and
// exercises come first; nutrition and lift features depend on them.
var AllDataCategories = []DataCategory{
	DataFoods, DataExercises, DataMovements, DataBenchmarks,
	DataCardio, DataPrograms, DataRoutines,
}

// Critical reports whether a failure in this category aborts the whole
// seeding pipeline instead of being skipped.
func (c DataCategory) Critical() bool {
	return c == DataFoods || c == DataExercises
}

// ABOUTME: Seeding progress states with titles and completion fractions.
// ABOUTME: Progress is delivered through an injected callback, not a global.
package seed

// Stage identifies one step of the seeding pipeline.
type Stage string

const (
	StageStarting      Stage = "starting"
	StageFoods         Stage = "foods"
	StageExercises     Stage = "exercises"
	StageMovements     Stage = "crossfit_movements"
	StageBenchmarks    Stage = "benchmark_wods"
	StageCardio        Stage = "cardio_workouts"
	StagePrograms      Stage = "lift_programs"
	StageRoutines      Stage = "routine_templates"
	StageNormalization Stage = "normalization"
	StageFoodAliases   Stage = "food_aliases"
	StageCompleted     Stage = "completed"
	StageError         Stage = "error"
)

// stageTitles are the human-readable progress labels shown to the user.
var stageTitles = map[Stage]string{
	StageStarting:      "Preparing database",
	StageFoods:         "Loading foods",
	StageExercises:     "Loading exercises",
	StageMovements:     "Loading CrossFit movements",
	StageBenchmarks:    "Loading benchmark workouts",
	StageCardio:        "Loading cardio templates",
	StagePrograms:      "Loading lift programs",
	StageRoutines:      "Loading routine templates",
	StageNormalization: "Normalizing names",
	StageFoodAliases:   "Indexing food aliases",
	StageCompleted:     "Done",
	StageError:         "Seeding failed",
}

// stageFractions give each stage a monotone non-decreasing completion
// fraction in [0,1], reported after the stage finishes.
var stageFractions = map[Stage]float64{
	StageStarting:      0.0,
	StageFoods:         0.15,
	StageExercises:     0.35,
	StageMovements:     0.45,
	StageBenchmarks:    0.55,
	StageCardio:        0.65,
	StagePrograms:      0.80,
	StageRoutines:      0.90,
	StageNormalization: 0.95,
	StageFoodAliases:   0.98,
	StageCompleted:     1.0,
}

// Title returns the display label for a stage.
func (s Stage) Title() string {
	return stageTitles[s]
}

// Fraction returns the completion fraction reported for a stage.
func (s Stage) Fraction() float64 {
	return stageFractions[s]
}

// Progress is one pipeline progress event.
type Progress struct {
	Stage    Stage
	Title    string
	Fraction float64
	Message  string // error detail when Stage is StageError
}

// ProgressFunc receives progress events from the seeding pipeline.
type ProgressFunc func(p Progress)

// NopProgress discards progress events.
func NopProgress(Progress) {}

// ABOUTME: Lift program and routine template models seeded from bundled JSON.
// ABOUTME: Exercise references carry both a resolved ID and the source name.
package models

import (
	"time"

	"github.com/google/uuid"
)

// LiftProgram is a multi-week strength program (e.g. a 5x5 progression).
type LiftProgram struct {
	ID          uuid.UUID
	NameEN      string
	NameTR      string
	Level       string
	DaysPerWeek int
	Workouts    []LiftWorkout
	CreatedAt   time.Time
}

// LiftWorkout is one training day within a program.
type LiftWorkout struct {
	ID        uuid.UUID
	ProgramID uuid.UUID
	Name      string
	Day       int
	Exercises []LiftExercise
}

// LiftExercise is one prescribed exercise within a program workout.
// ExerciseID is resolved from the textual name at seed time; when
// resolution fails a fresh UUID is generated and the name is kept as
// the only link back to the source data.
type LiftExercise struct {
	ID         uuid.UUID
	WorkoutID  uuid.UUID
	ExerciseID uuid.UUID
	Name       string
	Sets       int
	Reps       int
	Percentage float64 // of working max, 0 when unspecified
	Position   int
}

// RoutineTemplate is a reusable single-session routine.
type RoutineTemplate struct {
	ID        uuid.UUID
	NameEN    string
	NameTR    string
	Focus     string
	Exercises []RoutineExercise
	CreatedAt time.Time
}

// RoutineExercise is one exercise slot in a routine template.
type RoutineExercise struct {
	ID          uuid.UUID
	RoutineID   uuid.UUID
	ExerciseID  uuid.UUID
	Name        string
	Sets        int
	Reps        int
	RestSeconds int
	Position    int
}

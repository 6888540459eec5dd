// ABOUTME: JSON-driven seeders for lift programs and routine templates.
// ABOUTME: Exercise names resolve through the memoized resolver; misses get fresh IDs.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sporhocam/sporhocam/internal/models"
)

const (
	programsDir = "programs"
	routinesDir = "routines"
)

// localizedName is the bilingual name object shared by the JSON documents.
type localizedName struct {
	EN string `json:"en" validate:"required"`
	TR string `json:"tr" validate:"required"`
}

type programDoc struct {
	Name        localizedName `json:"name" validate:"required"`
	Level       string        `json:"level"`
	DaysPerWeek int           `json:"days_per_week" validate:"min=1,max=7"`
	Workouts    []struct {
		Name      string `json:"name" validate:"required"`
		Day       int    `json:"day" validate:"min=1"`
		Exercises []struct {
			Name       string  `json:"name" validate:"required"`
			Sets       int     `json:"sets" validate:"min=1"`
			Reps       int     `json:"reps" validate:"min=1"`
			Percentage float64 `json:"percentage"`
		} `json:"exercises" validate:"required,dive"`
	} `json:"workouts" validate:"required,dive"`
}

type routineDoc struct {
	Name      localizedName `json:"name" validate:"required"`
	Focus     string        `json:"focus"`
	Exercises []struct {
		Name        string `json:"name" validate:"required"`
		Sets        int    `json:"sets" validate:"min=1"`
		Reps        int    `json:"reps" validate:"min=1"`
		RestSeconds int    `json:"rest_seconds"`
	} `json:"exercises" validate:"required,dive"`
}

func (s *Seeder) seedPrograms(ctx context.Context) (int, error) {
	names, err := s.src.ListJSON(programsDir)
	if err != nil {
		return 0, err
	}
	if len(names) == 0 {
		return 0, fmt.Errorf("%w: %s has no documents", ErrEmptyFile, programsDir)
	}

	inserted := 0
	batch := make([]*models.LiftProgram, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return inserted, err
		}

		var doc programDoc
		if err := s.src.DecodeJSON(name, &doc); err != nil {
			s.log.WithError(err).WithField("file", name).Warn("skipping invalid program")
			continue
		}

		program := &models.LiftProgram{
			ID:          uuid.New(),
			NameEN:      doc.Name.EN,
			NameTR:      doc.Name.TR,
			Level:       doc.Level,
			DaysPerWeek: doc.DaysPerWeek,
			CreatedAt:   time.Now(),
		}
		for _, w := range doc.Workouts {
			workout := models.LiftWorkout{
				ID:        uuid.New(),
				ProgramID: program.ID,
				Name:      w.Name,
				Day:       w.Day,
			}
			for i, e := range w.Exercises {
				workout.Exercises = append(workout.Exercises, models.LiftExercise{
					ID:         uuid.New(),
					WorkoutID:  workout.ID,
					ExerciseID: s.resolveExercise(e.Name),
					Name:       e.Name,
					Sets:       e.Sets,
					Reps:       e.Reps,
					Percentage: e.Percentage,
					Position:   i,
				})
			}
			program.Workouts = append(program.Workouts, workout)
		}
		batch = append(batch, program)
	}

	if err := s.repo.CreatePrograms(batch); err != nil {
		return inserted, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	inserted += len(batch)
	return inserted, nil
}

func (s *Seeder) seedRoutines(ctx context.Context) (int, error) {
	names, err := s.src.ListJSON(routinesDir)
	if err != nil {
		return 0, err
	}
	if len(names) == 0 {
		return 0, fmt.Errorf("%w: %s has no documents", ErrEmptyFile, routinesDir)
	}

	inserted := 0
	batch := make([]*models.RoutineTemplate, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return inserted, err
		}

		var doc routineDoc
		if err := s.src.DecodeJSON(name, &doc); err != nil {
			s.log.WithError(err).WithField("file", name).Warn("skipping invalid routine")
			continue
		}

		routine := &models.RoutineTemplate{
			ID:        uuid.New(),
			NameEN:    doc.Name.EN,
			NameTR:    doc.Name.TR,
			Focus:     doc.Focus,
			CreatedAt: time.Now(),
		}
		for i, e := range doc.Exercises {
			routine.Exercises = append(routine.Exercises, models.RoutineExercise{
				ID:          uuid.New(),
				RoutineID:   routine.ID,
				ExerciseID:  s.resolveExercise(e.Name),
				Name:        e.Name,
				Sets:        e.Sets,
				Reps:        e.Reps,
				RestSeconds: e.RestSeconds,
				Position:    i,
			})
		}
		batch = append(batch, routine)
	}

	if err := s.repo.CreateRoutines(batch); err != nil {
		return inserted, fmt.Errorf("%w: %v", ErrDatabase, err)
	}
	inserted += len(batch)
	return inserted, nil
}

// resolveExercise maps a free-text exercise name to a seeded identifier,
// generating a fresh one when resolution fails so the textual name
// remains the only link back to the source data.
func (s *Seeder) resolveExercise(name string) uuid.UUID {
	if id, ok := s.resolver.Resolve(name); ok {
		return id
	}
	s.log.WithFields(logrus.Fields{"exercise": name}).
		Warn("exercise name did not resolve, generating placeholder id")
	return uuid.New()
}

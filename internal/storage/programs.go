// ABOUTME: Lift program and routine template storage operations.
// ABOUTME: Program workouts and exercise lines are written transactionally.
package storage

import (
	"fmt"
	"time"

	"github.com/sporhocam/sporhocam/internal/models"
)

// CreatePrograms inserts lift programs with their workouts and exercise
// lines in a single transaction.
func (d *DB) CreatePrograms(batch []*models.LiftProgram) error {
	if len(batch) == 0 {
		return nil
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("create programs: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	progStmt, err := tx.Prepare(`
		INSERT INTO lift_programs (id, name_en, name_tr, level, days_per_week, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("create programs: %w", err)
	}
	defer progStmt.Close()

	workoutStmt, err := tx.Prepare(`
		INSERT INTO lift_workouts (id, program_id, name, day)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("create programs: %w", err)
	}
	defer workoutStmt.Close()

	exStmt, err := tx.Prepare(`
		INSERT INTO lift_exercises (id, workout_id, exercise_id, name, sets, reps, percentage, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("create programs: %w", err)
	}
	defer exStmt.Close()

	for _, p := range batch {
		_, err := progStmt.Exec(
			p.ID.String(),
			p.NameEN,
			p.NameTR,
			p.Level,
			p.DaysPerWeek,
			p.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("create program %s: %w", p.NameEN, err)
		}

		for _, w := range p.Workouts {
			if _, err := workoutStmt.Exec(w.ID.String(), p.ID.String(), w.Name, w.Day); err != nil {
				return fmt.Errorf("create program workout %s: %w", w.Name, err)
			}

			for _, e := range w.Exercises {
				_, err := exStmt.Exec(
					e.ID.String(),
					w.ID.String(),
					e.ExerciseID.String(),
					e.Name,
					e.Sets,
					e.Reps,
					e.Percentage,
					e.Position,
				)
				if err != nil {
					return fmt.Errorf("create program exercise %s: %w", e.Name, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create programs: %w", err)
	}
	return nil
}

// CreateRoutines inserts routine templates with their exercise slots in a
// single transaction.
func (d *DB) CreateRoutines(batch []*models.RoutineTemplate) error {
	if len(batch) == 0 {
		return nil
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("create routines: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	routineStmt, err := tx.Prepare(`
		INSERT INTO routine_templates (id, name_en, name_tr, focus, created_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("create routines: %w", err)
	}
	defer routineStmt.Close()

	exStmt, err := tx.Prepare(`
		INSERT INTO routine_exercises (id, routine_id, exercise_id, name, sets, reps, rest_seconds, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("create routines: %w", err)
	}
	defer exStmt.Close()

	for _, r := range batch {
		_, err := routineStmt.Exec(
			r.ID.String(),
			r.NameEN,
			r.NameTR,
			r.Focus,
			r.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("create routine %s: %w", r.NameEN, err)
		}

		for _, e := range r.Exercises {
			_, err := exStmt.Exec(
				e.ID.String(),
				r.ID.String(),
				e.ExerciseID.String(),
				e.Name,
				e.Sets,
				e.Reps,
				e.RestSeconds,
				e.Position,
			)
			if err != nil {
				return fmt.Errorf("create routine exercise %s: %w", e.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create routines: %w", err)
	}
	return nil
}

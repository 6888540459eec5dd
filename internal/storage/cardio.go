// ABOUTME: Cardio workout template storage operations.
// ABOUTME: Interval segments are written with their parent in one transaction.
package storage

import (
	"fmt"
	"time"

	"github.com/sporhocam/sporhocam/internal/models"
)

// CreateCardioWorkouts inserts cardio templates and their segments in a
// single transaction.
func (d *DB) CreateCardioWorkouts(batch []*models.CardioWorkout) error {
	if len(batch) == 0 {
		return nil
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("create cardio workouts: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	workoutStmt, err := tx.Prepare(`
		INSERT INTO cardio_workouts (id, name_en, name_tr, activity, duration_minutes, target_distance, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("create cardio workouts: %w", err)
	}
	defer workoutStmt.Close()

	segStmt, err := tx.Prepare(`
		INSERT INTO cardio_segments (id, workout_id, label, seconds, position)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("create cardio workouts: %w", err)
	}
	defer segStmt.Close()

	for _, w := range batch {
		_, err := workoutStmt.Exec(
			w.ID.String(),
			w.NameEN,
			w.NameTR,
			string(w.Activity),
			w.DurationMinutes,
			w.TargetDistance,
			w.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("create cardio workout %s: %w", w.NameEN, err)
		}

		for _, s := range w.Segments {
			_, err := segStmt.Exec(s.ID.String(), w.ID.String(), s.Label, s.Seconds, s.Position)
			if err != nil {
				return fmt.Errorf("create cardio segment %s: %w", s.Label, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create cardio workouts: %w", err)
	}
	return nil
}

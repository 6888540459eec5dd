// ABOUTME: Exercise batch insert and name search for SQLite storage.
// ABOUTME: MatchExercises backs the seeding pipeline's exercise resolver.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sporhocam/sporhocam/internal/models"
)

// CreateExercises inserts a batch of exercises in a single transaction.
func (d *DB) CreateExercises(batch []*models.Exercise) error {
	if len(batch) == 0 {
		return nil
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("create exercises: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
		INSERT INTO exercises (id, name_en, name_tr, category, equipment, compound, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("create exercises: %w", err)
	}
	defer stmt.Close()

	for _, e := range batch {
		_, err := stmt.Exec(
			e.ID.String(),
			e.NameEN,
			e.NameTR,
			string(e.Category),
			string(e.Equipment),
			e.Compound,
			e.Description,
			e.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("create exercise %s: %w", e.NameEN, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create exercises: %w", err)
	}
	return nil
}

// SearchExercises finds exercises whose localized names contain the query,
// case-insensitively, ordered by English name. The containment test runs
// in Go: SQLite's LOWER() folds ASCII only, which would miss capitalized
// Turkish names like Şınav.
func (d *DB) SearchExercises(query string, limit int) ([]*models.Exercise, error) {
	all, err := d.listExercisesOrdered("name_en")
	if err != nil {
		return nil, fmt.Errorf("search exercises: %w", err)
	}

	key := strings.ToLower(query)
	var matches []*models.Exercise
	for _, e := range all {
		if !strings.Contains(strings.ToLower(e.NameEN), key) &&
			!strings.Contains(strings.ToLower(e.NameTR), key) {
			continue
		}
		matches = append(matches, e)
		if limit > 0 && len(matches) == limit {
			break
		}
	}
	return matches, nil
}

// MatchExercises returns all exercises whose localized names contain the
// given name, case-insensitively with full Unicode folding. Callers apply
// their own tie-break; the id ordering here keeps results deterministic
// across store iterations.
func (d *DB) MatchExercises(name string) ([]*models.Exercise, error) {
	all, err := d.listExercisesOrdered("id")
	if err != nil {
		return nil, fmt.Errorf("match exercises: %w", err)
	}

	key := strings.ToLower(name)
	var matches []*models.Exercise
	for _, e := range all {
		if strings.Contains(strings.ToLower(e.NameEN), key) ||
			strings.Contains(strings.ToLower(e.NameTR), key) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

// listExercisesOrdered fetches every exercise ordered by the given column.
// The exercise table is small (a few hundred rows at most), so filtering
// happens in Go rather than SQL.
func (d *DB) listExercisesOrdered(orderBy string) ([]*models.Exercise, error) {
	rows, err := d.db.Query(`
		SELECT id, name_en, name_tr, category, equipment, compound, description, created_at
		FROM exercises
		ORDER BY ` + orderBy)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExercises(rows)
}

func scanExercises(rows *sql.Rows) ([]*models.Exercise, error) {
	var exercises []*models.Exercise

	for rows.Next() {
		var e models.Exercise
		var idStr, category, equipment, createdAt string
		var description sql.NullString

		err := rows.Scan(&idStr, &e.NameEN, &e.NameTR, &category, &equipment, &e.Compound, &description, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}

		e.ID, _ = uuid.Parse(idStr)
		e.Category = models.ExerciseCategory(category)
		e.Equipment = models.Equipment(equipment)
		if description.Valid {
			e.Description = description.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

		exercises = append(exercises, &e)
	}

	return exercises, rows.Err()
}

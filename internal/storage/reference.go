// ABOUTME: Category-level operations over the seeded reference tables.
// ABOUTME: Existence counts, category clears, and the name normalization pass.
package storage

import (
	"fmt"
	"strings"

	"github.com/sporhocam/sporhocam/internal/models"
)

// categoryTables maps each data category to its parent table.
// Child tables are removed via ON DELETE CASCADE.
var categoryTables = map[models.DataCategory]string{
	models.DataExercises:  "exercises",
	models.DataFoods:      "foods",
	models.DataMovements:  "crossfit_movements",
	models.DataBenchmarks: "benchmark_wods",
	models.DataCardio:     "cardio_workouts",
	models.DataPrograms:   "lift_programs",
	models.DataRoutines:   "routine_templates",
}

// CountCategory returns the number of stored records in a category.
func (d *DB) CountCategory(cat models.DataCategory) (int, error) {
	table, ok := categoryTables[cat]
	if !ok {
		return 0, fmt.Errorf("unknown category: %s", cat)
	}

	var count int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", cat, err)
	}
	return count, nil
}

// ClearCategory deletes all records of a category, including child rows.
// Used to discard partial batches before re-seeding.
func (d *DB) ClearCategory(cat models.DataCategory) error {
	table, ok := categoryTables[cat]
	if !ok {
		return fmt.Errorf("unknown category: %s", cat)
	}

	if _, err := d.db.Exec("DELETE FROM " + table); err != nil {
		return fmt.Errorf("clear %s: %w", cat, err)
	}
	return nil
}

// NormalizeNames trims surrounding whitespace and collapses internal runs
// of spaces in the localized name columns of all reference tables.
// Returns the number of rows changed. The collapse happens in Go;
// SQLite's TRIM() only handles the surrounding case.
func (d *DB) NormalizeNames() (int, error) {
	tables := []struct {
		name string
		cols []string
	}{
		{"exercises", []string{"name_en", "name_tr"}},
		{"foods", []string{"name_en", "name_tr"}},
		{"crossfit_movements", []string{"name_en", "name_tr"}},
		{"cardio_workouts", []string{"name_en", "name_tr"}},
		{"benchmark_wods", []string{"name"}},
	}

	total := 0
	for _, t := range tables {
		n, err := d.normalizeTable(t.name, t.cols)
		if err != nil {
			return total, fmt.Errorf("normalize %s: %w", t.name, err)
		}
		total += n
	}
	return total, nil
}

// normalizeTable canonicalizes whitespace in the given name columns and
// rewrites the rows that changed.
func (d *DB) normalizeTable(table string, cols []string) (int, error) {
	rows, err := d.db.Query("SELECT id, " + strings.Join(cols, ", ") + " FROM " + table)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	type rowUpdate struct {
		id     string
		values []string
	}
	var updates []rowUpdate

	for rows.Next() {
		var id string
		values := make([]string, len(cols))
		dest := make([]interface{}, 0, len(cols)+1)
		dest = append(dest, &id)
		for i := range values {
			dest = append(dest, &values[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return 0, err
		}

		changed := false
		for i, v := range values {
			canonical := strings.Join(strings.Fields(v), " ")
			if canonical != v {
				values[i] = canonical
				changed = true
			}
		}
		if changed {
			updates = append(updates, rowUpdate{id: id, values: values})
		}
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	if len(updates) == 0 {
		return 0, nil
	}

	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = c + " = ?"
	}
	stmt, err := d.db.Prepare("UPDATE " + table + " SET " + strings.Join(sets, ", ") + " WHERE id = ?")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, u := range updates {
		args := make([]interface{}, 0, len(u.values)+1)
		for _, v := range u.values {
			args = append(args, v)
		}
		args = append(args, u.id)
		if _, err := stmt.Exec(args...); err != nil {
			return 0, err
		}
	}
	return len(updates), nil
}

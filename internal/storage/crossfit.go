// ABOUTME: CrossFit movement and benchmark WOD storage operations.
// ABOUTME: Benchmark movements are written with their parent in one transaction.
package storage

import (
	"fmt"
	"time"

	"github.com/sporhocam/sporhocam/internal/models"
)

// CreateMovements inserts a batch of CrossFit movements in a single transaction.
func (d *DB) CreateMovements(batch []*models.CrossFitMovement) error {
	if len(batch) == 0 {
		return nil
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("create movements: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
		INSERT INTO crossfit_movements (id, name_en, name_tr, category, equipment, scaling_notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("create movements: %w", err)
	}
	defer stmt.Close()

	for _, m := range batch {
		_, err := stmt.Exec(
			m.ID.String(),
			m.NameEN,
			m.NameTR,
			string(m.Category),
			string(m.Equipment),
			m.ScalingNotes,
			m.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("create movement %s: %w", m.NameEN, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create movements: %w", err)
	}
	return nil
}

// CreateBenchmarks inserts benchmark WODs and their movement sub-records
// in a single transaction.
func (d *DB) CreateBenchmarks(batch []*models.BenchmarkWOD) error {
	if len(batch) == 0 {
		return nil
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("create benchmarks: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	wodStmt, err := tx.Prepare(`
		INSERT INTO benchmark_wods (id, name, wod_type, time_cap_minutes, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("create benchmarks: %w", err)
	}
	defer wodStmt.Close()

	movStmt, err := tx.Prepare(`
		INSERT INTO benchmark_movements (id, wod_id, name, reps, rx_weight, position)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("create benchmarks: %w", err)
	}
	defer movStmt.Close()

	for _, w := range batch {
		_, err := wodStmt.Exec(
			w.ID.String(),
			w.Name,
			string(w.Type),
			w.TimeCapMinutes,
			w.Description,
			w.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("create benchmark %s: %w", w.Name, err)
		}

		for _, m := range w.Movements {
			_, err := movStmt.Exec(
				m.ID.String(),
				w.ID.String(),
				m.Name,
				m.Reps,
				m.RxWeight,
				m.Position,
			)
			if err != nil {
				return fmt.Errorf("create benchmark movement %s: %w", m.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create benchmarks: %w", err)
	}
	return nil
}

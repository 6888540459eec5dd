// ABOUTME: Seeding ledger persistence, one row per data category.
// ABOUTME: Distinguishes fully seeded categories from interrupted partial seeds.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sporhocam/sporhocam/internal/models"
)

// SeedLedgerEntry records the seeding state of one data category.
// A category is trustworthy only when Completed is true; a row with
// Completed false means a seed pass started and never finished.
type SeedLedgerEntry struct {
	Category    models.DataCategory
	Version     int
	Completed   bool
	StartedAt   time.Time
	CompletedAt *time.Time
}

// SeedLedger returns the ledger entry for a category, or nil when the
// category has never been seeded.
func (d *DB) SeedLedger(cat models.DataCategory) (*SeedLedgerEntry, error) {
	query := `
		SELECT category, version, completed, started_at, completed_at
		FROM seed_ledger
		WHERE category = ?
	`
	var e SeedLedgerEntry
	var category, startedAt string
	var completed int
	var completedAt sql.NullString

	err := d.db.QueryRow(query, string(cat)).Scan(&category, &e.Version, &completed, &startedAt, &completedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("seed ledger %s: %w", cat, err)
	}

	e.Category = models.DataCategory(category)
	e.Completed = completed != 0
	e.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
	if completedAt.Valid {
		t, _ := time.Parse(time.RFC3339, completedAt.String)
		e.CompletedAt = &t
	}

	return &e, nil
}

// BeginSeed marks a category as in progress at the given data version.
// Any previous entry is replaced; the completed flag resets to false.
func (d *DB) BeginSeed(cat models.DataCategory, version int) error {
	query := `
		INSERT INTO seed_ledger (category, version, completed, started_at, completed_at)
		VALUES (?, ?, 0, ?, NULL)
		ON CONFLICT(category) DO UPDATE SET
			version = excluded.version,
			completed = 0,
			started_at = excluded.started_at,
			completed_at = NULL
	`
	_, err := d.db.Exec(query, string(cat), version, time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("begin seed %s: %w", cat, err)
	}
	return nil
}

// CompleteSeed marks a category as fully seeded.
func (d *DB) CompleteSeed(cat models.DataCategory) error {
	result, err := d.db.Exec(
		`UPDATE seed_ledger SET completed = 1, completed_at = ? WHERE category = ?`,
		time.Now().Format(time.RFC3339), string(cat),
	)
	if err != nil {
		return fmt.Errorf("complete seed %s: %w", cat, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("complete seed %s: %w", cat, err)
	}
	if affected == 0 {
		return fmt.Errorf("complete seed %s: no ledger entry", cat)
	}
	return nil
}

// ABOUTME: Measurement CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for measurements.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sporhocam/sporhocam/internal/models"
)

// CreateMeasurement stores a new measurement in the database.
func (d *DB) CreateMeasurement(m *models.Measurement) error {
	query := `
		INSERT INTO measurements (id, measurement_type, value, unit, recorded_at, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		m.ID.String(),
		string(m.Type),
		m.Value,
		m.Unit,
		m.RecordedAt.Format(time.RFC3339),
		m.Notes,
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create measurement: %w", err)
	}
	return nil
}

// GetMeasurement retrieves a measurement by ID or ID prefix.
func (d *DB) GetMeasurement(idOrPrefix string) (*models.Measurement, error) {
	id, err := d.resolveMeasurementID(idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, measurement_type, value, unit, recorded_at, notes, created_at
		FROM measurements
		WHERE id = ?
	`
	return d.scanMeasurement(d.db.QueryRow(query, id))
}

// ListMeasurements retrieves measurements with optional filtering by type.
// Results are sorted by RecordedAt descending (most recent first).
func (d *DB) ListMeasurements(t *models.MeasurementType, limit int) ([]*models.Measurement, error) {
	var query string
	var args []interface{}

	if t != nil {
		query = `
			SELECT id, measurement_type, value, unit, recorded_at, notes, created_at
			FROM measurements
			WHERE measurement_type = ?
			ORDER BY recorded_at DESC
		`
		args = append(args, string(*t))
	} else {
		query = `
			SELECT id, measurement_type, value, unit, recorded_at, notes, created_at
			FROM measurements
			ORDER BY recorded_at DESC
		`
	}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	defer rows.Close()

	return d.scanMeasurements(rows)
}

// MeasurementSeries returns measurements of one type since a cutoff,
// ordered by RecordedAt ascending for trend analysis.
func (d *DB) MeasurementSeries(t models.MeasurementType, since time.Time) ([]*models.Measurement, error) {
	query := `
		SELECT id, measurement_type, value, unit, recorded_at, notes, created_at
		FROM measurements
		WHERE measurement_type = ? AND recorded_at >= ?
		ORDER BY recorded_at ASC
	`
	rows, err := d.db.Query(query, string(t), since.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("measurement series: %w", err)
	}
	defer rows.Close()

	return d.scanMeasurements(rows)
}

// LatestMeasurement returns the most recent measurement of a specific type.
func (d *DB) LatestMeasurement(t models.MeasurementType) (*models.Measurement, error) {
	query := `
		SELECT id, measurement_type, value, unit, recorded_at, notes, created_at
		FROM measurements
		WHERE measurement_type = ?
		ORDER BY recorded_at DESC
		LIMIT 1
	`
	m, err := d.scanMeasurement(d.db.QueryRow(query, string(t)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no measurements of type %s found", t)
		}
		return nil, err
	}
	return m, nil
}

// DeleteMeasurement removes a measurement by ID or prefix.
func (d *DB) DeleteMeasurement(idOrPrefix string) error {
	id, err := d.resolveMeasurementID(idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete measurement: %w", err)
	}

	result, err := d.db.Exec("DELETE FROM measurements WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete measurement: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete measurement: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("not found: %s", idOrPrefix)
	}

	return nil
}

// resolveMeasurementID finds the full ID from a prefix.
func (d *DB) resolveMeasurementID(idOrPrefix string) (string, error) {
	// If it looks like a full UUID, use it directly
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	// Search by prefix
	query := `SELECT id FROM measurements WHERE id LIKE ? || '%'`
	rows, err := d.db.Query(query, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve measurement ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan measurement ID: %w", err)
		}
		matches = append(matches, id)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("not found: %s", idOrPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}

	return matches[0], nil
}

// scanMeasurement scans a single row into a Measurement struct.
func (d *DB) scanMeasurement(row *sql.Row) (*models.Measurement, error) {
	var m models.Measurement
	var idStr, mType, recordedAt, createdAt string
	var notes sql.NullString

	err := row.Scan(&idStr, &mType, &m.Value, &m.Unit, &recordedAt, &notes, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("not found")
		}
		return nil, fmt.Errorf("scan measurement: %w", err)
	}

	m.ID, _ = uuid.Parse(idStr)
	m.Type = models.MeasurementType(mType)
	m.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
	m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if notes.Valid {
		m.Notes = &notes.String
	}

	return &m, nil
}

// scanMeasurements scans multiple rows into a slice of Measurements.
func (d *DB) scanMeasurements(rows *sql.Rows) ([]*models.Measurement, error) {
	var measurements []*models.Measurement

	for rows.Next() {
		var m models.Measurement
		var idStr, mType, recordedAt, createdAt string
		var notes sql.NullString

		err := rows.Scan(&idStr, &mType, &m.Value, &m.Unit, &recordedAt, &notes, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}

		m.ID, _ = uuid.Parse(idStr)
		m.Type = models.MeasurementType(mType)
		m.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if notes.Valid {
			m.Notes = &notes.String
		}

		measurements = append(measurements, &m)
	}

	return measurements, rows.Err()
}

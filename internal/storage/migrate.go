// ABOUTME: Data migration from the legacy key-value store into SQLite.
// ABOUTME: Copies measurement history from a source to a destination store.

package storage

import (
	"fmt"
	"os"

	"github.com/sporhocam/sporhocam/internal/models"
)

// MeasurementSource is the read side of a legacy store being migrated.
type MeasurementSource interface {
	ListMeasurements() ([]*models.Measurement, error)
}

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Measurements int
}

// MigrateData copies all measurements from src to dst storage.
// The destination should be empty before calling this function;
// duplicate IDs cause errors.
func MigrateData(src MeasurementSource, dst Repository) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	measurements, err := src.ListMeasurements()
	if err != nil {
		return nil, fmt.Errorf("list source measurements: %w", err)
	}

	for _, m := range measurements {
		if err := dst.CreateMeasurement(m); err != nil {
			return nil, fmt.Errorf("create measurement %s: %w", m.ID, err)
		}
		summary.Measurements++
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}

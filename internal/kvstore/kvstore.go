// ABOUTME: Legacy Badger key-value store, kept only as a migration source.
// ABOUTME: Measurements live as JSON values under a "measurement:" key prefix.
package kvstore

import (
	"encoding/json"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"

	"github.com/sporhocam/sporhocam/internal/models"
)

const measurementPrefix = "measurement:"

// Store wraps a legacy Badger database directory.
type Store struct {
	db *badger.DB
}

// Open opens the legacy store at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open legacy store: %w", err)
	}
	return &Store{db: db}, nil
}

// measurementRecord is the legacy JSON value layout.
type measurementRecord struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	RecordedAt string  `json:"recorded_at"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// ListMeasurements reads every measurement from the legacy store.
func (s *Store) ListMeasurements() ([]*models.Measurement, error) {
	var measurements []*models.Measurement

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(measurementPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var rec measurementRecord
				if err := json.Unmarshal(val, &rec); err != nil {
					return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
				}
				m, err := rec.toModel()
				if err != nil {
					return fmt.Errorf("convert %s: %w", it.Item().Key(), err)
				}
				measurements = append(measurements, m)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list legacy measurements: %w", err)
	}
	return measurements, nil
}

// PutMeasurement writes a measurement in the legacy layout. Retained for
// round-trip tests against the migration path.
func (s *Store) PutMeasurement(m *models.Measurement) error {
	rec := measurementRecord{
		ID:         m.ID.String(),
		Type:       string(m.Type),
		Value:      m.Value,
		Unit:       m.Unit,
		RecordedAt: m.RecordedAt.Format(time.RFC3339),
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt.Format(time.RFC3339),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode measurement: %w", err)
	}

	key := []byte(measurementPrefix + rec.ID)
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
	if err != nil {
		return fmt.Errorf("put measurement: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (r measurementRecord) toModel() (*models.Measurement, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("parse id: %w", err)
	}
	recordedAt, err := time.Parse(time.RFC3339, r.RecordedAt)
	if err != nil {
		return nil, fmt.Errorf("parse recorded_at: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		createdAt = recordedAt
	}

	return &models.Measurement{
		ID:         id,
		Type:       models.MeasurementType(r.Type),
		Value:      r.Value,
		Unit:       r.Unit,
		RecordedAt: recordedAt,
		Notes:      r.Notes,
		CreatedAt:  createdAt,
	}, nil
}

// ABOUTME: Tests for measurement CRUD operations against SQLite.
// ABOUTME: Verifies create, get-by-prefix, list ordering, series, and delete.
package storage

import (
	"testing"
	"time"

	"github.com/sporhocam/sporhocam/internal/models"
)

func TestCreateAndGetMeasurement(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	m := models.NewMeasurement(models.MeasurementWeight, 82.5)
	m.WithNotes("morning weight")

	if err := db.CreateMeasurement(m); err != nil {
		t.Fatalf("CreateMeasurement failed: %v", err)
	}

	got, err := db.GetMeasurement(m.ID.String())
	if err != nil {
		t.Fatalf("GetMeasurement failed: %v", err)
	}

	if got.ID != m.ID {
		t.Errorf("ID mismatch: got %v, want %v", got.ID, m.ID)
	}
	if got.Type != m.Type {
		t.Errorf("Type mismatch: got %v, want %v", got.Type, m.Type)
	}
	if got.Value != m.Value {
		t.Errorf("Value mismatch: got %v, want %v", got.Value, m.Value)
	}
	if got.Notes == nil || *got.Notes != "morning weight" {
		t.Errorf("Notes mismatch: got %v, want 'morning weight'", got.Notes)
	}
}

func TestGetMeasurementByPrefix(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	m := models.NewMeasurement(models.MeasurementWeight, 82.5)
	if err := db.CreateMeasurement(m); err != nil {
		t.Fatalf("CreateMeasurement failed: %v", err)
	}

	prefix := m.ID.String()[:8]
	got, err := db.GetMeasurement(prefix)
	if err != nil {
		t.Fatalf("GetMeasurement by prefix failed: %v", err)
	}

	if got.ID != m.ID {
		t.Errorf("ID mismatch: got %v, want %v", got.ID, m.ID)
	}
}

func TestListMeasurements(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	m1 := models.NewMeasurement(models.MeasurementWeight, 82.0)
	m1.RecordedAt = time.Now().Add(-2 * time.Hour)
	m2 := models.NewMeasurement(models.MeasurementWeight, 82.5)
	m2.RecordedAt = time.Now().Add(-1 * time.Hour)
	m3 := models.NewMeasurement(models.MeasurementWaist, 84)
	m3.RecordedAt = time.Now()

	for _, m := range []*models.Measurement{m1, m2, m3} {
		if err := db.CreateMeasurement(m); err != nil {
			t.Fatalf("CreateMeasurement failed: %v", err)
		}
	}

	all, err := db.ListMeasurements(nil, 0)
	if err != nil {
		t.Fatalf("ListMeasurements failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 measurements, got %d", len(all))
	}

	// Most recent first
	if all[0].ID != m3.ID {
		t.Errorf("Expected most recent first, got %v", all[0].ID)
	}

	weightType := models.MeasurementWeight
	weights, err := db.ListMeasurements(&weightType, 0)
	if err != nil {
		t.Fatalf("ListMeasurements with type failed: %v", err)
	}
	if len(weights) != 2 {
		t.Errorf("Expected 2 weight measurements, got %d", len(weights))
	}

	limited, err := db.ListMeasurements(nil, 2)
	if err != nil {
		t.Fatalf("ListMeasurements with limit failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 measurements with limit, got %d", len(limited))
	}
}

func TestMeasurementSeries(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	base := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	for i, v := range []float64{83.0, 82.6, 82.1} {
		m := models.NewMeasurement(models.MeasurementWeight, v)
		m.RecordedAt = base.AddDate(0, 0, i)
		if err := db.CreateMeasurement(m); err != nil {
			t.Fatalf("CreateMeasurement failed: %v", err)
		}
	}

	series, err := db.MeasurementSeries(models.MeasurementWeight, base.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("MeasurementSeries failed: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("Expected 2 points since cutoff, got %d", len(series))
	}
	// Ascending order for trend analysis
	if !series[0].RecordedAt.Before(series[1].RecordedAt) {
		t.Error("Expected ascending RecordedAt order")
	}
	if series[0].Value != 82.6 {
		t.Errorf("Expected first value 82.6, got %v", series[0].Value)
	}
}

func TestLatestMeasurement(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	m1 := models.NewMeasurement(models.MeasurementWeight, 83.0)
	m1.RecordedAt = time.Now().Add(-24 * time.Hour)
	m2 := models.NewMeasurement(models.MeasurementWeight, 82.4)

	for _, m := range []*models.Measurement{m1, m2} {
		if err := db.CreateMeasurement(m); err != nil {
			t.Fatalf("CreateMeasurement failed: %v", err)
		}
	}

	got, err := db.LatestMeasurement(models.MeasurementWeight)
	if err != nil {
		t.Fatalf("LatestMeasurement failed: %v", err)
	}
	if got.ID != m2.ID {
		t.Errorf("Expected latest measurement %v, got %v", m2.ID, got.ID)
	}

	if _, err := db.LatestMeasurement(models.MeasurementHip); err == nil {
		t.Error("Expected error for type with no measurements")
	}
}

func TestDeleteMeasurement(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	m := models.NewMeasurement(models.MeasurementWeight, 82.5)
	if err := db.CreateMeasurement(m); err != nil {
		t.Fatalf("CreateMeasurement failed: %v", err)
	}

	if err := db.DeleteMeasurement(m.ID.String()[:8]); err != nil {
		t.Fatalf("DeleteMeasurement failed: %v", err)
	}

	if _, err := db.GetMeasurement(m.ID.String()); err == nil {
		t.Error("Expected error getting deleted measurement")
	}

	if err := db.DeleteMeasurement("deadbeef"); err == nil {
		t.Error("Expected error deleting nonexistent measurement")
	}
}

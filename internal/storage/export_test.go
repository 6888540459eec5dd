// ABOUTME: Tests for export and import of measurement data.
// ABOUTME: Verifies JSON round-trip and Markdown formatting.
package storage

import (
	"strings"
	"testing"

	"github.com/sporhocam/sporhocam/internal/models"
)

func TestExportImportJSONRoundTrip(t *testing.T) {
	src := setupTestDB(t)
	defer src.Close()

	m := models.NewMeasurement(models.MeasurementWeight, 82.5)
	m.WithNotes("after breakfast")
	if err := src.CreateMeasurement(m); err != nil {
		t.Fatalf("CreateMeasurement failed: %v", err)
	}

	data, err := src.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	dst := setupTestDB(t)
	defer dst.Close()

	if err := dst.ImportJSON(data); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}

	got, err := dst.GetMeasurement(m.ID.String())
	if err != nil {
		t.Fatalf("GetMeasurement after import failed: %v", err)
	}
	if got.Value != m.Value || got.Type != m.Type {
		t.Errorf("Round-trip mismatch: got %+v", got)
	}
	if got.Notes == nil || *got.Notes != "after breakfast" {
		t.Errorf("Notes lost in round-trip: got %v", got.Notes)
	}
}

func TestExportMarkdown(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	m := models.NewMeasurement(models.MeasurementWeight, 82.5)
	if err := db.CreateMeasurement(m); err != nil {
		t.Fatalf("CreateMeasurement failed: %v", err)
	}

	md, err := db.ExportMarkdown(nil, nil)
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}

	if !strings.Contains(md, "## weight") {
		t.Error("Expected weight section in markdown")
	}
	if !strings.Contains(md, "82.50 kg") {
		t.Error("Expected formatted value in markdown")
	}
}

func TestExportYAMLGroupsByType(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.CreateMeasurement(models.NewMeasurement(models.MeasurementWeight, 82.5)); err != nil {
		t.Fatalf("CreateMeasurement failed: %v", err)
	}
	if err := db.CreateMeasurement(models.NewMeasurement(models.MeasurementWaist, 84)); err != nil {
		t.Fatalf("CreateMeasurement failed: %v", err)
	}

	out, err := db.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}

	s := string(out)
	if !strings.Contains(s, "weight:") || !strings.Contains(s, "waist:") {
		t.Errorf("Expected per-type groups in YAML, got:\n%s", s)
	}
}

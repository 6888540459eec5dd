// ABOUTME: Export and import functionality for measurement data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sporhocam/sporhocam/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for measurement data.
// Reference data is not exported; it is rebuilt by re-running the seeder.
type ExportData struct {
	Version      string                `json:"version" yaml:"version"`
	ExportedAt   time.Time             `json:"exported_at" yaml:"exported_at"`
	Tool         string                `json:"tool" yaml:"tool"`
	Measurements []*models.Measurement `json:"measurements" yaml:"measurements"`
}

// GetAllData retrieves all measurement data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	measurements, err := d.ListMeasurements(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}

	return &ExportData{
		Version:      "1.0",
		ExportedAt:   time.Now(),
		Tool:         "sporhocam",
		Measurements: measurements,
	}, nil
}

// ImportData imports data from an export file.
func (d *DB) ImportData(data *ExportData) error {
	for _, m := range data.Measurements {
		if err := d.CreateMeasurement(m); err != nil {
			return fmt.Errorf("import measurement: %w", err)
		}
	}
	return nil
}

// ExportJSON exports all measurement data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all measurement data as YAML, grouped by type.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version      string                       `yaml:"version"`
		ExportedAt   string                       `yaml:"exported_at"`
		Tool         string                       `yaml:"tool"`
		Measurements map[string][]yamlMeasurement `yaml:"measurements"`
	}{
		Version:      data.Version,
		ExportedAt:   data.ExportedAt.Format(time.RFC3339),
		Tool:         data.Tool,
		Measurements: make(map[string][]yamlMeasurement),
	}

	for _, m := range data.Measurements {
		mt := string(m.Type)
		ym := yamlMeasurement{
			ID:         m.ID.String()[:8],
			Value:      m.Value,
			Unit:       m.Unit,
			RecordedAt: m.RecordedAt.Format(time.RFC3339),
		}
		if m.Notes != nil {
			ym.Notes = *m.Notes
		}
		yamlData.Measurements[mt] = append(yamlData.Measurements[mt], ym)
	}

	return yaml.Marshal(yamlData)
}

type yamlMeasurement struct {
	ID         string  `yaml:"id"`
	Value      float64 `yaml:"value"`
	Unit       string  `yaml:"unit"`
	RecordedAt string  `yaml:"recorded_at"`
	Notes      string  `yaml:"notes,omitempty"`
}

// ExportMarkdown exports measurements as Markdown tables.
func (d *DB) ExportMarkdown(t *models.MeasurementType, since *time.Time) (string, error) {
	measurements, err := d.ListMeasurements(t, 0)
	if err != nil {
		return "", err
	}

	if since != nil {
		var filtered []*models.Measurement
		for _, m := range measurements {
			if m.RecordedAt.After(*since) || m.RecordedAt.Equal(*since) {
				filtered = append(filtered, m)
			}
		}
		measurements = filtered
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Sporhocam Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	if t != nil {
		sb.WriteString(fmt.Sprintf("## %s\n\n", *t))
		writeMeasurementTable(&sb, measurements)
		return sb.String(), nil
	}

	// Group by measurement type
	grouped := make(map[models.MeasurementType][]*models.Measurement)
	for _, m := range measurements {
		grouped[m.Type] = append(grouped[m.Type], m)
	}

	// Sort types for consistent output
	var types []models.MeasurementType
	for mt := range grouped {
		types = append(types, mt)
	}
	sort.Slice(types, func(i, j int) bool {
		return string(types[i]) < string(types[j])
	})

	for _, mt := range types {
		sb.WriteString(fmt.Sprintf("## %s\n\n", mt))
		writeMeasurementTable(&sb, grouped[mt])
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func writeMeasurementTable(sb *strings.Builder, measurements []*models.Measurement) {
	sb.WriteString("| Date | Value | Notes |\n")
	sb.WriteString("|------|-------|-------|\n")
	for _, m := range measurements {
		notes := ""
		if m.Notes != nil {
			notes = *m.Notes
		}
		sb.WriteString(fmt.Sprintf("| %s | %.2f %s | %s |\n",
			m.RecordedAt.Format("2006-01-02 15:04"),
			m.Value, m.Unit, notes))
	}
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(&exportData)
}

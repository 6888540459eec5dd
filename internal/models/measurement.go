// ABOUTME: Measurement model and MeasurementType enum for body and nutrition data.
// ABOUTME: Defines the tracked measurement types with their display units.
package models

import (
	"time"

	"github.com/google/uuid"
)

// MeasurementType represents the type of measurement being recorded.
type MeasurementType string

const (
	// Body composition
	MeasurementWeight  MeasurementType = "weight"
	MeasurementBodyFat MeasurementType = "body_fat"
	MeasurementWaist   MeasurementType = "waist"
	MeasurementNeck    MeasurementType = "neck"
	MeasurementHip     MeasurementType = "hip"
	MeasurementChest   MeasurementType = "chest"
	MeasurementBicep   MeasurementType = "bicep"
	MeasurementThigh   MeasurementType = "thigh"

	// Nutrition
	MeasurementCalories MeasurementType = "calories"
	MeasurementProtein  MeasurementType = "protein"
	MeasurementCarbs    MeasurementType = "carbs"
	MeasurementFat      MeasurementType = "fat"
	MeasurementWater    MeasurementType = "water"

	// Activity
	MeasurementSteps MeasurementType = "steps"
)

// MeasurementUnits maps measurement types to their display units.
var MeasurementUnits = map[MeasurementType]string{
	MeasurementWeight:   "kg",
	MeasurementBodyFat:  "%",
	MeasurementWaist:    "cm",
	MeasurementNeck:     "cm",
	MeasurementHip:      "cm",
	MeasurementChest:    "cm",
	MeasurementBicep:    "cm",
	MeasurementThigh:    "cm",
	MeasurementCalories: "kcal",
	MeasurementProtein:  "g",
	MeasurementCarbs:    "g",
	MeasurementFat:      "g",
	MeasurementWater:    "ml",
	MeasurementSteps:    "steps",
}

// AllMeasurementTypes returns all valid measurement types.
var AllMeasurementTypes = []MeasurementType{
	MeasurementWeight, MeasurementBodyFat, MeasurementWaist, MeasurementNeck,
	MeasurementHip, MeasurementChest, MeasurementBicep, MeasurementThigh,
	MeasurementCalories, MeasurementProtein, MeasurementCarbs, MeasurementFat,
	MeasurementWater, MeasurementSteps,
}

// IsValidMeasurementType checks if a string is a valid measurement type.
func IsValidMeasurementType(s string) bool {
	for _, mt := range AllMeasurementTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// Measurement represents a single logged measurement entry.
type Measurement struct {
	ID         uuid.UUID
	Type       MeasurementType
	Value      float64
	Unit       string
	RecordedAt time.Time
	Notes      *string
	CreatedAt  time.Time
}

// NewMeasurement creates a new Measurement with generated UUID and current timestamp.
func NewMeasurement(t MeasurementType, value float64) *Measurement {
	now := time.Now()
	return &Measurement{
		ID:         uuid.New(),
		Type:       t,
		Value:      value,
		Unit:       MeasurementUnits[t],
		RecordedAt: now,
		CreatedAt:  now,
	}
}

// WithRecordedAt sets a custom recorded_at timestamp.
func (m *Measurement) WithRecordedAt(t time.Time) *Measurement {
	m.RecordedAt = t
	return m
}

// WithNotes sets notes on the measurement.
func (m *Measurement) WithNotes(notes string) *Measurement {
	m.Notes = &notes
	return m
}

// ABOUTME: CrossFit movement and benchmark WOD models.
// ABOUTME: Benchmark WODs carry up to four ordered movement sub-records.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MovementCategory classifies a CrossFit movement.
type MovementCategory string

const (
	MovementGymnastics    MovementCategory = "gymnastics"
	MovementWeightlifting MovementCategory = "weightlifting"
	MovementMonostructural MovementCategory = "monostructural"
	MovementOtherCategory MovementCategory = "other"
)

// ParseMovementCategory decodes a free-text category, defaulting to other.
func ParseMovementCategory(s string) MovementCategory {
	switch MovementCategory(strings.ToLower(strings.TrimSpace(s))) {
	case MovementGymnastics, MovementWeightlifting, MovementMonostructural:
		return MovementCategory(strings.ToLower(strings.TrimSpace(s)))
	default:
		return MovementOtherCategory
	}
}

// CrossFitMovement is a seeded reference movement with scaling guidance.
type CrossFitMovement struct {
	ID           uuid.UUID
	NameEN       string
	NameTR       string
	Category     MovementCategory
	Equipment    Equipment
	ScalingNotes string
	CreatedAt    time.Time
}

// WODType classifies a benchmark workout's scoring scheme.
type WODType string

const (
	WODForTime WODType = "for_time"
	WODAMRAP   WODType = "amrap"
	WODEMOM    WODType = "emom"
	WODTabata  WODType = "tabata"
	WODOther   WODType = "other"
)

// ParseWODType decodes a free-text WOD type, defaulting to other.
func ParseWODType(s string) WODType {
	switch WODType(strings.ToLower(strings.TrimSpace(s))) {
	case WODForTime, WODAMRAP, WODEMOM, WODTabata:
		return WODType(strings.ToLower(strings.TrimSpace(s)))
	default:
		return WODOther
	}
}

// BenchmarkWOD is a named benchmark workout (e.g. Fran, Cindy).
type BenchmarkWOD struct {
	ID             uuid.UUID
	Name           string
	Type           WODType
	TimeCapMinutes *int
	Description    string
	Movements      []BenchmarkMovement
	CreatedAt      time.Time
}

// BenchmarkMovement is one movement line of a benchmark WOD.
// Position preserves the movement order within the workout.
type BenchmarkMovement struct {
	ID       uuid.UUID
	WODID    uuid.UUID
	Name     string
	Reps     int
	RxWeight float64
	Position int
}

// ABOUTME: Cardio workout template model with interval segments.
// ABOUTME: Segments are parsed from the bundled CSV's compact segment syntax.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CardioActivity identifies the cardio modality.
type CardioActivity string

const (
	CardioRun  CardioActivity = "run"
	CardioRow  CardioActivity = "row"
	CardioBike CardioActivity = "bike"
	CardioSki  CardioActivity = "ski"
	CardioSwim CardioActivity = "swim"
	CardioWalk CardioActivity = "walk"
	CardioOther CardioActivity = "other"
)

// ParseCardioActivity decodes a free-text activity, defaulting to other.
func ParseCardioActivity(s string) CardioActivity {
	switch CardioActivity(strings.ToLower(strings.TrimSpace(s))) {
	case CardioRun, CardioRow, CardioBike, CardioSki, CardioSwim, CardioWalk:
		return CardioActivity(strings.ToLower(strings.TrimSpace(s)))
	default:
		return CardioOther
	}
}

// CardioWorkout is a seeded cardio session template.
type CardioWorkout struct {
	ID              uuid.UUID
	NameEN          string
	NameTR          string
	Activity        CardioActivity
	DurationMinutes int
	TargetDistance  float64 // meters, 0 when open-ended
	Segments        []CardioSegment
	CreatedAt       time.Time
}

// CardioSegment is one interval of a cardio workout template.
type CardioSegment struct {
	ID        uuid.UUID
	WorkoutID uuid.UUID
	Label     string
	Seconds   int
	Position  int
}

// ABOUTME: Exercise model with category and equipment enums.
// ABOUTME: String-typed fields are decoded to closed enums at the parser boundary.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ExerciseCategory classifies an exercise by training focus.
type ExerciseCategory string

const (
	ExerciseStrength  ExerciseCategory = "strength"
	ExerciseCore      ExerciseCategory = "core"
	ExerciseCardio    ExerciseCategory = "cardio"
	ExerciseMobility  ExerciseCategory = "mobility"
	ExercisePlyo      ExerciseCategory = "plyometric"
	ExerciseOlympic   ExerciseCategory = "olympic"
	ExerciseOtherType ExerciseCategory = "other"
)

// ParseExerciseCategory decodes a free-text category, defaulting to other.
func ParseExerciseCategory(s string) ExerciseCategory {
	switch ExerciseCategory(strings.ToLower(strings.TrimSpace(s))) {
	case ExerciseStrength, ExerciseCore, ExerciseCardio, ExerciseMobility,
		ExercisePlyo, ExerciseOlympic:
		return ExerciseCategory(strings.ToLower(strings.TrimSpace(s)))
	default:
		return ExerciseOtherType
	}
}

// Equipment identifies the primary equipment an exercise needs.
type Equipment string

const (
	EquipmentBarbell    Equipment = "barbell"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentKettlebell Equipment = "kettlebell"
	EquipmentCable      Equipment = "cable"
	EquipmentMachine    Equipment = "machine"
	EquipmentBodyweight Equipment = "bodyweight"
	EquipmentBands      Equipment = "bands"
	EquipmentOther      Equipment = "other"
)

// ParseEquipment decodes a free-text equipment field, defaulting to other.
func ParseEquipment(s string) Equipment {
	switch Equipment(strings.ToLower(strings.TrimSpace(s))) {
	case EquipmentBarbell, EquipmentDumbbell, EquipmentKettlebell,
		EquipmentCable, EquipmentMachine, EquipmentBodyweight, EquipmentBands:
		return Equipment(strings.ToLower(strings.TrimSpace(s)))
	default:
		return EquipmentOther
	}
}

// equipmentRank orders equipment by preference when duplicate exercise
// names collide in curated import mode. Lower rank wins.
var equipmentRank = map[Equipment]int{
	EquipmentBarbell:    0,
	EquipmentDumbbell:   1,
	EquipmentKettlebell: 2,
	EquipmentCable:      3,
	EquipmentMachine:    4,
	EquipmentBodyweight: 5,
	EquipmentBands:      6,
	EquipmentOther:      7,
}

// Rank returns the equipment preference rank used for duplicate-name
// resolution. Lower is preferred.
func (e Equipment) Rank() int {
	if r, ok := equipmentRank[e]; ok {
		return r
	}
	return equipmentRank[EquipmentOther]
}

// Exercise is a seeded reference exercise with localized names.
type Exercise struct {
	ID          uuid.UUID
	NameEN      string
	NameTR      string
	Category    ExerciseCategory
	Equipment   Equipment
	Compound    bool
	Description string
	CreatedAt   time.Time
}

// NewExercise creates an Exercise with a generated UUID.
func NewExercise(nameEN, nameTR string, category ExerciseCategory, equipment Equipment) *Exercise {
	return &Exercise{
		ID:        uuid.New(),
		NameEN:    nameEN,
		NameTR:    nameTR,
		Category:  category,
		Equipment: equipment,
		CreatedAt: time.Now(),
	}
}

// ABOUTME: Tests for curated exercise import mode.
// ABOUTME: Covers duplicate-name equipment preference and category quotas.
package seed

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporhocam/sporhocam/internal/models"
)

func TestCurateDedupesByEquipmentRank(t *testing.T) {
	machine := models.NewExercise("Squat", "Squat", models.ExerciseStrength, models.EquipmentMachine)
	barbell := models.NewExercise("squat", "Squat", models.ExerciseStrength, models.EquipmentBarbell)
	band := models.NewExercise("SQUAT", "Squat", models.ExerciseStrength, models.EquipmentBands)

	curated := curateExercises([]*models.Exercise{machine, barbell, band})
	require.Len(t, curated, 1)
	assert.Equal(t, models.EquipmentBarbell, curated[0].Equipment)
}

func TestCurateAppliesCategoryQuota(t *testing.T) {
	quota := curatedQuotas[models.ExercisePlyo]
	var parsed []*models.Exercise
	for i := 0; i < quota+3; i++ {
		parsed = append(parsed, models.NewExercise(
			fmt.Sprintf("Jump %d", i), fmt.Sprintf("Atlama %d", i),
			models.ExercisePlyo, models.EquipmentBodyweight,
		))
	}

	curated := curateExercises(parsed)
	require.Len(t, curated, quota)
	// Source order is preserved; overflow drops from the tail.
	assert.Equal(t, "Jump 0", curated[0].NameEN)
	assert.Equal(t, fmt.Sprintf("Jump %d", quota-1), curated[quota-1].NameEN)
}

func TestCurateKeepsDistinctCategories(t *testing.T) {
	parsed := []*models.Exercise{
		models.NewExercise("Back Squat", "Arka Squat", models.ExerciseStrength, models.EquipmentBarbell),
		models.NewExercise("Plank", "Plank", models.ExerciseCore, models.EquipmentBodyweight),
		models.NewExercise("Running", "Koşu", models.ExerciseCardio, models.EquipmentOther),
	}
	curated := curateExercises(parsed)
	assert.Len(t, curated, 3)
}

// ABOUTME: Tests for the memoized exercise name resolver.
// ABOUTME: Covers cache stability across store mutation and tie-breaking.
package seed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sporhocam/sporhocam/internal/models"
)

type fakeMatcher struct {
	matches []*models.Exercise
	calls   int
}

func (f *fakeMatcher) MatchExercises(name string) ([]*models.Exercise, error) {
	f.calls++
	return f.matches, nil
}

func TestResolveMemoized(t *testing.T) {
	first := models.NewExercise("Bench Press", "Bench Press", models.ExerciseStrength, models.EquipmentBarbell)
	store := &fakeMatcher{matches: []*models.Exercise{first}}
	r := NewExerciseResolver(store)

	id, ok := r.Resolve("Bench Press")
	require.True(t, ok)
	assert.Equal(t, first.ID, id)

	// Mutating the store must not change a memoized resolution.
	store.matches = []*models.Exercise{
		models.NewExercise("Bench Press", "Bench Press", models.ExerciseStrength, models.EquipmentDumbbell),
	}
	again, ok := r.Resolve("bench press")
	require.True(t, ok)
	assert.Equal(t, id, again)
	assert.Equal(t, 1, store.calls)
}

func TestResolveExactBeatsSubstring(t *testing.T) {
	exact := models.NewExercise("Squat", "Squat", models.ExerciseStrength, models.EquipmentBodyweight)
	substring := models.NewExercise("Back Squat", "Arka Squat", models.ExerciseStrength, models.EquipmentBarbell)
	store := &fakeMatcher{matches: []*models.Exercise{substring, exact}}

	id, ok := NewExerciseResolver(store).Resolve("squat")
	require.True(t, ok)
	assert.Equal(t, exact.ID, id)
}

func TestResolveTieGoesToLowestID(t *testing.T) {
	a := models.NewExercise("Front Squat", "Ön Squat", models.ExerciseStrength, models.EquipmentBarbell)
	b := models.NewExercise("Back Squat", "Arka Squat", models.ExerciseStrength, models.EquipmentBarbell)
	store := &fakeMatcher{matches: []*models.Exercise{a, b}}

	want := a.ID
	if b.ID.String() < a.ID.String() {
		want = b.ID
	}

	id, ok := NewExerciseResolver(store).Resolve("squat")
	require.True(t, ok)
	assert.Equal(t, want, id)
}

func TestResolveNoMatch(t *testing.T) {
	store := &fakeMatcher{}
	id, ok := NewExerciseResolver(store).Resolve("unknown movement")
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, id)
}

func TestResolveBlankName(t *testing.T) {
	store := &fakeMatcher{}
	_, ok := NewExerciseResolver(store).Resolve("  ")
	assert.False(t, ok)
	assert.Zero(t, store.calls)
}

// ABOUTME: Exercise name-to-identifier resolver with in-pass memoization.
// ABOUTME: Ties are broken deterministically: exact match first, then lowest ID.
package seed

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sporhocam/sporhocam/internal/models"
)

// ExerciseMatcher is the store query the resolver depends on.
type ExerciseMatcher interface {
	MatchExercises(name string) ([]*models.Exercise, error)
}

// ExerciseResolver maps free-text exercise names from program and routine
// definition files to seeded exercise identifiers. Resolutions are
// memoized for the remainder of the seeding pass: once a name resolves,
// it keeps resolving to the same identifier even if the store changes.
type ExerciseResolver struct {
	store ExerciseMatcher
	cache map[string]uuid.UUID
}

// NewExerciseResolver creates a resolver over the given store.
func NewExerciseResolver(store ExerciseMatcher) *ExerciseResolver {
	return &ExerciseResolver{
		store: store,
		cache: make(map[string]uuid.UUID),
	}
}

// Resolve returns the identifier of the exercise matching name, or false
// when nothing matches. Matching is a case-insensitive substring search
// against both localized names. Among candidates, an exact name match
// beats a substring match; remaining ties go to the lexicographically
// smallest identifier.
func (r *ExerciseResolver) Resolve(name string) (uuid.UUID, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return uuid.Nil, false
	}
	if id, ok := r.cache[key]; ok {
		return id, true
	}

	matches, err := r.store.MatchExercises(key)
	if err != nil || len(matches) == 0 {
		return uuid.Nil, false
	}

	best := matches[0]
	bestExact := isExactName(best, key)
	for _, m := range matches[1:] {
		exact := isExactName(m, key)
		switch {
		case exact && !bestExact:
			best, bestExact = m, true
		case exact == bestExact && m.ID.String() < best.ID.String():
			best = m
		}
	}

	r.cache[key] = best.ID
	return best.ID, true
}

func isExactName(e *models.Exercise, key string) bool {
	return strings.EqualFold(e.NameEN, key) || strings.EqualFold(e.NameTR, key)
}

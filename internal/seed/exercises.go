// ABOUTME: Exercise category seeder with curated quota-limited import mode.
// ABOUTME: Duplicate names collapse to one record by equipment preference.
package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/sporhocam/sporhocam/internal/models"
)

// exercisesFile columns: nameEN, nameTR, category, equipment, compound, description.
const (
	exercisesFile    = "exercises.csv"
	exercisesMinCols = 4
)

// curatedQuotas bound how many exercises per category the curated import
// mode keeps.
var curatedQuotas = map[models.ExerciseCategory]int{
	models.ExerciseStrength:  60,
	models.ExerciseCore:      12,
	models.ExerciseCardio:    10,
	models.ExerciseMobility:  8,
	models.ExercisePlyo:      6,
	models.ExerciseOlympic:   6,
	models.ExerciseOtherType: 8,
}

func (s *Seeder) seedExercises(ctx context.Context) (int, error) {
	rows, err := s.src.ReadCSV(exercisesFile)
	if err != nil {
		return 0, err
	}

	var parsed []*models.Exercise
	for i, row := range rows[1:] {
		if len(row) < exercisesMinCols {
			s.log.WithFields(logrus.Fields{"file": exercisesFile, "row": i + 2}).
				Warn("skipping short row")
			continue
		}
		e := models.NewExercise(
			row[0], row[1],
			models.ParseExerciseCategory(row[2]),
			models.ParseEquipment(row[3]),
		)
		e.Compound = boolField(field(row, 4))
		e.Description = field(row, 5)
		parsed = append(parsed, e)
	}

	if s.opts.Curated {
		parsed = curateExercises(parsed)
	}

	inserted := 0
	batch := make([]*models.Exercise, 0, s.opts.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.repo.CreateExercises(batch); err != nil {
			return fmt.Errorf("%w: %v", ErrDatabase, err)
		}
		inserted += len(batch)
		batch = batch[:0]
		return nil
	}

	for _, e := range parsed {
		batch = append(batch, e)
		if len(batch) >= s.opts.BatchSize {
			if err := flush(); err != nil {
				return inserted, err
			}
		}
	}
	if err := flush(); err != nil {
		return inserted, err
	}
	return inserted, nil
}

// curateExercises collapses duplicate names to the preferred-equipment
// record and applies the per-category quotas, preserving source order.
func curateExercises(parsed []*models.Exercise) []*models.Exercise {
	byName := make(map[string]*models.Exercise)
	var order []string
	for _, e := range parsed {
		key := strings.ToLower(e.NameEN)
		existing, ok := byName[key]
		if !ok {
			byName[key] = e
			order = append(order, key)
			continue
		}
		if e.Equipment.Rank() < existing.Equipment.Rank() {
			byName[key] = e
		}
	}

	taken := make(map[models.ExerciseCategory]int)
	var curated []*models.Exercise
	for _, key := range order {
		e := byName[key]
		quota, ok := curatedQuotas[e.Category]
		if !ok {
			quota = curatedQuotas[models.ExerciseOtherType]
		}
		if taken[e.Category] >= quota {
			continue
		}
		taken[e.Category]++
		curated = append(curated, e)
	}
	return curated
}

// ABOUTME: Food category seeder reading the bundled foods CSV snapshot.
// ABOUTME: Macro fields default to zero on parse failure rather than aborting.
package seed

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/sporhocam/sporhocam/internal/models"
)

// foodsFile columns: nameEN, nameTR, brand, calories, protein, carbs, fat, category.
const (
	foodsFile    = "foods.csv"
	foodsMinCols = 7
)

func (s *Seeder) seedFoods(ctx context.Context) (int, error) {
	rows, err := s.src.ReadCSV(foodsFile)
	if err != nil {
		return 0, err
	}

	inserted := 0
	batch := make([]*models.Food, 0, s.opts.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.repo.CreateFoods(batch); err != nil {
			return fmt.Errorf("%w: %v", ErrDatabase, err)
		}
		inserted += len(batch)
		batch = batch[:0]
		return nil
	}

	for i, row := range rows[1:] {
		if len(row) < foodsMinCols {
			s.log.WithFields(logrus.Fields{"file": foodsFile, "row": i + 2}).
				Warn("skipping short row")
			continue
		}

		f := models.NewFood(row[0], row[1], models.ParseFoodCategory(field(row, 7)))
		f.Brand = field(row, 2)
		f.Calories = floatField(row[3])
		f.Protein = floatField(row[4])
		f.Carbs = floatField(row[5])
		f.Fat = floatField(row[6])

		batch = append(batch, f)
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

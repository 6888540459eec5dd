// ABOUTME: Food alias pass generating ASCII-folded search aliases.
// ABOUTME: Folds Turkish letters so "sut" finds "Süt" without diacritics.
package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sporhocam/sporhocam/internal/models"
)

// turkishFolder maps Turkish letters to their closest ASCII forms.
// Case variants are included because aliases are stored lowercased
// after folding the original mixed-case name.
var turkishFolder = strings.NewReplacer(
	"ç", "c", "Ç", "c",
	"ğ", "g", "Ğ", "g",
	"ı", "i", "İ", "i",
	"ö", "o", "Ö", "o",
	"ş", "s", "Ş", "s",
	"ü", "u", "Ü", "u",
)

// foldTurkish returns the lowercase ASCII-folded form of name, or ""
// when folding changes nothing.
func foldTurkish(name string) string {
	folded := strings.ToLower(turkishFolder.Replace(name))
	if folded == strings.ToLower(name) {
		return ""
	}
	return folded
}

// seedFoodAliases walks the seeded foods and stores an ASCII-folded
// alias for every Turkish name containing diacritics.
func (s *Seeder) seedFoodAliases(ctx context.Context) (int, error) {
	foods, err := s.repo.ListFoods(0)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	inserted := 0
	batch := make([]*models.FoodAlias, 0, s.opts.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.repo.CreateFoodAliases(batch); err != nil {
			return fmt.Errorf("%w: %v", ErrDatabase, err)
		}
		inserted += len(batch)
		batch = batch[:0]
		return nil
	}

	for _, f := range foods {
		folded := foldTurkish(f.NameTR)
		if folded == "" {
			continue
		}
		batch = append(batch, &models.FoodAlias{
			ID:     uuid.New(),
			FoodID: f.ID,
			Alias:  folded,
		})
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

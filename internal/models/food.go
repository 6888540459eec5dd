// ABOUTME: Food model with per-100g macros and a closed category enum.
// ABOUTME: FoodAlias provides extra search names for seeded foods.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FoodCategory classifies a food item.
type FoodCategory string

const (
	FoodMeat       FoodCategory = "meat"
	FoodDairy      FoodCategory = "dairy"
	FoodGrains     FoodCategory = "grains"
	FoodBakery     FoodCategory = "bakery"
	FoodVegetables FoodCategory = "vegetables"
	FoodFruits     FoodCategory = "fruits"
	FoodNuts       FoodCategory = "nuts"
	FoodBeverages  FoodCategory = "beverages"
	FoodSnacks     FoodCategory = "snacks"
	FoodDesserts   FoodCategory = "desserts"
	FoodCondiments FoodCategory = "condiments"
	FoodSeafood    FoodCategory = "seafood"
	FoodFastFood   FoodCategory = "fastfood"
	FoodTurkish    FoodCategory = "turkish"
	FoodOther      FoodCategory = "other"
)

var allFoodCategories = map[FoodCategory]bool{
	FoodMeat: true, FoodDairy: true, FoodGrains: true, FoodBakery: true,
	FoodVegetables: true, FoodFruits: true, FoodNuts: true, FoodBeverages: true,
	FoodSnacks: true, FoodDesserts: true, FoodCondiments: true, FoodSeafood: true,
	FoodFastFood: true, FoodTurkish: true,
}

// ParseFoodCategory decodes a free-text category, defaulting to other.
func ParseFoodCategory(s string) FoodCategory {
	c := FoodCategory(strings.ToLower(strings.TrimSpace(s)))
	if allFoodCategories[c] {
		return c
	}
	return FoodOther
}

// Food is a seeded reference food item. Macros are per 100g.
type Food struct {
	ID        uuid.UUID
	NameEN    string
	NameTR    string
	Brand     string
	Calories  float64
	Protein   float64
	Carbs     float64
	Fat       float64
	Category  FoodCategory
	CreatedAt time.Time
}

// NewFood creates a Food with a generated UUID.
func NewFood(nameEN, nameTR string, category FoodCategory) *Food {
	return &Food{
		ID:        uuid.New(),
		NameEN:    nameEN,
		NameTR:    nameTR,
		Category:  category,
		CreatedAt: time.Now(),
	}
}

// FoodAlias is an alternate search name for a seeded food.
type FoodAlias struct {
	ID     uuid.UUID
	FoodID uuid.UUID
	Alias  string
}

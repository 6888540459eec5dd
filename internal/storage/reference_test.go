// ABOUTME: Tests for reference-data batch inserts, counts, search, and clears.
// ABOUTME: Covers the store operations the seeding pipeline depends on.
package storage

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sporhocam/sporhocam/internal/models"
)

func TestCreateAndCountExercises(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	count, err := db.CountCategory(models.DataExercises)
	if err != nil {
		t.Fatalf("CountCategory failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected empty table, got %d", count)
	}

	batch := []*models.Exercise{
		models.NewExercise("Bench Press", "Bench Press", models.ExerciseStrength, models.EquipmentBarbell),
		models.NewExercise("Plank", "Plank", models.ExerciseCore, models.EquipmentBodyweight),
	}
	if err := db.CreateExercises(batch); err != nil {
		t.Fatalf("CreateExercises failed: %v", err)
	}

	count, err = db.CountCategory(models.DataExercises)
	if err != nil {
		t.Fatalf("CountCategory failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 exercises, got %d", count)
	}
}

func TestSearchExercises(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	batch := []*models.Exercise{
		models.NewExercise("Barbell Squat", "Halter Squat", models.ExerciseStrength, models.EquipmentBarbell),
		models.NewExercise("Front Squat", "Ön Squat", models.ExerciseStrength, models.EquipmentBarbell),
		models.NewExercise("Deadlift", "Deadlift", models.ExerciseStrength, models.EquipmentBarbell),
	}
	if err := db.CreateExercises(batch); err != nil {
		t.Fatalf("CreateExercises failed: %v", err)
	}

	got, err := db.SearchExercises("squat", 0)
	if err != nil {
		t.Fatalf("SearchExercises failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Expected 2 squat matches, got %d", len(got))
	}

	// Turkish name matches too
	got, err = db.SearchExercises("halter", 0)
	if err != nil {
		t.Fatalf("SearchExercises failed: %v", err)
	}
	if len(got) != 1 || got[0].NameEN != "Barbell Squat" {
		t.Errorf("Expected Turkish-name match for Barbell Squat, got %v", got)
	}
}

func TestMatchExercisesOrderedByID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	batch := []*models.Exercise{
		models.NewExercise("Squat", "Squat", models.ExerciseStrength, models.EquipmentBarbell),
		models.NewExercise("Goblet Squat", "Goblet Squat", models.ExerciseStrength, models.EquipmentDumbbell),
	}
	if err := db.CreateExercises(batch); err != nil {
		t.Fatalf("CreateExercises failed: %v", err)
	}

	matches, err := db.MatchExercises("squat")
	if err != nil {
		t.Fatalf("MatchExercises failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}
	if strings.Compare(matches[0].ID.String(), matches[1].ID.String()) > 0 {
		t.Error("Expected matches ordered by id")
	}
}

func TestMatchExercisesTurkishCaseFolding(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	batch := []*models.Exercise{
		models.NewExercise("Push Up", "Şınav", models.ExerciseStrength, models.EquipmentBodyweight),
		models.NewExercise("Pull Up", "Barfiks", models.ExerciseStrength, models.EquipmentBodyweight),
	}
	if err := db.CreateExercises(batch); err != nil {
		t.Fatalf("CreateExercises failed: %v", err)
	}

	// SQLite's LOWER() folds ASCII only; the lowered Turkish query must
	// still find the capitalized stored name.
	matches, err := db.MatchExercises("şınav")
	if err != nil {
		t.Fatalf("MatchExercises failed: %v", err)
	}
	if len(matches) != 1 || matches[0].NameEN != "Push Up" {
		t.Errorf("Expected lowered Turkish query to match Şınav, got %v", matches)
	}

	got, err := db.SearchExercises("şınav", 0)
	if err != nil {
		t.Fatalf("SearchExercises failed: %v", err)
	}
	if len(got) != 1 || got[0].NameEN != "Push Up" {
		t.Errorf("Expected lowered Turkish search to match Şınav, got %v", got)
	}
}

func TestCreateFoodsAndAliases(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	f := models.NewFood("Chicken Breast", "Tavuk Göğsü", models.FoodMeat)
	f.Calories = 165
	f.Protein = 31

	if err := db.CreateFoods([]*models.Food{f}); err != nil {
		t.Fatalf("CreateFoods failed: %v", err)
	}

	alias := &models.FoodAlias{ID: uuid.New(), FoodID: f.ID, Alias: "tavuk gogsu"}
	if err := db.CreateFoodAliases([]*models.FoodAlias{alias}); err != nil {
		t.Fatalf("CreateFoodAliases failed: %v", err)
	}

	// Search hits the alias
	got, err := db.SearchFoods("gogsu", 0)
	if err != nil {
		t.Fatalf("SearchFoods failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != f.ID {
		t.Errorf("Expected alias search to find food, got %v", got)
	}
}

func TestClearCategoryCascades(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	f := models.NewFood("Oats", "Yulaf", models.FoodGrains)
	if err := db.CreateFoods([]*models.Food{f}); err != nil {
		t.Fatalf("CreateFoods failed: %v", err)
	}
	alias := &models.FoodAlias{ID: uuid.New(), FoodID: f.ID, Alias: "oatmeal"}
	if err := db.CreateFoodAliases([]*models.FoodAlias{alias}); err != nil {
		t.Fatalf("CreateFoodAliases failed: %v", err)
	}

	if err := db.ClearCategory(models.DataFoods); err != nil {
		t.Fatalf("ClearCategory failed: %v", err)
	}

	count, err := db.CountCategory(models.DataFoods)
	if err != nil {
		t.Fatalf("CountCategory failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 foods after clear, got %d", count)
	}

	got, err := db.SearchFoods("oatmeal", 0)
	if err != nil {
		t.Fatalf("SearchFoods failed: %v", err)
	}
	if len(got) != 0 {
		t.Error("Expected aliases removed by cascade")
	}
}

func TestCreateBenchmarksWithMovements(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	cap := 10
	w := &models.BenchmarkWOD{
		ID:             uuid.New(),
		Name:           "Fran",
		Type:           models.WODForTime,
		TimeCapMinutes: &cap,
	}
	w.Movements = []models.BenchmarkMovement{
		{ID: uuid.New(), WODID: w.ID, Name: "Thruster", Reps: 21, RxWeight: 43, Position: 0},
		{ID: uuid.New(), WODID: w.ID, Name: "Pull-up", Reps: 21, Position: 1},
	}

	if err := db.CreateBenchmarks([]*models.BenchmarkWOD{w}); err != nil {
		t.Fatalf("CreateBenchmarks failed: %v", err)
	}

	count, err := db.CountCategory(models.DataBenchmarks)
	if err != nil {
		t.Fatalf("CountCategory failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 benchmark, got %d", count)
	}
}

func TestNormalizeNames(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	e := models.NewExercise("  Bench Press ", "Bench Press", models.ExerciseStrength, models.EquipmentBarbell)
	if err := db.CreateExercises([]*models.Exercise{e}); err != nil {
		t.Fatalf("CreateExercises failed: %v", err)
	}

	changed, err := db.NormalizeNames()
	if err != nil {
		t.Fatalf("NormalizeNames failed: %v", err)
	}
	if changed != 1 {
		t.Errorf("Expected 1 normalized row, got %d", changed)
	}

	got, err := db.SearchExercises("bench press", 0)
	if err != nil {
		t.Fatalf("SearchExercises failed: %v", err)
	}
	if len(got) != 1 || got[0].NameEN != "Bench Press" {
		t.Errorf("Expected trimmed name, got %v", got)
	}
}

func TestNormalizeNamesCollapsesInternalSpaces(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	e := models.NewExercise("Bench  Press", "Bench   Press", models.ExerciseStrength, models.EquipmentBarbell)
	f := models.NewFood("Greek  Yogurt", "Süzme Yoğurt", models.FoodDairy)
	if err := db.CreateExercises([]*models.Exercise{e}); err != nil {
		t.Fatalf("CreateExercises failed: %v", err)
	}
	if err := db.CreateFoods([]*models.Food{f}); err != nil {
		t.Fatalf("CreateFoods failed: %v", err)
	}

	changed, err := db.NormalizeNames()
	if err != nil {
		t.Fatalf("NormalizeNames failed: %v", err)
	}
	if changed != 2 {
		t.Errorf("Expected 2 normalized rows, got %d", changed)
	}

	got, err := db.MatchExercises("bench press")
	if err != nil {
		t.Fatalf("MatchExercises failed: %v", err)
	}
	if len(got) != 1 || got[0].NameEN != "Bench Press" || got[0].NameTR != "Bench Press" {
		t.Errorf("Expected collapsed names, got %v", got)
	}

	foods, err := db.SearchFoods("greek yogurt", 0)
	if err != nil {
		t.Fatalf("SearchFoods failed: %v", err)
	}
	if len(foods) != 1 || foods[0].NameEN != "Greek Yogurt" {
		t.Errorf("Expected collapsed food name, got %v", foods)
	}

	// A second pass finds nothing left to change
	changed, err = db.NormalizeNames()
	if err != nil {
		t.Fatalf("NormalizeNames failed: %v", err)
	}
	if changed != 0 {
		t.Errorf("Expected idempotent second pass, got %d changes", changed)
	}
}

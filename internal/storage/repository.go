// ABOUTME: Repository interface for measurement and reference-data storage.
// ABOUTME: Defines the contract the seeding pipeline and CLI operate against.
package storage

import (
	"time"

	"github.com/sporhocam/sporhocam/internal/models"
)

// Repository defines the storage interface for tracker data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Measurement operations
	CreateMeasurement(m *models.Measurement) error
	GetMeasurement(idOrPrefix string) (*models.Measurement, error)
	ListMeasurements(t *models.MeasurementType, limit int) ([]*models.Measurement, error)
	MeasurementSeries(t models.MeasurementType, since time.Time) ([]*models.Measurement, error)
	LatestMeasurement(t models.MeasurementType) (*models.Measurement, error)
	DeleteMeasurement(idOrPrefix string) error

	// Reference-data category operations (seeding targets)
	CountCategory(cat models.DataCategory) (int, error)
	ClearCategory(cat models.DataCategory) error
	NormalizeNames() (int, error)

	CreateExercises(batch []*models.Exercise) error
	SearchExercises(query string, limit int) ([]*models.Exercise, error)
	MatchExercises(name string) ([]*models.Exercise, error)

	CreateFoods(batch []*models.Food) error
	SearchFoods(query string, limit int) ([]*models.Food, error)
	ListFoods(limit int) ([]*models.Food, error)
	CreateFoodAliases(batch []*models.FoodAlias) error

	CreateMovements(batch []*models.CrossFitMovement) error
	CreateBenchmarks(batch []*models.BenchmarkWOD) error
	CreateCardioWorkouts(batch []*models.CardioWorkout) error
	CreatePrograms(batch []*models.LiftProgram) error
	CreateRoutines(batch []*models.RoutineTemplate) error

	// Seeding ledger
	SeedLedger(cat models.DataCategory) (*SeedLedgerEntry, error)
	BeginSeed(cat models.DataCategory, version int) error
	CompleteSeed(cat models.DataCategory) error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}

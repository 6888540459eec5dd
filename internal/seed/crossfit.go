// ABOUTME: CrossFit movement and benchmark WOD seeders.
// ABOUTME: Benchmarks attach up to four movements by fixed column-group offsets.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sporhocam/sporhocam/internal/models"
)

// movementsFile columns: nameEN, nameTR, category, equipment, scalingNotes.
const (
	movementsFile    = "crossfit_movements.csv"
	movementsMinCols = 4
)

// benchmarksFile columns: name, type, timeCapMinutes, description, then up
// to four (movement, reps, rxWeight) groups starting at column 4.
const (
	benchmarksFile     = "benchmark_wods.csv"
	benchmarksMinCols  = 4
	benchmarkMaxGroups = 4
	benchmarkGroupBase = 4
	benchmarkGroupSize = 3
)

func (s *Seeder) seedMovements(ctx context.Context) (int, error) {
	rows, err := s.src.ReadCSV(movementsFile)
	if err != nil {
		return 0, err
	}

	inserted := 0
	batch := make([]*models.CrossFitMovement, 0, s.opts.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.repo.CreateMovements(batch); err != nil {
			return fmt.Errorf("%w: %v", ErrDatabase, err)
		}
		inserted += len(batch)
		batch = batch[:0]
		return nil
	}

	for i, row := range rows[1:] {
		if len(row) < movementsMinCols {
			s.log.WithFields(logrus.Fields{"file": movementsFile, "row": i + 2}).
				Warn("skipping short row")
			continue
		}

		m := &models.CrossFitMovement{
			ID:           uuid.New(),
			NameEN:       row[0],
			NameTR:       row[1],
			Category:     models.ParseMovementCategory(row[2]),
			Equipment:    models.ParseEquipment(row[3]),
			ScalingNotes: field(row, 4),
			CreatedAt:    time.Now(),
		}

		batch = append(batch, m)
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

func (s *Seeder) seedBenchmarks(ctx context.Context) (int, error) {
	rows, err := s.src.ReadCSV(benchmarksFile)
	if err != nil {
		return 0, err
	}

	inserted := 0
	batch := make([]*models.BenchmarkWOD, 0, s.opts.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.repo.CreateBenchmarks(batch); err != nil {
			return fmt.Errorf("%w: %v", ErrDatabase, err)
		}
		inserted += len(batch)
		batch = batch[:0]
		return nil
	}

	for i, row := range rows[1:] {
		if len(row) < benchmarksMinCols {
			s.log.WithFields(logrus.Fields{"file": benchmarksFile, "row": i + 2}).
				Warn("skipping short row")
			continue
		}

		w := &models.BenchmarkWOD{
			ID:             uuid.New(),
			Name:           row[0],
			Type:           models.ParseWODType(row[1]),
			TimeCapMinutes: intFieldPtr(row[2]),
			Description:    field(row, 3),
			CreatedAt:      time.Now(),
		}

		for g := 0; g < benchmarkMaxGroups; g++ {
			base := benchmarkGroupBase + g*benchmarkGroupSize
			name := field(row, base)
			if name == "" {
				break
			}
			w.Movements = append(w.Movements, models.BenchmarkMovement{
				ID:       uuid.New(),
				WODID:    w.ID,
				Name:     name,
				Reps:     intField(field(row, base+1)),
				RxWeight: floatField(field(row, base+2)),
				Position: g,
			})
		}

		batch = append(batch, w)
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

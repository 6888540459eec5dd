// ABOUTME: Cardio template seeder with compact interval-segment parsing.
// ABOUTME: Segments use a "label:seconds" pair syntax separated by semicolons.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sporhocam/sporhocam/internal/models"
)

// cardioFile columns: nameEN, nameTR, activity, durationMinutes,
// targetDistance, segments.
const (
	cardioFile    = "cardio_workouts.csv"
	cardioMinCols = 4
)

func (s *Seeder) seedCardio(ctx context.Context) (int, error) {
	rows, err := s.src.ReadCSV(cardioFile)
	if err != nil {
		return 0, err
	}

	inserted := 0
	batch := make([]*models.CardioWorkout, 0, s.opts.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.repo.CreateCardioWorkouts(batch); err != nil {
			return fmt.Errorf("%w: %v", ErrDatabase, err)
		}
		inserted += len(batch)
		batch = batch[:0]
		return nil
	}

	for i, row := range rows[1:] {
		if len(row) < cardioMinCols {
			s.log.WithFields(logrus.Fields{"file": cardioFile, "row": i + 2}).
				Warn("skipping short row")
			continue
		}

		w := &models.CardioWorkout{
			ID:              uuid.New(),
			NameEN:          row[0],
			NameTR:          row[1],
			Activity:        models.ParseCardioActivity(row[2]),
			DurationMinutes: intField(row[3]),
			TargetDistance:  floatField(field(row, 4)),
			CreatedAt:       time.Now(),
		}
		w.Segments = parseCardioSegments(w.ID, field(row, 5))

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

// parseCardioSegments decodes "warmup:300;work:60;rest:90" into ordered
// segment records. Malformed pairs are dropped.
func parseCardioSegments(workoutID uuid.UUID, raw string) []models.CardioSegment {
	if raw == "" {
		return nil
	}

	var segments []models.CardioSegment
	for _, pair := range strings.Split(raw, ";") {
		label, seconds, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || label == "" {
			continue
		}
		segments = append(segments, models.CardioSegment{
			ID:        uuid.New(),
			WorkoutID: workoutID,
			Label:     strings.TrimSpace(label),
			Seconds:   intField(seconds),
			Position:  len(segments),
		})
	}
	return segments
}

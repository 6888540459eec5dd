// ABOUTME: Seeding pipeline orchestrator sequencing all category seeders.
// ABOUTME: Critical-category failure triggers the minimal fixture fallback.
package seed

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/sporhocam/sporhocam/internal/models"
	"github.com/sporhocam/sporhocam/internal/storage"
)

// DataVersion is the version of the bundled reference data. Bumping it
// causes completed ledger entries at older versions to be re-seeded.
const DataVersion = 1

// DefaultBatchSize is the flush size used when Options leaves it zero.
const DefaultBatchSize = 50

// Options control a seeding pass.
type Options struct {
	// BatchSize bounds how many records accumulate before a flush.
	BatchSize int
	// Curated limits exercise import to per-category quotas with
	// equipment-preference deduplication.
	Curated bool
	// Force clears and re-seeds every category.
	Force bool
}

// CategoryResult reports the outcome of one category stage.
type CategoryResult struct {
	Category models.DataCategory
	Inserted int
	Skipped  bool
	Err      error
}

// Summary reports the outcome of a whole seeding pass.
type Summary struct {
	Results      []CategoryResult
	Normalized   int
	Aliases      int
	FallbackUsed bool
}

// Seeder runs the seeding pipeline. All collaborators are injected;
// the seeder holds no global state.
type Seeder struct {
	repo     storage.Repository
	src      *Source
	log      logrus.FieldLogger
	progress ProgressFunc
	opts     Options
	resolver *ExerciseResolver

	lastFraction float64
}

// New creates a Seeder. A nil progress callback is replaced with a no-op.
func New(repo storage.Repository, src *Source, opts Options, log logrus.FieldLogger, progress ProgressFunc) *Seeder {
	if progress == nil {
		progress = NopProgress
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	return &Seeder{
		repo:     repo,
		src:      src,
		log:      log,
		progress: progress,
		opts:     opts,
		resolver: NewExerciseResolver(repo),
	}
}

// Run executes the pipeline: foods and exercises first, then secondary
// categories, then JSON-driven programs and routines, then the
// normalization and alias passes. A failure in a critical category
// aborts the main path and inserts the fallback fixture set; failures
// elsewhere are logged and skipped.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{}
	s.report(StageStarting, "")

	stages := []struct {
		cat   models.DataCategory
		stage Stage
		fn    func(context.Context) (int, error)
	}{
		{models.DataFoods, StageFoods, s.seedFoods},
		{models.DataExercises, StageExercises, s.seedExercises},
		{models.DataMovements, StageMovements, s.seedMovements},
		{models.DataBenchmarks, StageBenchmarks, s.seedBenchmarks},
		{models.DataCardio, StageCardio, s.seedCardio},
		{models.DataPrograms, StagePrograms, s.seedPrograms},
		{models.DataRoutines, StageRoutines, s.seedRoutines},
	}

	for _, st := range stages {
		result := s.runCategory(ctx, st.cat, st.stage, st.fn)
		summary.Results = append(summary.Results, result)

		if result.Err == nil {
			continue
		}
		if st.cat.Critical() {
			s.log.WithError(result.Err).WithField("category", st.cat).
				Error("critical category failed, entering fallback")
			s.reportError(result.Err)
			s.fallback(summary)
			s.report(StageCompleted, "")
			return summary, nil
		}
		s.log.WithError(result.Err).WithField("category", st.cat).
			Warn("category failed, skipping")
	}

	normalized, err := s.repo.NormalizeNames()
	if err != nil {
		s.log.WithError(err).Warn("normalization pass failed, skipping")
	}
	summary.Normalized = normalized
	s.report(StageNormalization, "")

	// Aliases are cleared alongside foods by cascade, so the pass only
	// runs when foods were freshly seeded; a skipped foods stage means
	// the aliases from the earlier pass are still in place.
	if freshlySeeded(summary, models.DataFoods) {
		aliases, err := s.seedFoodAliases(ctx)
		if err != nil {
			s.log.WithError(err).Warn("food alias pass failed, skipping")
		}
		summary.Aliases = aliases
	}
	s.report(StageFoodAliases, "")

	s.report(StageCompleted, "")
	return summary, nil
}

// freshlySeeded reports whether a category was seeded (not skipped)
// during this pass.
func freshlySeeded(summary *Summary, cat models.DataCategory) bool {
	for _, r := range summary.Results {
		if r.Category == cat {
			return r.Err == nil && !r.Skipped
		}
	}
	return false
}

// runCategory applies the idempotence rules, runs the category's seeder,
// and maintains its ledger entry.
func (s *Seeder) runCategory(ctx context.Context, cat models.DataCategory, stage Stage, fn func(context.Context) (int, error)) CategoryResult {
	result := CategoryResult{Category: cat}

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	skip, err := s.prepareCategory(cat)
	if err != nil {
		result.Err = err
		return result
	}
	if skip {
		s.log.WithField("category", cat).Info("already seeded, skipping")
		result.Skipped = true
		s.report(stage, "")
		return result
	}

	if err := s.repo.BeginSeed(cat, DataVersion); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrDatabase, err)
		return result
	}

	inserted, err := fn(ctx)
	if err != nil {
		result.Err = err
		return result
	}

	if err := s.repo.CompleteSeed(cat); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrDatabase, err)
		return result
	}

	result.Inserted = inserted
	s.log.WithFields(logrus.Fields{"category": cat, "inserted": inserted}).
		Info("category seeded")
	s.report(stage, "")
	return result
}

// prepareCategory decides whether a category needs seeding. A completed
// ledger entry (or a populated pre-ledger table) means skip; an
// incomplete ledger entry means an earlier pass was interrupted, so the
// partial batch is cleared and the category re-seeded.
func (s *Seeder) prepareCategory(cat models.DataCategory) (bool, error) {
	count, err := s.repo.CountCategory(cat)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	if s.opts.Force {
		if count > 0 {
			if err := s.repo.ClearCategory(cat); err != nil {
				return false, fmt.Errorf("%w: %v", ErrDatabase, err)
			}
		}
		return false, nil
	}

	entry, err := s.repo.SeedLedger(cat)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrDatabase, err)
	}

	switch {
	case entry == nil:
		// Pre-ledger database: fall back to the count heuristic.
		return count > 0, nil
	case entry.Completed && entry.Version >= DataVersion:
		return count > 0, nil
	default:
		// Interrupted or outdated pass: discard and re-seed.
		if count > 0 {
			s.log.WithField("category", cat).Warn("discarding partial seed")
			if err := s.repo.ClearCategory(cat); err != nil {
				return false, fmt.Errorf("%w: %v", ErrDatabase, err)
			}
		}
		return false, nil
	}
}

// fallback inserts the minimal fixture exercise set so the application
// stays usable after a critical seeding failure. The ledger entry is
// deliberately left incomplete so the next pass replaces the fixtures.
func (s *Seeder) fallback(summary *Summary) {
	summary.FallbackUsed = true

	count, err := s.repo.CountCategory(models.DataExercises)
	if err != nil || count > 0 {
		return
	}

	if err := s.repo.BeginSeed(models.DataExercises, DataVersion); err != nil {
		s.log.WithError(err).Error("critical failure: fallback ledger write failed")
		return
	}
	if err := s.repo.CreateExercises(fallbackExercises()); err != nil {
		s.log.WithError(err).Error("critical failure: fallback fixture insert failed")
		return
	}
	s.log.Warn("inserted fallback exercise fixtures")
}

// fallbackExercises is the fixed placeholder set inserted when the main
// pipeline cannot seed exercises.
func fallbackExercises() []*models.Exercise {
	return []*models.Exercise{
		models.NewExercise("Push-up", "Şınav", models.ExerciseStrength, models.EquipmentBodyweight),
		models.NewExercise("Squat", "Squat", models.ExerciseStrength, models.EquipmentBodyweight),
		models.NewExercise("Plank", "Plank", models.ExerciseCore, models.EquipmentBodyweight),
	}
}

// report emits a progress event, keeping the fraction monotone.
func (s *Seeder) report(stage Stage, message string) {
	fraction := stage.Fraction()
	if fraction < s.lastFraction {
		fraction = s.lastFraction
	}
	s.lastFraction = fraction
	s.progress(Progress{
		Stage:    stage,
		Title:    stage.Title(),
		Fraction: fraction,
		Message:  message,
	})
}

// reportError emits the error state at the last reached fraction.
func (s *Seeder) reportError(err error) {
	s.progress(Progress{
		Stage:    StageError,
		Title:    StageError.Title(),
		Fraction: s.lastFraction,
		Message:  err.Error(),
	})
}

// Field coercion helpers shared by the category seeders. Parse failures
// default rather than abort; a malformed number is a data-quality gap,
// not a reason to lose the row.

func floatField(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func intField(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

func intFieldPtr(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &v
}

func boolField(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

func field(row []string, i int) string {
	if i < len(row) {
		return strings.TrimSpace(row[i])
	}
	return ""
}

// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines measurement, reference-data, and seed-ledger tables.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS measurements (
		id TEXT PRIMARY KEY,
		measurement_type TEXT NOT NULL,
		value REAL NOT NULL,
		unit TEXT NOT NULL,
		recorded_at DATETIME NOT NULL,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS exercises (
		id TEXT PRIMARY KEY,
		name_en TEXT NOT NULL,
		name_tr TEXT NOT NULL,
		category TEXT NOT NULL,
		equipment TEXT NOT NULL,
		compound INTEGER NOT NULL DEFAULT 0,
		description TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS foods (
		id TEXT PRIMARY KEY,
		name_en TEXT NOT NULL,
		name_tr TEXT NOT NULL,
		brand TEXT,
		calories REAL NOT NULL DEFAULT 0,
		protein REAL NOT NULL DEFAULT 0,
		carbs REAL NOT NULL DEFAULT 0,
		fat REAL NOT NULL DEFAULT 0,
		category TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS food_aliases (
		id TEXT PRIMARY KEY,
		food_id TEXT NOT NULL,
		alias TEXT NOT NULL,
		FOREIGN KEY (food_id) REFERENCES foods(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS crossfit_movements (
		id TEXT PRIMARY KEY,
		name_en TEXT NOT NULL,
		name_tr TEXT NOT NULL,
		category TEXT NOT NULL,
		equipment TEXT NOT NULL,
		scaling_notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS benchmark_wods (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		wod_type TEXT NOT NULL,
		time_cap_minutes INTEGER,
		description TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS benchmark_movements (
		id TEXT PRIMARY KEY,
		wod_id TEXT NOT NULL,
		name TEXT NOT NULL,
		reps INTEGER NOT NULL DEFAULT 0,
		rx_weight REAL NOT NULL DEFAULT 0,
		position INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (wod_id) REFERENCES benchmark_wods(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS cardio_workouts (
		id TEXT PRIMARY KEY,
		name_en TEXT NOT NULL,
		name_tr TEXT NOT NULL,
		activity TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		target_distance REAL NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS cardio_segments (
		id TEXT PRIMARY KEY,
		workout_id TEXT NOT NULL,
		label TEXT NOT NULL,
		seconds INTEGER NOT NULL DEFAULT 0,
		position INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (workout_id) REFERENCES cardio_workouts(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS lift_programs (
		id TEXT PRIMARY KEY,
		name_en TEXT NOT NULL,
		name_tr TEXT NOT NULL,
		level TEXT,
		days_per_week INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS lift_workouts (
		id TEXT PRIMARY KEY,
		program_id TEXT NOT NULL,
		name TEXT NOT NULL,
		day INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (program_id) REFERENCES lift_programs(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS lift_exercises (
		id TEXT PRIMARY KEY,
		workout_id TEXT NOT NULL,
		exercise_id TEXT NOT NULL,
		name TEXT NOT NULL,
		sets INTEGER NOT NULL DEFAULT 0,
		reps INTEGER NOT NULL DEFAULT 0,
		percentage REAL NOT NULL DEFAULT 0,
		position INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (workout_id) REFERENCES lift_workouts(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS routine_templates (
		id TEXT PRIMARY KEY,
		name_en TEXT NOT NULL,
		name_tr TEXT NOT NULL,
		focus TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS routine_exercises (
		id TEXT PRIMARY KEY,
		routine_id TEXT NOT NULL,
		exercise_id TEXT NOT NULL,
		name TEXT NOT NULL,
		sets INTEGER NOT NULL DEFAULT 0,
		reps INTEGER NOT NULL DEFAULT 0,
		rest_seconds INTEGER NOT NULL DEFAULT 0,
		position INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (routine_id) REFERENCES routine_templates(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS seed_ledger (
		category TEXT PRIMARY KEY,
		version INTEGER NOT NULL DEFAULT 1,
		completed INTEGER NOT NULL DEFAULT 0,
		started_at DATETIME NOT NULL,
		completed_at DATETIME
	);

	CREATE INDEX IF NOT EXISTS idx_measurements_type ON measurements(measurement_type);
	CREATE INDEX IF NOT EXISTS idx_measurements_recorded ON measurements(recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_measurements_type_recorded ON measurements(measurement_type, recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_exercises_name_en ON exercises(name_en);
	CREATE INDEX IF NOT EXISTS idx_exercises_name_tr ON exercises(name_tr);
	CREATE INDEX IF NOT EXISTS idx_foods_name_en ON foods(name_en);
	CREATE INDEX IF NOT EXISTS idx_foods_name_tr ON foods(name_tr);
	CREATE INDEX IF NOT EXISTS idx_food_aliases_food ON food_aliases(food_id);
	CREATE INDEX IF NOT EXISTS idx_benchmark_movements_wod ON benchmark_movements(wod_id);
	CREATE INDEX IF NOT EXISTS idx_cardio_segments_workout ON cardio_segments(workout_id);
	CREATE INDEX IF NOT EXISTS idx_lift_workouts_program ON lift_workouts(program_id);
	CREATE INDEX IF NOT EXISTS idx_lift_exercises_workout ON lift_exercises(workout_id);
	CREATE INDEX IF NOT EXISTS idx_routine_exercises_routine ON routine_exercises(routine_id);
	`

	_, err := d.db.Exec(schema)
	return err
}

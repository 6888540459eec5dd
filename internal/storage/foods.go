// ABOUTME: Food batch insert, listing, search, and alias storage.
// ABOUTME: Aliases give seeded foods extra localized search names.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sporhocam/sporhocam/internal/models"
)

// CreateFoods inserts a batch of foods in a single transaction.
func (d *DB) CreateFoods(batch []*models.Food) error {
	if len(batch) == 0 {
		return nil
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("create foods: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
		INSERT INTO foods (id, name_en, name_tr, brand, calories, protein, carbs, fat, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("create foods: %w", err)
	}
	defer stmt.Close()

	for _, f := range batch {
		_, err := stmt.Exec(
			f.ID.String(),
			f.NameEN,
			f.NameTR,
			f.Brand,
			f.Calories,
			f.Protein,
			f.Carbs,
			f.Fat,
			string(f.Category),
			f.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("create food %s: %w", f.NameEN, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create foods: %w", err)
	}
	return nil
}

// SearchFoods finds foods whose names or aliases contain the query,
// case-insensitively, ordered by English name.
func (d *DB) SearchFoods(query string, limit int) ([]*models.Food, error) {
	q := `
		SELECT DISTINCT f.id, f.name_en, f.name_tr, f.brand, f.calories, f.protein,
		       f.carbs, f.fat, f.category, f.created_at
		FROM foods f
		LEFT JOIN food_aliases a ON a.food_id = f.id
		WHERE LOWER(f.name_en) LIKE '%' || LOWER(?) || '%'
		   OR LOWER(f.name_tr) LIKE '%' || LOWER(?) || '%'
		   OR LOWER(a.alias) LIKE '%' || LOWER(?) || '%'
		ORDER BY f.name_en
	`
	args := []interface{}{query, query, query}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("search foods: %w", err)
	}
	defer rows.Close()

	return scanFoods(rows)
}

// ListFoods retrieves seeded foods ordered by English name.
func (d *DB) ListFoods(limit int) ([]*models.Food, error) {
	q := `
		SELECT id, name_en, name_tr, brand, calories, protein, carbs, fat, category, created_at
		FROM foods
		ORDER BY name_en
	`
	var args []interface{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	defer rows.Close()

	return scanFoods(rows)
}

// CreateFoodAliases inserts a batch of food aliases in a single transaction.
func (d *DB) CreateFoodAliases(batch []*models.FoodAlias) error {
	if len(batch) == 0 {
		return nil
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("create food aliases: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`INSERT INTO food_aliases (id, food_id, alias) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("create food aliases: %w", err)
	}
	defer stmt.Close()

	for _, a := range batch {
		if _, err := stmt.Exec(a.ID.String(), a.FoodID.String(), a.Alias); err != nil {
			return fmt.Errorf("create food alias %s: %w", a.Alias, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create food aliases: %w", err)
	}
	return nil
}

func scanFoods(rows *sql.Rows) ([]*models.Food, error) {
	var foods []*models.Food

	for rows.Next() {
		var f models.Food
		var idStr, category, createdAt string
		var brand sql.NullString

		err := rows.Scan(&idStr, &f.NameEN, &f.NameTR, &brand, &f.Calories,
			&f.Protein, &f.Carbs, &f.Fat, &category, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}

		f.ID, _ = uuid.Parse(idStr)
		f.Category = models.FoodCategory(category)
		if brand.Valid {
			f.Brand = brand.String
		}
		f.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

		foods = append(foods, &f)
	}

	return foods, rows.Err()
}

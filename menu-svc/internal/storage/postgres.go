package storage

import (
	"context"
	"database/sql"
	"fmt"

	"restaurant-manager/menu-svc/internal/domain"
)

// PostgresRepository mirrors written snapshots into menu_items and
// menu_ratings, keyed by restaurant name.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS menu_items (
			restaurant TEXT NOT NULL,
			position INT NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			serving_size INT NOT NULL,
			num_calories INT NOT NULL,
			retail_price NUMERIC NOT NULL,
			wholesale_price NUMERIC NOT NULL,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			order_count INT NOT NULL DEFAULT 0,
			PRIMARY KEY (restaurant, name)
		)`,
		`CREATE TABLE IF NOT EXISTS menu_ratings (
			restaurant TEXT NOT NULL,
			item_name TEXT NOT NULL,
			position INT NOT NULL,
			reviewer_name TEXT NOT NULL,
			review_date TEXT NOT NULL,
			score INT NOT NULL CHECK (score BETWEEN 1 AND 5),
			PRIMARY KEY (restaurant, item_name, position)
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// SaveSnapshot replaces every row of the snapshot's restaurant in one
// transaction.
func (r *PostgresRepository) SaveSnapshot(ctx context.Context, snap *domain.Snapshot) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM menu_ratings WHERE restaurant = $1", snap.Name); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM menu_items WHERE restaurant = $1", snap.Name); err != nil {
		return err
	}

	for i, item := range snap.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO menu_items (restaurant, position, name, category, serving_size, num_calories,
				retail_price, wholesale_price, active, order_count)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, snap.Name, i, item.Name, string(item.Category), item.ServingSize, item.NumCalories,
			item.RetailPrice.String(), item.WholesalePrice.String(), item.Active, item.OrderCount); err != nil {
			return fmt.Errorf("insert item %q: %w", item.Name, err)
		}
		for j, rating := range item.Ratings {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO menu_ratings (restaurant, item_name, position, reviewer_name, review_date, score)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, snap.Name, item.Name, j, rating.ReviewerName, rating.Date, rating.Score); err != nil {
				return fmt.Errorf("insert rating for %q: %w", item.Name, err)
			}
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) LoadSnapshot(ctx context.Context, restaurant string) (*domain.Snapshot, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT name, category, serving_size, num_calories, retail_price, wholesale_price, active, order_count
		FROM menu_items
		WHERE restaurant = $1
		ORDER BY position
	`, restaurant)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snap := &domain.Snapshot{Name: restaurant}
	index := make(map[string]int)
	for rows.Next() {
		var (
			item     domain.MenuItem
			category string
		)
		if err := rows.Scan(&item.Name, &category, &item.ServingSize, &item.NumCalories,
			&item.RetailPrice, &item.WholesalePrice, &item.Active, &item.OrderCount); err != nil {
			return nil, err
		}
		item.Category = domain.Category(category)
		index[item.Name] = len(snap.Items)
		snap.Items = append(snap.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ratingRows, err := r.DB.QueryContext(ctx, `
		SELECT item_name, reviewer_name, review_date, score
		FROM menu_ratings
		WHERE restaurant = $1
		ORDER BY item_name, position
	`, restaurant)
	if err != nil {
		return nil, err
	}
	defer ratingRows.Close()

	for ratingRows.Next() {
		var (
			itemName string
			rating   domain.Rating
		)
		if err := ratingRows.Scan(&itemName, &rating.ReviewerName, &rating.Date, &rating.Score); err != nil {
			return nil, err
		}
		i, ok := index[itemName]
		if !ok {
			continue
		}
		snap.Items[i].Ratings = append(snap.Items[i].Ratings, rating)
	}
	return snap, ratingRows.Err()
}

package db

import (
	"context"
	"errors"
	"fmt"

	"fintrack-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateCategory(ctx context.Context, pool *pgxpool.Pool, category *models.Category) (*models.Category, error) {
	query := `
		INSERT INTO categories (id, name, type, color, icon)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, type, color, icon, created_at, updated_at
	`
	var c models.Category
	err := pool.QueryRow(ctx, query, uuid.NewString(), category.Name, category.Type, category.Color, category.Icon).
		Scan(&c.ID, &c.Name, &c.Type, &c.Color, &c.Icon, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &c, nil
}

func GetCategoryByID(ctx context.Context, pool *pgxpool.Pool, id string) (*models.Category, error) {
	query := `
		SELECT id, name, type, color, icon, created_at, updated_at
		FROM categories WHERE id = $1
	`
	var c models.Category
	err := pool.QueryRow(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.Type, &c.Color, &c.Icon, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &c, nil
}

// GetAllCategories lists categories newest-first, optionally restricted to
// one polarity (INCOME or EXPENSE).
func GetAllCategories(ctx context.Context, pool *pgxpool.Pool, categoryType string) ([]models.Category, error) {
	query := `
		SELECT id, name, type, color, icon, created_at, updated_at
		FROM categories
	`
	var args []interface{}
	if categoryType != "" {
		query += ` WHERE type = $1`
		args = append(args, categoryType)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Color, &c.Icon, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func UpdateCategory(ctx context.Context, pool *pgxpool.Pool, id string, name, categoryType, color, icon *string) (*models.Category, error) {
	query := `
		UPDATE categories
		SET name = COALESCE($1, name),
		    type = COALESCE($2, type),
		    color = COALESCE($3, color),
		    icon = COALESCE($4, icon),
		    updated_at = NOW()
		WHERE id = $5
		RETURNING id, name, type, color, icon, created_at, updated_at
	`
	var c models.Category
	err := pool.QueryRow(ctx, query, name, categoryType, color, icon, id).
		Scan(&c.ID, &c.Name, &c.Type, &c.Color, &c.Icon, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &c, nil
}

// DeleteCategory fails while ledger entries still reference the category;
// the schema RESTRICTs the foreign key rather than cascading.
func DeleteCategory(ctx context.Context, pool *pgxpool.Pool, id string) error {
	query := `DELETE FROM categories WHERE id = $1`
	cmd, err := pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

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

func CreateProfile(ctx context.Context, pool *pgxpool.Pool, name string, description *string) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, created_at, updated_at
	`
	var p models.Profile
	err := pool.QueryRow(ctx, query, uuid.NewString(), name, description).
		Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &p, nil
}

func GetProfileByID(ctx context.Context, pool *pgxpool.Pool, id string) (*models.Profile, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM profiles WHERE id = $1
	`
	var p models.Profile
	err := pool.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &p, nil
}

func GetAllProfiles(ctx context.Context, pool *pgxpool.Pool) ([]models.Profile, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM profiles
		ORDER BY created_at DESC
	`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// UpdateProfile changes only the supplied fields; nil pointers leave the
// stored value untouched.
func UpdateProfile(ctx context.Context, pool *pgxpool.Pool, id string, name, description *string) (*models.Profile, error) {
	query := `
		UPDATE profiles
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description),
		    updated_at = NOW()
		WHERE id = $3
		RETURNING id, name, description, created_at, updated_at
	`
	var p models.Profile
	err := pool.QueryRow(ctx, query, name, description, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &p, nil
}

func DeleteProfile(ctx context.Context, pool *pgxpool.Pool, id string) error {
	query := `DELETE FROM profiles WHERE id = $1`
	cmd, err := pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

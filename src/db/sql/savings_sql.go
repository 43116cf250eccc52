package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fintrack-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SavingsTargetUpdate carries a partial update; nil fields are left unchanged.
type SavingsTargetUpdate struct {
	Name              *string
	TargetAmount      *float64
	CurrentAmount     *float64
	StartDate         *time.Time
	TargetDate        *time.Time
	AllocationPercent *float64
}

const savingsSelect = `
	SELECT s.id, s.name, s.target_amount, s.current_amount, s.start_date, s.target_date,
	       s.allocation_percent, s.profile_id, s.created_at, s.updated_at,
	       p.id, p.name, p.description, p.created_at, p.updated_at
	FROM savings_targets s
	JOIN profiles p ON p.id = s.profile_id
`

func scanSavingsTarget(row pgx.Row) (*models.SavingsTarget, error) {
	var s models.SavingsTarget
	var p models.Profile
	err := row.Scan(
		&s.ID, &s.Name, &s.TargetAmount, &s.CurrentAmount, &s.StartDate, &s.TargetDate,
		&s.AllocationPercent, &s.ProfileID, &s.CreatedAt, &s.UpdatedAt,
		&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Profile = &p
	return &s, nil
}

func CreateSavingsTarget(ctx context.Context, pool *pgxpool.Pool, target *models.SavingsTarget) (*models.SavingsTarget, error) {
	query := `
		INSERT INTO savings_targets (id, name, target_amount, current_amount, start_date, target_date, allocation_percent, profile_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	var id string
	err := pool.QueryRow(ctx, query,
		uuid.NewString(), target.Name, target.TargetAmount, target.CurrentAmount,
		target.StartDate, target.TargetDate, target.AllocationPercent, target.ProfileID,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create savings target: %w", err)
	}
	return GetSavingsTargetByID(ctx, pool, id)
}

func GetSavingsTargetByID(ctx context.Context, pool *pgxpool.Pool, id string) (*models.SavingsTarget, error) {
	query := savingsSelect + ` WHERE s.id = $1`
	target, err := scanSavingsTarget(pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return target, nil
}

func GetAllSavingsTargets(ctx context.Context, pool *pgxpool.Pool, profileID string) ([]models.SavingsTarget, error) {
	query := savingsSelect
	var args []interface{}
	if profileID != "" {
		query += ` WHERE s.profile_id = $1`
		args = append(args, profileID)
	}
	query += ` ORDER BY s.created_at DESC`

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var targets []models.SavingsTarget
	for rows.Next() {
		target, err := scanSavingsTarget(rows)
		if err != nil {
			return nil, err
		}
		targets = append(targets, *target)
	}
	return targets, rows.Err()
}

func UpdateSavingsTarget(ctx context.Context, pool *pgxpool.Pool, id string, upd SavingsTargetUpdate) (*models.SavingsTarget, error) {
	query := `
		UPDATE savings_targets
		SET name = COALESCE($1, name),
		    target_amount = COALESCE($2, target_amount),
		    current_amount = COALESCE($3, current_amount),
		    start_date = COALESCE($4, start_date),
		    target_date = COALESCE($5, target_date),
		    allocation_percent = COALESCE($6, allocation_percent),
		    updated_at = NOW()
		WHERE id = $7
		RETURNING id
	`
	var updatedID string
	err := pool.QueryRow(ctx, query,
		upd.Name, upd.TargetAmount, upd.CurrentAmount, upd.StartDate, upd.TargetDate, upd.AllocationPercent, id,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update savings target: %w", err)
	}
	return GetSavingsTargetByID(ctx, pool, updatedID)
}

func DeleteSavingsTarget(ctx context.Context, pool *pgxpool.Pool, id string) error {
	query := `DELETE FROM savings_targets WHERE id = $1`
	cmd, err := pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

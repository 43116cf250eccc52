package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fintrack-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EntryFilter narrows a ledger list. Zero values mean the dimension is not
// filtered; Start/End form a half-open [Start, End) window.
type EntryFilter struct {
	ProfileID string
	Start     time.Time
	End       time.Time
}

// EntryUpdate carries a partial update; nil fields are left unchanged.
type EntryUpdate struct {
	Amount      *float64
	Description *string
	Date        *time.Time
	CategoryID  *string
}

const entrySelect = `
	SELECT e.id, e.amount, e.description, e.date, e.category_id, e.profile_id, e.created_at, e.updated_at,
	       c.id, c.name, c.type, c.color, c.icon, c.created_at, c.updated_at,
	       p.id, p.name, p.description, p.created_at, p.updated_at
	FROM %s e
	JOIN categories c ON c.id = e.category_id
	JOIN profiles p ON p.id = e.profile_id
`

func scanEntry(row pgx.Row) (*models.Entry, error) {
	var e models.Entry
	var c models.Category
	var p models.Profile
	err := row.Scan(
		&e.ID, &e.Amount, &e.Description, &e.Date, &e.CategoryID, &e.ProfileID, &e.CreatedAt, &e.UpdatedAt,
		&c.ID, &c.Name, &c.Type, &c.Color, &c.Icon, &c.CreatedAt, &c.UpdatedAt,
		&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Category = &c
	e.Profile = &p
	return &e, nil
}

func CreateEntry(ctx context.Context, pool *pgxpool.Pool, ledger models.Ledger, entry *models.Entry) (*models.Entry, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, amount, description, date, category_id, profile_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, ledger.Table())
	var id string
	err := pool.QueryRow(ctx, query, uuid.NewString(), entry.Amount, entry.Description, entry.Date, entry.CategoryID, entry.ProfileID).
		Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s entry: %w", ledger, err)
	}
	return GetEntryByID(ctx, pool, ledger, id)
}

func GetEntryByID(ctx context.Context, pool *pgxpool.Pool, ledger models.Ledger, id string) (*models.Entry, error) {
	query := fmt.Sprintf(entrySelect, ledger.Table()) + ` WHERE e.id = $1`
	entry, err := scanEntry(pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return entry, nil
}

// GetAllEntries lists a ledger newest-first by transaction date, with each
// record enriched with its category and profile.
func GetAllEntries(ctx context.Context, pool *pgxpool.Pool, ledger models.Ledger, filter EntryFilter) ([]models.Entry, error) {
	query := fmt.Sprintf(entrySelect, ledger.Table())

	var conds []string
	var args []interface{}
	if filter.ProfileID != "" {
		args = append(args, filter.ProfileID)
		conds = append(conds, fmt.Sprintf("e.profile_id = $%d", len(args)))
	}
	if !filter.Start.IsZero() {
		args = append(args, filter.Start)
		conds = append(conds, fmt.Sprintf("e.date >= $%d", len(args)))
		args = append(args, filter.End)
		conds = append(conds, fmt.Sprintf("e.date < $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY e.date DESC"

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

func UpdateEntry(ctx context.Context, pool *pgxpool.Pool, ledger models.Ledger, id string, upd EntryUpdate) (*models.Entry, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET amount = COALESCE($1, amount),
		    description = COALESCE($2, description),
		    date = COALESCE($3, date),
		    category_id = COALESCE($4, category_id),
		    updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`, ledger.Table())
	var updatedID string
	err := pool.QueryRow(ctx, query, upd.Amount, upd.Description, upd.Date, upd.CategoryID, id).
		Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update %s entry: %w", ledger, err)
	}
	return GetEntryByID(ctx, pool, ledger, updatedID)
}

func DeleteEntry(ctx context.Context, pool *pgxpool.Pool, ledger models.Ledger, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, ledger.Table())
	cmd, err := pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DofusPlanner_Go/internal/domain"
	"github.com/osse101/DofusPlanner_Go/internal/repository"
)

const plannedItemColumns = `planned_item_id::text, account_id, item_name, image_url, category, item_type,
	daily_quantity, lot_size, created_at, updated_at`

type planRepository struct {
	db *pgxpool.Pool
}

// NewPlanRepository creates a new PostgreSQL plan repository
func NewPlanRepository(db *pgxpool.Pool) repository.Plan {
	return &planRepository{db: db}
}

// ListPlannedItems returns the account's plan in creation order
func (r *planRepository) ListPlannedItems(ctx context.Context, accountID string) ([]domain.PlannedItem, error) {
	query := `
		SELECT ` + plannedItemColumns + `
		FROM planned_items
		WHERE account_id = $1
		ORDER BY created_at, item_name
	`

	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPlannedItems, err)
	}
	defer rows.Close()

	items := make([]domain.PlannedItem, 0)
	for rows.Next() {
		item, err := scanPlannedItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanPlannedItem, err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPlannedItems, err)
	}
	return items, nil
}

// GetPlannedItem fetches one entry of the account's plan
func (r *planRepository) GetPlannedItem(ctx context.Context, accountID, id string) (*domain.PlannedItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrPlannedItemNotFound
	}

	query := `
		SELECT ` + plannedItemColumns + `
		FROM planned_items
		WHERE account_id = $1 AND planned_item_id = $2
	`

	item, err := scanPlannedItem(r.db.QueryRow(ctx, query, accountID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPlannedItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlannedItem, err)
	}
	return item, nil
}

// AddPlannedItem inserts a new entry or increments the existing one
func (r *planRepository) AddPlannedItem(ctx context.Context, item domain.PlannedItem) (*domain.PlannedItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	now := time.Now().UTC()

	query := `
		INSERT INTO planned_items (planned_item_id, account_id, item_name, image_url, category, item_type,
			daily_quantity, lot_size, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		ON CONFLICT (account_id, item_name) DO UPDATE
		SET daily_quantity = planned_items.daily_quantity + EXCLUDED.daily_quantity,
			lot_size = EXCLUDED.lot_size,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + plannedItemColumns

	stored, err := scanPlannedItem(r.db.QueryRow(ctx, query,
		item.ID, item.AccountID, item.ItemName, item.ImageURL, item.Category, item.Type,
		item.DailyQuantity, item.LotSize, now))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertPlannedItem, err)
	}
	return stored, nil
}

// UpdatePlannedQuantity overwrites the daily quantity of an entry
func (r *planRepository) UpdatePlannedQuantity(ctx context.Context, accountID, id string, quantity, lotSize int) (*domain.PlannedItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrPlannedItemNotFound
	}

	query := `
		UPDATE planned_items
		SET daily_quantity = $3, lot_size = $4, updated_at = NOW()
		WHERE account_id = $1 AND planned_item_id = $2
		RETURNING ` + plannedItemColumns

	item, err := scanPlannedItem(r.db.QueryRow(ctx, query, accountID, id, quantity, lotSize))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPlannedItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePlannedItem, err)
	}
	return item, nil
}

// DeletePlannedItem removes an entry from the plan
func (r *planRepository) DeletePlannedItem(ctx context.Context, accountID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrPlannedItemNotFound
	}

	tag, err := r.db.Exec(ctx,
		`DELETE FROM planned_items WHERE account_id = $1 AND planned_item_id = $2`, accountID, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeletePlannedItem, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlannedItemNotFound
	}
	return nil
}

func scanPlannedItem(row pgx.Row) (*domain.PlannedItem, error) {
	var item domain.PlannedItem
	err := row.Scan(
		&item.ID,
		&item.AccountID,
		&item.ItemName,
		&item.ImageURL,
		&item.Category,
		&item.Type,
		&item.DailyQuantity,
		&item.LotSize,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DofusPlanner_Go/internal/domain"
	"github.com/osse101/DofusPlanner_Go/internal/repository"
)

type favoriteRepository struct {
	db *pgxpool.Pool
}

// NewFavoriteRepository creates a new PostgreSQL favorites repository
func NewFavoriteRepository(db *pgxpool.Pool) repository.Favorite {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) ListFavorites(ctx context.Context, accountID string) ([]domain.Favorite, error) {
	rows, err := r.db.Query(ctx, `
		SELECT account_id, item_name, created_at
		FROM favorites
		WHERE account_id = $1
		ORDER BY created_at, item_name
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListFavorites, err)
	}
	defer rows.Close()

	favorites := make([]domain.Favorite, 0)
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.AccountID, &f.ItemName, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListFavorites, err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListFavorites, err)
	}
	return favorites, nil
}

func (r *favoriteRepository) AddFavorite(ctx context.Context, favorite domain.Favorite) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO favorites (account_id, item_name)
		VALUES ($1, $2)
		ON CONFLICT (account_id, item_name) DO NOTHING
	`, favorite.AccountID, favorite.ItemName)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToAddFavorite, err)
	}
	return nil
}

func (r *favoriteRepository) RemoveFavorite(ctx context.Context, accountID, itemName string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM favorites WHERE account_id = $1 AND item_name = $2`, accountID, itemName)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRemoveFavorite, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"restaurant-reservations/internal/domain"
	"restaurant-reservations/internal/interfaces"
)

type catalogRepository struct {
	db DB
}

func NewCatalogRepository(db DB) interfaces.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) BranchExists(ctx context.Context, branchID int64) error {
	var id int64
	err := r.db.QueryRow(ctx, "SELECT id FROM branches WHERE id = $1", branchID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NotFound("branch")
	}
	if err != nil {
		return domain.Internal("failed to check branch", err)
	}
	return nil
}

func (r *catalogRepository) GetDish(ctx context.Context, dishID int64) (*domain.Dish, error) {
	var dish domain.Dish
	err := r.db.QueryRow(ctx,
		"SELECT id, name, price FROM dishes WHERE id = $1", dishID,
	).Scan(&dish.ID, &dish.Name, &dish.Price)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound("dish")
	}
	if err != nil {
		return nil, domain.Internal("failed to load dish", err)
	}
	return &dish, nil
}

// MenuEntryServed reports NotFound both when no menu entry exists and
// when the entry is no longer served; callers cannot tell the two
// apart.
func (r *catalogRepository) MenuEntryServed(ctx context.Context, dishID, branchID int64) error {
	var isServed bool
	err := r.db.QueryRow(ctx,
		"SELECT is_served FROM menu_entries WHERE dish_id = $1 AND branch_id = $2",
		dishID, branchID,
	).Scan(&isServed)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NotFound("menu_entry")
	}
	if err != nil {
		return domain.Internal("failed to check menu entry", err)
	}
	if !isServed {
		return domain.NotFound("menu_entry")
	}
	return nil
}

func (r *catalogRepository) AddDishToMenu(ctx context.Context, dishID, branchID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_entries (dish_id, branch_id, is_served)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (dish_id, branch_id) DO UPDATE SET is_served = TRUE
	`, dishID, branchID)
	if err != nil {
		return fmt.Errorf("failed to add dish to menu: %w", err)
	}
	return nil
}

// RemoveDishFromMenu stops serving the dish at the branch. Committed
// order lines referencing the dish are left untouched; only future
// orders are affected.
func (r *catalogRepository) RemoveDishFromMenu(ctx context.Context, dishID, branchID int64) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE menu_entries SET is_served = FALSE WHERE dish_id = $1 AND branch_id = $2",
		dishID, branchID)
	if err != nil {
		return fmt.Errorf("failed to remove dish from menu: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("menu_entry")
	}
	return nil
}

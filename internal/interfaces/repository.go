package interfaces

import (
	"context"

	"restaurant-reservations/internal/domain"
)

// CatalogRepository reads branch, dish and menu state owned by the
// branch/menu management subsystems. All methods are pure reads except
// the menu toggles, which back the admin endpoints.
type CatalogRepository interface {
	BranchExists(ctx context.Context, branchID int64) error
	GetDish(ctx context.Context, dishID int64) (*domain.Dish, error)
	MenuEntryServed(ctx context.Context, dishID, branchID int64) error
	AddDishToMenu(ctx context.Context, dishID, branchID int64) error
	RemoveDishFromMenu(ctx context.Context, dishID, branchID int64) error
}

// ReservationRepository owns reservation slips. Allocate must run the
// candidate-table search and the slip insert as one atomic unit and
// fill in the slip's ID and TableNumber before returning; on failure no
// partial row may survive.
type ReservationRepository interface {
	Allocate(ctx context.Context, slip *domain.ReservationSlip, window domain.HoldWindow) error
	Exists(ctx context.Context, reservationID int64) error
	FindByID(ctx context.Context, reservationID int64) (*domain.ReservationSlip, error)
}

// OrderRepository owns orders and their lines.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, orderID int64) (*domain.Order, error)
}

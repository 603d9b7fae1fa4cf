package interfaces

import (
	"context"

	"restaurant-reservations/internal/domain"
)

// Команды для сервисов

type CreateReservationCommand struct {
	BranchID     int64
	CustomerName string
	Phone        string
	PartySize    int
	ArrivalDate  string
	ArrivalTime  string
	Notes        string
}

type SubmitOrderCommand struct {
	BranchID      int64
	ReservationID *int64
	CustomerName  string
	MemberCardID  *string
	WaiterID      int64
	Lines         []SubmitOrderLine
}

type SubmitOrderLine struct {
	DishID   int64
	Quantity int
}

type ReservationService interface {
	Create(ctx context.Context, cmd CreateReservationCommand) (*domain.ReservationSlip, error)
}

type OrderService interface {
	Submit(ctx context.Context, cmd SubmitOrderCommand) (*domain.Order, error)
}

type LookupService interface {
	GetReservation(ctx context.Context, reservationID int64) (*domain.ReservationSlip, error)
	GetOrder(ctx context.Context, orderID int64) (*domain.Order, error)
}

// DiscountResolver is the external membership lookup. It returns the
// discount percentage for a member card, or 0 when the card resolves to
// no discount.
type DiscountResolver interface {
	ResolvePercent(ctx context.Context, memberCardID string) float64
}

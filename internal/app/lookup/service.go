package lookup

import (
	"context"
	"time"

	"restaurant-reservations/internal/domain"
	"restaurant-reservations/internal/interfaces"
)

const storeTimeout = 5 * time.Second

// Service is the read surface staff tooling polls for reservation and
// order state.
type Service struct {
	reservations interfaces.ReservationRepository
	orders       interfaces.OrderRepository
}

func NewService(reservations interfaces.ReservationRepository, orders interfaces.OrderRepository) *Service {
	return &Service{
		reservations: reservations,
		orders:       orders,
	}
}

func (s *Service) GetReservation(ctx context.Context, reservationID int64) (*domain.ReservationSlip, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	return s.reservations.FindByID(ctx, reservationID)
}

func (s *Service) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	return s.orders.FindByID(ctx, orderID)
}

package order

import (
	"context"
	"time"

	"restaurant-reservations/internal/adapter/logger"
	"restaurant-reservations/internal/domain"
	"restaurant-reservations/internal/interfaces"
)

const storeTimeout = 10 * time.Second

type Service struct {
	catalog      interfaces.CatalogRepository
	reservations interfaces.ReservationRepository
	orders       interfaces.OrderRepository
	discounts    interfaces.DiscountResolver
	publisher    interfaces.EventPublisher
	logger       logger.Logger
}

func NewService(
	catalog interfaces.CatalogRepository,
	reservations interfaces.ReservationRepository,
	orders interfaces.OrderRepository,
	discounts interfaces.DiscountResolver,
	publisher interfaces.EventPublisher,
	logger logger.Logger,
) *Service {
	return &Service{
		catalog:      catalog,
		reservations: reservations,
		orders:       orders,
		discounts:    discounts,
		publisher:    publisher,
		logger:       logger,
	}
}

// Submit validates the proposed order against branch and menu state and
// commits it as one unit. Validation fails fast, in a fixed sequence,
// before any write happens; unit prices and totals come from the dishes
// table, never from the client.
func (s *Service) Submit(ctx context.Context, cmd interfaces.SubmitOrderCommand) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	// 1. Branch must exist.
	if err := s.catalog.BranchExists(ctx, cmd.BranchID); err != nil {
		return nil, err
	}

	// 2. The referenced reservation, if any, must exist.
	if cmd.ReservationID != nil {
		if err := s.reservations.Exists(ctx, *cmd.ReservationID); err != nil {
			return nil, err
		}
	}

	// 3. Every dish must exist and be currently served at the branch.
	// A menu entry removed mid-request can still slip through; serve
	// status changes are rare and this staleness is accepted.
	lines := make([]domain.OrderLine, len(cmd.Lines))
	for i, line := range cmd.Lines {
		dish, err := s.catalog.GetDish(ctx, line.DishID)
		if err != nil {
			return nil, err
		}
		if err := s.catalog.MenuEntryServed(ctx, line.DishID, cmd.BranchID); err != nil {
			return nil, err
		}
		lines[i] = domain.OrderLine{
			DishID:    line.DishID,
			Quantity:  line.Quantity,
			UnitPrice: dish.Price,
		}
	}

	// 4. Structural rules.
	if err := domain.ValidateLines(lines); err != nil {
		return nil, err
	}
	if cmd.CustomerName == "" {
		return nil, domain.InvalidArgument("customer name is required")
	}
	if cmd.WaiterID < 1 {
		return nil, domain.InvalidArgument("waiter id is required")
	}

	discountPercent := 0.0
	if cmd.MemberCardID != nil && *cmd.MemberCardID != "" {
		discountPercent = s.discounts.ResolvePercent(ctx, *cmd.MemberCardID)
	}
	totals := domain.ComputeTotal(lines, discountPercent)

	order := &domain.Order{
		BranchID:        cmd.BranchID,
		ReservationID:   cmd.ReservationID,
		CustomerName:    cmd.CustomerName,
		MemberCardID:    cmd.MemberCardID,
		WaiterID:        cmd.WaiterID,
		Lines:           lines,
		Subtotal:        totals.Subtotal,
		DiscountPercent: discountPercent,
		DiscountAmount:  totals.DiscountAmount,
		TotalAmount:     totals.Total,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error("db_transaction_failed", "Failed to commit order", "", nil, err)
		return nil, err
	}

	s.logger.Debug("order_created", "Order committed", "", map[string]interface{}{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount,
	})

	msg := interfaces.OrderCreatedMessage{
		OrderID:       order.ID,
		BranchID:      order.BranchID,
		ReservationID: order.ReservationID,
		CustomerName:  order.CustomerName,
		TotalAmount:   order.TotalAmount,
		OrderedAt:     order.OrderedAt,
	}
	if err := s.publisher.PublishOrderCreated(ctx, msg); err != nil {
		s.logger.Error("rabbitmq_publish_failed", "Failed to publish order event", "", nil, err)
	}

	return order, nil
}

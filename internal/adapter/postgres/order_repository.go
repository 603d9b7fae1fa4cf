package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"restaurant-reservations/internal/domain"
	"restaurant-reservations/internal/interfaces"
)

type orderRepository struct {
	db DB
}

func NewOrderRepository(db DB) interfaces.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order and all of its lines as one transaction;
// either everything lands or nothing does.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Internal("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO orders
			(branch_id, reservation_slip_id, customer_name, member_card_id, waiter_id,
			 subtotal, discount_percent, discount_amount, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, ordered_at
	`,
		order.BranchID, order.ReservationID, order.CustomerName, order.MemberCardID,
		order.WaiterID, order.Subtotal, order.DiscountPercent, order.DiscountAmount,
		order.TotalAmount,
	).Scan(&order.ID, &order.OrderedAt)
	if err != nil {
		return domain.Internal("failed to insert order", err)
	}

	for i := range order.Lines {
		err = tx.QueryRow(ctx, `
			INSERT INTO order_lines (order_id, dish_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`,
			order.ID, order.Lines[i].DishID, order.Lines[i].Quantity, order.Lines[i].UnitPrice,
		).Scan(&order.Lines[i].ID)
		if err != nil {
			return domain.Internal("failed to insert order line", err)
		}
		order.Lines[i].OrderID = order.ID
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Internal("failed to commit order", err)
	}
	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	var order domain.Order
	err := r.db.QueryRow(ctx, `
		SELECT id, branch_id, reservation_slip_id, customer_name, member_card_id, waiter_id,
		       subtotal, discount_percent, discount_amount, total_amount, ordered_at
		FROM orders
		WHERE id = $1
	`, orderID).Scan(
		&order.ID, &order.BranchID, &order.ReservationID, &order.CustomerName,
		&order.MemberCardID, &order.WaiterID, &order.Subtotal, &order.DiscountPercent,
		&order.DiscountAmount, &order.TotalAmount, &order.OrderedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound("order")
	}
	if err != nil {
		return nil, domain.Internal("failed to load order", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, dish_id, quantity, unit_price
		FROM order_lines
		WHERE order_id = $1
		ORDER BY id
	`, order.ID)
	if err != nil {
		return nil, domain.Internal("failed to load order lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.ID, &line.OrderID, &line.DishID, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, domain.Internal("failed to scan order line", err)
		}
		order.Lines = append(order.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal("failed to read order lines", err)
	}

	return &order, nil
}

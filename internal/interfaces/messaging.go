package interfaces

import (
	"context"
	"time"
)

// Сообщения RabbitMQ

type ReservationCreatedMessage struct {
	ReservationSlipID int64     `json:"reservation_slip_id"`
	BranchID          int64     `json:"branch_id"`
	CustomerName      string    `json:"customer_name"`
	PartySize         int       `json:"party_size"`
	TableNumber       int       `json:"table_number"`
	ArrivalAt         time.Time `json:"arrival_at"`
}

type OrderCreatedMessage struct {
	OrderID       int64     `json:"order_id"`
	BranchID      int64     `json:"branch_id"`
	ReservationID *int64    `json:"reservation_id,omitempty"`
	CustomerName  string    `json:"customer_name"`
	TotalAmount   float64   `json:"total_amount"`
	OrderedAt     time.Time `json:"ordered_at"`
}

type EventPublisher interface {
	PublishReservationCreated(ctx context.Context, msg ReservationCreatedMessage) error
	PublishOrderCreated(ctx context.Context, msg OrderCreatedMessage) error
}

type EventConsumer interface {
	ConsumeNotifications(ctx context.Context, handler NotificationHandler) error
}

type NotificationHandler func(ctx context.Context, body []byte) error

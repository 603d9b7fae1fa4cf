package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"restaurant-reservations/internal/interfaces"
)

const (
	reservationsExchange  = "reservations_topic"
	ordersExchange        = "orders_topic"
	notificationsExchange = "notifications_fanout"
)

type publisher struct {
	conn Connection
}

func NewPublisher(conn Connection) interfaces.EventPublisher {
	return &publisher{conn: conn}
}

func (p *publisher) PublishReservationCreated(ctx context.Context, msg interfaces.ReservationCreatedMessage) error {
	routingKey := fmt.Sprintf("reservation.created.%d", msg.BranchID)
	return p.publish(ctx, reservationsExchange, "topic", routingKey, msg)
}

func (p *publisher) PublishOrderCreated(ctx context.Context, msg interfaces.OrderCreatedMessage) error {
	routingKey := fmt.Sprintf("order.created.%d", msg.BranchID)
	return p.publish(ctx, ordersExchange, "topic", routingKey, msg)
}

func (p *publisher) publish(ctx context.Context, exchange, kind, routingKey string, msg any) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(exchange, kind, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}
	// Every event is also fanned out for notification subscribers.
	if err := ch.ExchangeDeclare(notificationsExchange, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare notifications exchange: %w", err)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	publishing := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
		Timestamp:    time.Now().UTC(),
	}

	if err := ch.Publish(exchange, routingKey, false, false, publishing); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	if err := ch.Publish(notificationsExchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	}); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

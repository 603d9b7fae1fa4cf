package amqp

import (
	"context"
	"encoding/json"
	"fmt"

	"restaurant-reservations/internal/adapter/logger"
)

// NotificationHandler consumes fanned-out reservation/order events and
// prints them; real delivery (SMS, push) lives outside this service.
type NotificationHandler struct {
	logger logger.Logger
}

func NewNotificationHandler(logger logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		logger: logger,
	}
}

func (h *NotificationHandler) HandleNotification(ctx context.Context, body []byte) error {
	var event map[string]any
	if err := json.Unmarshal(body, &event); err != nil {
		h.logger.Error("message_parse_failed", "Failed to parse notification", "", nil, err)
		return err
	}

	h.logger.Debug("notification_received", "Received event", "", event)

	switch {
	case event["reservation_slip_id"] != nil:
		fmt.Printf("Reservation %v confirmed for %v at branch %v, table %v\n",
			event["reservation_slip_id"], event["customer_name"], event["branch_id"], event["table_number"])
	case event["order_id"] != nil:
		fmt.Printf("Order %v placed at branch %v, total %v\n",
			event["order_id"], event["branch_id"], event["total_amount"])
	}

	return nil
}

package http

import (
	"encoding/json"
	"net/http"

	"restaurant-reservations/internal/adapter/logger"
	"restaurant-reservations/internal/interfaces"
)

type OrderHandler struct {
	service interfaces.OrderService
	logger  logger.Logger
}

func NewOrderHandler(service interfaces.OrderService, logger logger.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

// SubmitOrderRequest carries dish ids and quantities only; unit prices
// and totals are derived server-side at commit.
type SubmitOrderRequest struct {
	BranchID      int64              `json:"branch_id"`
	ReservationID *int64             `json:"reservation_id,omitempty"`
	CustomerName  string             `json:"customer_name"`
	MemberCardID  *string            `json:"member_card_id,omitempty"`
	WaiterID      int64              `json:"waiter_id"`
	Items         []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	DishID   int64 `json:"dish_id"`
	Quantity int   `json:"quantity"`
}

type SubmitOrderResponse struct {
	OrderID        int64   `json:"order_id"`
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	TotalAmount    float64 `json:"total_amount"`
}

func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
		return
	}

	var req SubmitOrderRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	cmd := interfaces.SubmitOrderCommand{
		BranchID:      req.BranchID,
		ReservationID: req.ReservationID,
		CustomerName:  req.CustomerName,
		MemberCardID:  req.MemberCardID,
		WaiterID:      req.WaiterID,
		Lines:         convertItems(req.Items),
	}

	order, err := h.service.Submit(r.Context(), cmd)
	if err != nil {
		h.logger.Error("order_submission_failed", "Failed to submit order", "", map[string]interface{}{
			"branch_id": req.BranchID,
		}, err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, SubmitOrderResponse{
		OrderID:        order.ID,
		Subtotal:       order.Subtotal,
		DiscountAmount: order.DiscountAmount,
		TotalAmount:    order.TotalAmount,
	})
}

func convertItems(items []OrderItemRequest) []interfaces.SubmitOrderLine {
	lines := make([]interfaces.SubmitOrderLine, len(items))
	for i, item := range items {
		lines[i] = interfaces.SubmitOrderLine{
			DishID:   item.DishID,
			Quantity: item.Quantity,
		}
	}
	return lines
}

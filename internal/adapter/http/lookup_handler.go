package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"restaurant-reservations/internal/adapter/logger"
	"restaurant-reservations/internal/domain"
	"restaurant-reservations/internal/interfaces"
)

type LookupHandler struct {
	service interfaces.LookupService
	logger  logger.Logger
}

func NewLookupHandler(service interfaces.LookupService, logger logger.Logger) *LookupHandler {
	return &LookupHandler{
		service: service,
		logger:  logger,
	}
}

type ReservationResponse struct {
	ReservationSlipID int64     `json:"reservation_slip_id"`
	BranchID          int64     `json:"branch_id"`
	CustomerName      string    `json:"customer_name"`
	PartySize         int       `json:"party_size"`
	ArrivalAt         time.Time `json:"arrival_at"`
	TableNumber       int       `json:"table_number"`
	Status            string    `json:"status"`
	Notes             string    `json:"notes,omitempty"`
}

type OrderResponse struct {
	OrderID        int64               `json:"order_id"`
	BranchID       int64               `json:"branch_id"`
	ReservationID  *int64              `json:"reservation_id,omitempty"`
	CustomerName   string              `json:"customer_name"`
	WaiterID       int64               `json:"waiter_id"`
	Lines          []OrderLineResponse `json:"lines"`
	Subtotal       float64             `json:"subtotal"`
	DiscountAmount float64             `json:"discount_amount"`
	TotalAmount    float64             `json:"total_amount"`
	OrderedAt      time.Time           `json:"ordered_at"`
}

type OrderLineResponse struct {
	DishID    int64   `json:"dish_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

func (h *LookupHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "/reservations/")
	if !ok {
		return
	}

	slip, err := h.service.GetReservation(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ReservationResponse{
		ReservationSlipID: slip.ID,
		BranchID:          slip.BranchID,
		CustomerName:      slip.CustomerName,
		PartySize:         slip.PartySize,
		ArrivalAt:         slip.ArrivalAt,
		TableNumber:       slip.TableNumber,
		Status:            string(slip.Status),
		Notes:             slip.Notes,
	})
}

func (h *LookupHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "/orders/")
	if !ok {
		return
	}

	order, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (h *LookupHandler) pathID(w http.ResponseWriter, r *http.Request, prefix string) (int64, bool) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
		return 0, false
	}

	raw := strings.TrimPrefix(r.URL.Path, prefix)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

func toOrderResponse(order *domain.Order) OrderResponse {
	lines := make([]OrderLineResponse, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = OrderLineResponse{
			DishID:    line.DishID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		}
	}
	return OrderResponse{
		OrderID:        order.ID,
		BranchID:       order.BranchID,
		ReservationID:  order.ReservationID,
		CustomerName:   order.CustomerName,
		WaiterID:       order.WaiterID,
		Lines:          lines,
		Subtotal:       order.Subtotal,
		DiscountAmount: order.DiscountAmount,
		TotalAmount:    order.TotalAmount,
		OrderedAt:      order.OrderedAt,
	}
}

package http

import (
	"encoding/json"
	"net/http"

	"restaurant-reservations/internal/domain"
)

// CartHandler mirrors the cart aggregation the ordering UI performs, so
// clients can display totals the server will agree with at commit.
type CartHandler struct{}

func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

type CartTotalRequest struct {
	Items           []CartItemRequest `json:"items"`
	DiscountPercent float64           `json:"discount_percent"`
}

type CartItemRequest struct {
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CartTotalResponse struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	Total          float64 `json:"total"`
}

func (h *CartHandler) ComputeTotal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
		return
	}

	var req CartTotalRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.DiscountPercent < 0 || req.DiscountPercent > 100 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "discount percent must be between 0 and 100"})
		return
	}

	lines := make([]domain.OrderLine, len(req.Items))
	for i, item := range req.Items {
		lines[i] = domain.OrderLine{UnitPrice: item.Price, Quantity: item.Quantity}
	}

	totals := domain.ComputeTotal(lines, req.DiscountPercent)
	writeJSON(w, http.StatusOK, CartTotalResponse{
		Subtotal:       totals.Subtotal,
		DiscountAmount: totals.DiscountAmount,
		Total:          totals.Total,
	})
}

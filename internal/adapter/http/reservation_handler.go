package http

import (
	"encoding/json"
	"net/http"

	"restaurant-reservations/internal/adapter/logger"
	"restaurant-reservations/internal/interfaces"
)

type ReservationHandler struct {
	service interfaces.ReservationService
	logger  logger.Logger
}

func NewReservationHandler(service interfaces.ReservationService, logger logger.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		logger:  logger,
	}
}

// CreateReservationRequest carries the booking form fields. Field names
// follow the booking client's wire contract.
type CreateReservationRequest struct {
	BranchID     int64  `json:"branch_id"`
	CustomerName string `json:"cus_name"`
	PhoneNumber  string `json:"phone_number"`
	GuestsNumber int    `json:"guests_number"`
	ArrivalDate  string `json:"arrival_date"`
	ArrivalTime  string `json:"arrival_time"`
	Notes        string `json:"notes"`
}

type CreateReservationResponse struct {
	ReservationSlipID int64 `json:"reservation_slip_id"`
	TableNumber       int   `json:"table_number"`
}

func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
		return
	}

	var req CreateReservationRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	cmd := interfaces.CreateReservationCommand{
		BranchID:     req.BranchID,
		CustomerName: req.CustomerName,
		Phone:        req.PhoneNumber,
		PartySize:    req.GuestsNumber,
		ArrivalDate:  req.ArrivalDate,
		ArrivalTime:  req.ArrivalTime,
		Notes:        req.Notes,
	}

	slip, err := h.service.Create(r.Context(), cmd)
	if err != nil {
		h.logger.Error("reservation_failed", "Failed to create reservation", "", map[string]interface{}{
			"branch_id": req.BranchID,
		}, err)
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, CreateReservationResponse{
		ReservationSlipID: slip.ID,
		TableNumber:       slip.TableNumber,
	})
}

package http

import (
	"encoding/json"
	"net/http"

	"restaurant-reservations/internal/adapter/logger"
	"restaurant-reservations/internal/interfaces"
)

// MenuHandler exposes the admin-only menu toggles: putting a dish on a
// branch menu and taking it off again.
type MenuHandler struct {
	catalog interfaces.CatalogRepository
	logger  logger.Logger
}

func NewMenuHandler(catalog interfaces.CatalogRepository, logger logger.Logger) *MenuHandler {
	return &MenuHandler{
		catalog: catalog,
		logger:  logger,
	}
}

type MenuEntryRequest struct {
	DishID   int64 `json:"dish_id"`
	BranchID int64 `json:"branch_id"`
}

func (h *MenuHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req MenuEntryRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}
	if req.DishID < 1 || req.BranchID < 1 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "dish_id and branch_id are required"})
		return
	}

	var err error
	switch r.Method {
	case http.MethodPost:
		err = h.catalog.AddDishToMenu(r.Context(), req.DishID, req.BranchID)
	case http.MethodDelete:
		err = h.catalog.RemoveDishFromMenu(r.Context(), req.DishID, req.BranchID)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
		return
	}

	if err != nil {
		h.logger.Error("menu_update_failed", "Failed to update menu entry", "", map[string]interface{}{
			"dish_id":   req.DishID,
			"branch_id": req.BranchID,
		}, err)
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

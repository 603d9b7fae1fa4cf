package http

import (
	"encoding/json"
	"net/http"

	"restaurant-reservations/internal/domain"
)

type ErrorResponse struct {
	Error  string `json:"error"`
	Entity string `json:"entity,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// writeDomainError maps error kinds to HTTP statuses. Internal errors
// are masked with a generic message.
func writeDomainError(w http.ResponseWriter, err error) {
	switch domain.KindOf(err) {
	case domain.KindInvalidArgument:
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case domain.KindNotFound:
		writeJSON(w, http.StatusNotFound, ErrorResponse{
			Error:  err.Error(),
			Entity: domain.NotFoundEntity(err),
		})
	case domain.KindUnavailable, domain.KindConflict:
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

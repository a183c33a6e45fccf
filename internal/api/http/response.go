package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ezyy-cloud/rentals-sub000/internal/domain"
	"github.com/ezyy-cloud/rentals-sub000/internal/logger"
)

type errorResponse struct {
	Error        string `json:"error"`
	Detail       string `json:"detail,omitempty"`
	DeviceTypeID int32  `json:"device_type_id,omitempty"`
	Requested    int32  `json:"requested,omitempty"`
	Available    *int32 `json:"available,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeDomainError maps the engine's error taxonomy onto HTTP statuses and
// the wire error shape.
func writeDomainError(w http.ResponseWriter, err error) {
	var insufficient *domain.InsufficientInventoryError
	var conflict *domain.AllocationConflictError
	var transition *domain.InvalidTransitionError

	switch {
	case errors.As(err, &insufficient):
		available := insufficient.Available
		writeJSON(w, http.StatusConflict, errorResponse{
			Error:        "InsufficientInventory",
			DeviceTypeID: insufficient.DeviceTypeID,
			Requested:    insufficient.Requested,
			Available:    &available,
		})
	case errors.Is(err, domain.ErrInvalidDateRange):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "InvalidDateRange", Detail: err.Error()})
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "AllocationConflict", Detail: err.Error()})
	case errors.As(err, &transition):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "InvalidTransition", Detail: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "NotFound"})
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal"})
	}
}

func writeBadRequest(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "BadRequest", Detail: detail})
}

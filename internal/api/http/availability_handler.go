package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/ezyy-cloud/rentals-sub000/internal/clock"
	"github.com/ezyy-cloud/rentals-sub000/internal/service"
)

type AvailabilityHandler struct {
	availabilitySvc service.AvailabilityService
	clk             clock.Clock
}

func NewAvailabilityHandler(availabilitySvc service.AvailabilityService, clk clock.Clock) *AvailabilityHandler {
	return &AvailabilityHandler{availabilitySvc: availabilitySvc, clk: clk}
}

// Snapshot returns the availability partition per device type. Optional query
// parameters: device_type_id to filter, at (RFC 3339) to evaluate a different
// instant than now.
func (h *AvailabilityHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	at := h.clk.Now()
	if raw := r.URL.Query().Get("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeBadRequest(w, "at must be RFC 3339")
			return
		}
		at = parsed
	}

	var deviceTypeID *int32
	if raw := r.URL.Query().Get("device_type_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			writeBadRequest(w, "device_type_id must be an integer")
			return
		}
		v := int32(id)
		deviceTypeID = &v
	}

	snapshot, err := h.availabilitySvc.Snapshot(r.Context(), at, deviceTypeID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/ezyy-cloud/rentals-sub000/internal/service"
)

type RentalHandler struct {
	lifecycleSvc service.LifecycleService
}

func NewRentalHandler(lifecycleSvc service.LifecycleService) *RentalHandler {
	return &RentalHandler{lifecycleSvc: lifecycleSvc}
}

type transitionRequest struct {
	Date *time.Time `json:"date,omitempty"`
}

func (h *RentalHandler) MarkShipped(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := decodeTransition(w, r)
	if !ok {
		return
	}

	rental, err := h.lifecycleSvc.MarkShipped(r.Context(), id, req.Date)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) MarkReturned(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := decodeTransition(w, r)
	if !ok {
		return
	}

	rental, err := h.lifecycleSvc.MarkReturned(r.Context(), id, req.Date)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.lifecycleSvc.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func pathID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		writeBadRequest(w, "id must be an integer")
		return 0, false
	}
	return int32(id), true
}

func decodeTransition(w http.ResponseWriter, r *http.Request) (*transitionRequest, bool) {
	req := &transitionRequest{}
	if r.Body == nil || r.ContentLength == 0 {
		return req, true
	}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeBadRequest(w, "invalid request body")
		return nil, false
	}
	return req, true
}

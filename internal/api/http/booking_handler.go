package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator"

	"github.com/ezyy-cloud/rentals-sub000/internal/domain"
	"github.com/ezyy-cloud/rentals-sub000/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
	validate   *validator.Validate
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingSvc: bookingSvc,
		validate:   validator.New(),
	}
}

// Submit accepts a cart and allocates it all-or-nothing.
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if req.DeliveryMethod == domain.DeliveryMethodShipping && req.ShippingAddress == "" {
		writeBadRequest(w, "shipping_address is required for shipping delivery")
		return
	}

	result, err := h.bookingSvc.Submit(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

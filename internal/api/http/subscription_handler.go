package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator"

	"github.com/ezyy-cloud/rentals-sub000/internal/clock"
	"github.com/ezyy-cloud/rentals-sub000/internal/service"
)

type SubscriptionHandler struct {
	subscriptionSvc service.SubscriptionService
	validate        *validator.Validate
	clk             clock.Clock
}

func NewSubscriptionHandler(subscriptionSvc service.SubscriptionService, clk clock.Clock) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionSvc: subscriptionSvc,
		validate:        validator.New(),
		clk:             clk,
	}
}

type recordPaymentRequest struct {
	AmountCents int32      `json:"amount_cents" validate:"required,min=1"`
	PaidOn      *time.Time `json:"paid_on,omitempty"`
}

func (h *SubscriptionHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	deviceID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req recordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	paidOn := h.clk.Now()
	if req.PaidOn != nil {
		paidOn = *req.PaidOn
	}

	payment, err := h.subscriptionSvc.RecordPayment(r.Context(), deviceID, req.AmountCents, paidOn)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

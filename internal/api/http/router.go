package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ezyy-cloud/rentals-sub000/internal/clock"
	"github.com/ezyy-cloud/rentals-sub000/internal/logger"
	"github.com/ezyy-cloud/rentals-sub000/internal/service"
)

// NewRouter wires all handlers under /api/v1.
func NewRouter(
	availabilitySvc service.AvailabilityService,
	bookingSvc service.BookingService,
	lifecycleSvc service.LifecycleService,
	notificationSvc service.NotificationService,
	subscriptionSvc service.SubscriptionService,
	clk clock.Clock,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)

	api := r.PathPrefix("/api/v1").Subrouter()

	bookingHandler := NewBookingHandler(bookingSvc)
	api.HandleFunc("/bookings", bookingHandler.Submit).Methods(http.MethodPost)

	availabilityHandler := NewAvailabilityHandler(availabilitySvc, clk)
	api.HandleFunc("/availability", availabilityHandler.Snapshot).Methods(http.MethodGet)

	rentalHandler := NewRentalHandler(lifecycleSvc)
	api.HandleFunc("/rentals/{id:[0-9]+}/ship", rentalHandler.MarkShipped).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}/return", rentalHandler.MarkReturned).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Delete).Methods(http.MethodDelete)

	notificationHandler := NewNotificationHandler(notificationSvc)
	api.HandleFunc("/notifications", notificationHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id:[0-9]+}/read", notificationHandler.MarkAsRead).Methods(http.MethodPost)

	subscriptionHandler := NewSubscriptionHandler(subscriptionSvc, clk)
	api.HandleFunc("/devices/{id:[0-9]+}/subscription-payments", subscriptionHandler.RecordPayment).Methods(http.MethodPost)

	return r
}

// requestIDMiddleware tags every request with an id for log correlation.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		logger.Debug("request", "request_id", requestID, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

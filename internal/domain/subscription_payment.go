package domain

import "time"

// SubscriptionPayment records a subscription fee paid against a Device.
// Informational only; availability is gated by Device.SubscriptionDate.
type SubscriptionPayment struct {
	ID          int32     `json:"id"`
	DeviceID    int32     `json:"device_id"`
	AmountCents int32     `json:"amount_cents"`
	PaidOn      time.Time `json:"paid_on"`
	CreatedOn   string    `json:"created_on"`
}

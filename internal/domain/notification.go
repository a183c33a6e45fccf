package domain

import "time"

type NotificationType string

const (
	NotificationSubscriptionDue       NotificationType = "subscription_due"
	NotificationRentalDue             NotificationType = "rental_due"
	NotificationRentalOverdue         NotificationType = "rental_overdue"
	NotificationRentalPendingShipment NotificationType = "rental_pending_shipment"
)

// Notification is an admin-facing reminder row. ReferenceID points to a
// Device for subscription_due and to a Rental for the other types.
type Notification struct {
	ID          int32            `json:"id"`
	Type        NotificationType `json:"type"`
	ReferenceID int32            `json:"reference_id"`
	Message     string           `json:"message"`
	IsRead      bool             `json:"is_read"`
	CreatedAt   time.Time        `json:"created_at"`
}

// Key identifies a notification for same-day deduplication.
type NotificationKey struct {
	Type        NotificationType
	ReferenceID int32
}

func (n *Notification) Key() NotificationKey {
	return NotificationKey{Type: n.Type, ReferenceID: n.ReferenceID}
}

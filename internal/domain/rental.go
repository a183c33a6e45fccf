package domain

import "time"

type DeliveryMethod string

const (
	DeliveryMethodCollection DeliveryMethod = "collection"
	DeliveryMethodShipping   DeliveryMethod = "shipping"
)

type RentalStatus string

const (
	RentalStatusBooked   RentalStatus = "BOOKED"
	RentalStatusShipped  RentalStatus = "SHIPPED"
	RentalStatusReturned RentalStatus = "RETURNED"
)

// Rental is a firm booking binding one Device to one Customer for the
// half-open interval [StartDate, EndDate). Rate, deposit and total are
// snapshots taken from the DeviceType at booking time; catalog edits never
// reprice an existing rental. ShippedDate and ReturnedDate, once set, are
// never cleared.
type Rental struct {
	ID              int32             `json:"id"`
	DeviceID        int32             `json:"device_id"`
	Device          *Device           `json:"device,omitempty"`
	CustomerID      int32             `json:"customer_id"`
	Customer        *Customer         `json:"customer,omitempty"`
	StartDate       time.Time         `json:"start_date"`
	EndDate         time.Time         `json:"end_date"`
	DailyRateCents  int32             `json:"daily_rate_cents"`
	DepositCents    int32             `json:"deposit_cents"`
	TotalPaidCents  int32             `json:"total_paid_cents"`
	DeliveryMethod  DeliveryMethod    `json:"delivery_method"`
	ShippingAddress string            `json:"shipping_address,omitempty"`
	ShippedDate     *time.Time        `json:"shipped_date,omitempty"`
	ReturnedDate    *time.Time        `json:"returned_date,omitempty"`
	Accessories     []RentalAccessory `json:"accessories,omitempty"`
	CreatedOn       string            `json:"created_on"`
}

// RentalAccessory is an accessory line item owned by a Rental.
type RentalAccessory struct {
	ID          int32 `json:"id"`
	RentalID    int32 `json:"rental_id"`
	AccessoryID int32 `json:"accessory_id"`
	Quantity    int32 `json:"quantity"`
}

// Accessory is a catalog add-on (cables, mounts, cases) attachable to a
// rental as a line item.
type Accessory struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	FeeCents  int32  `json:"fee_cents"`
	CreatedOn string `json:"created_on"`
}

// Status derives the lifecycle state from the two timestamps.
func (r *Rental) Status() RentalStatus {
	switch {
	case r.ReturnedDate != nil:
		return RentalStatusReturned
	case r.ShippedDate != nil:
		return RentalStatusShipped
	default:
		return RentalStatusBooked
	}
}

// Overdue reports whether the rental is past its end date and not returned.
// Exact instant comparison, not day-truncated.
func (r *Rental) Overdue(now time.Time) bool {
	return r.ReturnedDate == nil && r.EndDate.Before(now)
}

// Overlaps reports whether the rental's [StartDate, EndDate) interval
// intersects [start, end).
func (r *Rental) Overlaps(start, end time.Time) bool {
	return r.StartDate.Before(end) && r.EndDate.After(start)
}

// PendingShipment reports whether the rental still awaits shipment:
// a shipping delivery with no shipped date recorded.
func (r *Rental) PendingShipment() bool {
	return r.DeliveryMethod == DeliveryMethodShipping && r.ShippedDate == nil
}

// RentalDays is the billed duration of the half-open interval, minimum one day.
func (r *Rental) RentalDays() int32 {
	days := int32(dateOnly(r.EndDate).Sub(dateOnly(r.StartDate)) / (24 * time.Hour))
	if days < 1 {
		days = 1
	}
	return days
}

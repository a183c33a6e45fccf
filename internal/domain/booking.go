package domain

import "time"

// BookingRequest is a cart submitted at checkout. The whole request is
// allocated all-or-nothing: if any line cannot be fully satisfied, no rental
// is created for any line.
type BookingRequest struct {
	CustomerID      int32          `json:"customer_id" validate:"required"`
	DeliveryMethod  DeliveryMethod `json:"delivery_method" validate:"required,oneof=collection shipping"`
	ShippingAddress string         `json:"shipping_address,omitempty"`
	Lines           []BookingLine  `json:"lines" validate:"required,min=1,dive"`
}

// BookingLine requests Quantity units of one DeviceType for the half-open
// window [StartDate, EndDate).
type BookingLine struct {
	DeviceTypeID int32                `json:"device_type_id" validate:"required"`
	Quantity     int32                `json:"quantity" validate:"required,min=1"`
	StartDate    time.Time            `json:"start_date" validate:"required"`
	EndDate      time.Time            `json:"end_date" validate:"required"`
	Accessories  []AccessorySelection `json:"accessories,omitempty" validate:"dive"`
}

type AccessorySelection struct {
	AccessoryID int32 `json:"accessory_id" validate:"required"`
	Quantity    int32 `json:"quantity" validate:"required,min=1"`
}

// BookingResult reports the rentals created by a successful allocation.
type BookingResult struct {
	RentalIDs []int32 `json:"rental_ids"`
}

// TypeAvailability is the availability partition for one DeviceType at an
// instant. Types with zero units are included with empty slices.
type TypeAvailability struct {
	DeviceType  DeviceType `json:"device_type"`
	Available   []Device   `json:"available"`
	Unavailable []Device   `json:"unavailable"`
}

func (a *TypeAvailability) AvailableCount() int { return len(a.Available) }

func (a *TypeAvailability) TotalCount() int { return len(a.Available) + len(a.Unavailable) }

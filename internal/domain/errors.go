package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDateRange is returned when a booking line's end date is not
	// after its start date.
	ErrInvalidDateRange = errors.New("end date must be after start date")

	// ErrNotFound is returned by repositories when the requested row does
	// not exist.
	ErrNotFound = errors.New("not found")
)

// InsufficientInventoryError reports a cart line whose requested quantity
// exceeds the units available for the whole window.
type InsufficientInventoryError struct {
	DeviceTypeID int32
	Requested    int32
	Available    int32
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient inventory for device type %d: requested %d, available %d",
		e.DeviceTypeID, e.Requested, e.Available)
}

// AllocationConflictError reports that a unit selected during availability
// check was claimed by a concurrent allocation before commit, and retries
// were exhausted.
type AllocationConflictError struct {
	Attempts int
}

func (e *AllocationConflictError) Error() string {
	return fmt.Sprintf("allocation conflict: lost race to a concurrent booking after %d attempts", e.Attempts)
}

// InvalidTransitionError reports a lifecycle operation whose guard failed,
// e.g. shipping an already-returned rental.
type InvalidTransitionError struct {
	RentalID int32
	Op       string
	Reason   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %q for rental %d: %s", e.Op, e.RentalID, e.Reason)
}

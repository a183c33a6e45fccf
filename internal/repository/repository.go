package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ezyy-cloud/rentals-sub000/internal/domain"
)

// ErrSerialization signals that the storage layer aborted a transaction
// because of a concurrent conflicting write. Callers may retry.
var ErrSerialization = errors.New("transaction serialization conflict")

type DeviceTypeRepository interface {
	Create(ctx context.Context, dt *domain.DeviceType) error
	GetByID(ctx context.Context, id int32) (*domain.DeviceType, error)
	List(ctx context.Context) ([]domain.DeviceType, error)
}

type DeviceRepository interface {
	Create(ctx context.Context, d *domain.Device) error
	GetByID(ctx context.Context, id int32) (*domain.Device, error)
	// ListWithTypes returns every unit with its DeviceType populated,
	// ordered by id.
	ListWithTypes(ctx context.Context) ([]domain.Device, error)
	ListByType(ctx context.Context, deviceTypeID int32) ([]domain.Device, error)
	UpdateSubscriptionDate(ctx context.Context, id int32, date time.Time) error
}

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	// AdminEmails returns the contact addresses of admin customers.
	AdminEmails(ctx context.Context) ([]string, error)
}

type RentalRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	// GetWithRelations loads the rental together with its device (and type),
	// customer and accessory line items, for email payloads.
	GetWithRelations(ctx context.Context, id int32) (*domain.Rental, error)
	// ListActive returns rentals considered to occupy their unit at `now`:
	// not returned and not yet ended (end_date >= now).
	ListActive(ctx context.Context, now time.Time) ([]domain.Rental, error)
	// ListUnreturned returns every rental with no returned date, for the
	// reminder sweep.
	ListUnreturned(ctx context.Context) ([]domain.Rental, error)
	// ListPendingShipments returns shipping rentals with no shipped date,
	// regardless of returned state.
	ListPendingShipments(ctx context.Context) ([]domain.Rental, error)
	MarkShipped(ctx context.Context, id int32, date time.Time) error
	MarkReturned(ctx context.Context, id int32, date time.Time) error
	Delete(ctx context.Context, id int32) error
}

// AllocationRepository commits a whole booking request atomically: candidate
// units are selected and locked, overlap is re-checked under the lock, and
// all rental and accessory rows are inserted in one transaction.
type AllocationRepository interface {
	// AllocateCart returns the created rentals (ids and device bindings) or
	// a domain error: *InsufficientInventoryError when a line cannot be
	// filled, serialization failures as ErrSerialization for the caller to
	// retry.
	AllocateCart(ctx context.Context, req *domain.BookingRequest, snapshots map[int32]*domain.DeviceType, now time.Time) ([]domain.Rental, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	CreateBatch(ctx context.Context, ns []domain.Notification) error
	List(ctx context.Context, limit, offset int32) ([]domain.Notification, int32, error)
	// ListUnreadSince returns unread notifications created at or after
	// `since`, used for same-day deduplication.
	ListUnreadSince(ctx context.Context, since time.Time) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, id int32) error
	// MarkReadByReference marks every unread notification with the given
	// type and reference as read. Returns the number of rows updated.
	MarkReadByReference(ctx context.Context, typ domain.NotificationType, referenceID int32) (int64, error)
}

type SubscriptionPaymentRepository interface {
	Create(ctx context.Context, p *domain.SubscriptionPayment) error
	ListByDevice(ctx context.Context, deviceID int32) ([]domain.SubscriptionPayment, error)
}

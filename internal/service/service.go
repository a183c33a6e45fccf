package service

import (
	"context"
	"time"

	"github.com/ezyy-cloud/rentals-sub000/internal/domain"
)

type AvailabilityService interface {
	// Snapshot partitions every unit of every DeviceType (or of one type
	// when deviceTypeID is set) into available and unavailable at the given
	// instant. Types with zero units are included.
	Snapshot(ctx context.Context, at time.Time, deviceTypeID *int32) ([]domain.TypeAvailability, error)
}

type BookingService interface {
	// Submit allocates the whole cart all-or-nothing and returns the ids of
	// the created rentals.
	Submit(ctx context.Context, req *domain.BookingRequest) (*domain.BookingResult, error)
}

type LifecycleService interface {
	MarkShipped(ctx context.Context, rentalID int32, date *time.Time) (*domain.Rental, error)
	MarkReturned(ctx context.Context, rentalID int32, date *time.Time) (*domain.Rental, error)
	Delete(ctx context.Context, rentalID int32) error
}

// SweepResult reports one reminder sweep: how many notification candidates
// the rules produced and how many survived deduplication and were inserted.
type SweepResult struct {
	Evaluated int `json:"evaluated"`
	Inserted  int `json:"inserted"`
}

type ReminderService interface {
	RunSweep(ctx context.Context) (*SweepResult, error)
}

type NotificationService interface {
	ListNotifications(ctx context.Context, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id int32) error
}

type SubscriptionService interface {
	// RecordPayment stores a subscription payment for a unit and advances
	// its subscription date by one month.
	RecordPayment(ctx context.Context, deviceID, amountCents int32, paidOn time.Time) (*domain.SubscriptionPayment, error)
}

// EmailSender is the external email collaborator. Sends are best-effort:
// callers log failures and never roll back the triggering record.
type EmailSender interface {
	SendBookingConfirmation(ctx context.Context, rental *domain.Rental) error
	SendSubscriptionDueReminder(ctx context.Context, adminEmail, deviceName string, dueDate time.Time, feeCents int32) error
	SendReturnDueReminder(ctx context.Context, rental *domain.Rental, daysLeft int) error
	SendOverdueNotice(ctx context.Context, recipientEmail string, rental *domain.Rental) error
}

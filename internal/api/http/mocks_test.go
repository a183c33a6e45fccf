package http

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ezyy-cloud/rentals-sub000/internal/domain"
)

// MockAvailabilityService
type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) Snapshot(ctx context.Context, at time.Time, deviceTypeID *int32) ([]domain.TypeAvailability, error) {
	args := m.Called(ctx, at, deviceTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TypeAvailability), args.Error(1)
}

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Submit(ctx context.Context, req *domain.BookingRequest) (*domain.BookingResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingResult), args.Error(1)
}

// MockLifecycleService
type MockLifecycleService struct {
	mock.Mock
}

func (m *MockLifecycleService) MarkShipped(ctx context.Context, rentalID int32, date *time.Time) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockLifecycleService) MarkReturned(ctx context.Context, rentalID int32, date *time.Time) (*domain.Rental, error) {
	args := m.Called(ctx, rentalID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockLifecycleService) Delete(ctx context.Context, rentalID int32) error {
	args := m.Called(ctx, rentalID)
	return args.Error(0)
}

// MockNotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) ListNotifications(ctx context.Context, page, pageSize int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), int32(args.Int(1)), args.Error(2)
}
func (m *MockNotificationService) MarkAsRead(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSubscriptionService
type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) RecordPayment(ctx context.Context, deviceID, amountCents int32, paidOn time.Time) (*domain.SubscriptionPayment, error) {
	args := m.Called(ctx, deviceID, amountCents, paidOn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubscriptionPayment), args.Error(1)
}

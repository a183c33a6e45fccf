package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ezyy-cloud/rentals-sub000/internal/domain"
)

// MockDeviceTypeRepo
type MockDeviceTypeRepo struct {
	mock.Mock
}

func (m *MockDeviceTypeRepo) Create(ctx context.Context, dt *domain.DeviceType) error {
	args := m.Called(ctx, dt)
	return args.Error(0)
}
func (m *MockDeviceTypeRepo) GetByID(ctx context.Context, id int32) (*domain.DeviceType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeviceType), args.Error(1)
}
func (m *MockDeviceTypeRepo) List(ctx context.Context) ([]domain.DeviceType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DeviceType), args.Error(1)
}

// MockDeviceRepo
type MockDeviceRepo struct {
	mock.Mock
}

func (m *MockDeviceRepo) Create(ctx context.Context, d *domain.Device) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeviceRepo) GetByID(ctx context.Context, id int32) (*domain.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Device), args.Error(1)
}
func (m *MockDeviceRepo) ListWithTypes(ctx context.Context) ([]domain.Device, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Device), args.Error(1)
}
func (m *MockDeviceRepo) ListByType(ctx context.Context, deviceTypeID int32) ([]domain.Device, error) {
	args := m.Called(ctx, deviceTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Device), args.Error(1)
}
func (m *MockDeviceRepo) UpdateSubscriptionDate(ctx context.Context, id int32, date time.Time) error {
	args := m.Called(ctx, id, date)
	return args.Error(0)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) AdminEmails(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) GetWithRelations(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListActive(ctx context.Context, now time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListUnreturned(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListPendingShipments(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) MarkShipped(ctx context.Context, id int32, date time.Time) error {
	args := m.Called(ctx, id, date)
	return args.Error(0)
}
func (m *MockRentalRepo) MarkReturned(ctx context.Context, id int32, date time.Time) error {
	args := m.Called(ctx, id, date)
	return args.Error(0)
}
func (m *MockRentalRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAllocationRepo
type MockAllocationRepo struct {
	mock.Mock
}

func (m *MockAllocationRepo) AllocateCart(ctx context.Context, req *domain.BookingRequest, snapshots map[int32]*domain.DeviceType, now time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, req, snapshots, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepo) CreateBatch(ctx context.Context, ns []domain.Notification) error {
	args := m.Called(ctx, ns)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), int32(args.Int(1)), args.Error(2)
}
func (m *MockNotificationRepo) ListUnreadSince(ctx context.Context, since time.Time) ([]domain.Notification, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockNotificationRepo) MarkReadByReference(ctx context.Context, typ domain.NotificationType, referenceID int32) (int64, error) {
	args := m.Called(ctx, typ, referenceID)
	return int64(args.Int(0)), args.Error(1)
}

// MockSubscriptionPaymentRepo
type MockSubscriptionPaymentRepo struct {
	mock.Mock
}

func (m *MockSubscriptionPaymentRepo) Create(ctx context.Context, p *domain.SubscriptionPayment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockSubscriptionPaymentRepo) ListByDevice(ctx context.Context, deviceID int32) ([]domain.SubscriptionPayment, error) {
	args := m.Called(ctx, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubscriptionPayment), args.Error(1)
}

// MockEmailSender
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendBookingConfirmation(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockEmailSender) SendSubscriptionDueReminder(ctx context.Context, adminEmail, deviceName string, dueDate time.Time, feeCents int32) error {
	args := m.Called(ctx, adminEmail, deviceName, dueDate, feeCents)
	return args.Error(0)
}
func (m *MockEmailSender) SendReturnDueReminder(ctx context.Context, rental *domain.Rental, daysLeft int) error {
	args := m.Called(ctx, rental, daysLeft)
	return args.Error(0)
}
func (m *MockEmailSender) SendOverdueNotice(ctx context.Context, recipientEmail string, rental *domain.Rental) error {
	args := m.Called(ctx, recipientEmail, rental)
	return args.Error(0)
}

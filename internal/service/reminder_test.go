package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ezyy-cloud/rentals-sub000/internal/clock"
	"github.com/ezyy-cloud/rentals-sub000/internal/domain"
)

func TestReminderService_RunSweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 29, 6, 0, 0, 0, time.UTC)
	clk := clock.Fixed{Instant: now}
	today := clock.Day(now)

	camType := &domain.DeviceType{ID: 1, Name: "Action Camera", HasSubscription: true, SubscriptionFeeCents: 1500}
	customer := &domain.Customer{ID: 7, Name: "Dana", Email: "dana@example.com"}

	newMocks := func() (*MockDeviceRepo, *MockRentalRepo, *MockCustomerRepo, *MockNotificationRepo, *MockEmailSender) {
		return new(MockDeviceRepo), new(MockRentalRepo), new(MockCustomerRepo),
			new(MockNotificationRepo), new(MockEmailSender)
	}

	t.Run("SubscriptionDueInSevenDays", func(t *testing.T) {
		deviceRepo, rentalRepo, customerRepo, noteRepo, emailSvc := newMocks()

		dueIn7 := now.AddDate(0, 0, 7)
		dueIn6 := now.AddDate(0, 0, 6)
		customerRepo.On("AdminEmails", ctx).Return([]string{"admin@example.com"}, nil)
		deviceRepo.On("ListWithTypes", ctx).Return([]domain.Device{
			{ID: 11, DeviceTypeID: 1, DeviceType: camType, SubscriptionDate: &dueIn7},
			{ID: 12, DeviceTypeID: 1, DeviceType: camType, SubscriptionDate: &dueIn6},
			{ID: 13, DeviceTypeID: 1, DeviceType: camType},
		}, nil)
		rentalRepo.On("ListUnreturned", ctx).Return([]domain.Rental{}, nil)
		rentalRepo.On("ListPendingShipments", ctx).Return([]domain.Rental{}, nil)
		noteRepo.On("ListUnreadSince", ctx, today).Return([]domain.Notification{}, nil)
		noteRepo.On("CreateBatch", ctx, mock.MatchedBy(func(ns []domain.Notification) bool {
			return len(ns) == 1 &&
				ns[0].Type == domain.NotificationSubscriptionDue &&
				ns[0].ReferenceID == 11
		})).Return(nil)
		emailSvc.On("SendSubscriptionDueReminder", ctx, "admin@example.com", "Action Camera", dueIn7, int32(1500)).Return(nil)

		svc := NewReminderService(deviceRepo, rentalRepo, customerRepo, noteRepo, emailSvc, clk)
		result, err := svc.RunSweep(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Evaluated)
		assert.Equal(t, 1, result.Inserted)
		noteRepo.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("ReturnDueRules", func(t *testing.T) {
		deviceRepo, rentalRepo, customerRepo, noteRepo, emailSvc := newMocks()

		dueIn7 := domain.Rental{ID: 100, CustomerID: 7, EndDate: now.AddDate(0, 0, 7)}
		dueTomorrow := domain.Rental{ID: 101, CustomerID: 7, EndDate: now.AddDate(0, 0, 1)}
		overdue := domain.Rental{ID: 102, CustomerID: 7, EndDate: now.AddDate(0, 0, -2)}

		customerRepo.On("AdminEmails", ctx).Return([]string{"admin@example.com"}, nil)
		deviceRepo.On("ListWithTypes", ctx).Return([]domain.Device{}, nil)
		rentalRepo.On("ListUnreturned", ctx).Return([]domain.Rental{dueIn7, dueTomorrow, overdue}, nil)
		rentalRepo.On("ListPendingShipments", ctx).Return([]domain.Rental{}, nil)

		withCustomer := func(rt domain.Rental) *domain.Rental {
			rt.Customer = customer
			return &rt
		}
		rentalRepo.On("GetWithRelations", ctx, int32(100)).Return(withCustomer(dueIn7), nil)
		rentalRepo.On("GetWithRelations", ctx, int32(101)).Return(withCustomer(dueTomorrow), nil)
		rentalRepo.On("GetWithRelations", ctx, int32(102)).Return(withCustomer(overdue), nil)

		emailSvc.On("SendReturnDueReminder", ctx, mock.Anything, 7).Return(nil)
		emailSvc.On("SendReturnDueReminder", ctx, mock.Anything, 1).Return(nil)
		emailSvc.On("SendOverdueNotice", ctx, "dana@example.com", mock.Anything).Return(nil)
		emailSvc.On("SendOverdueNotice", ctx, "admin@example.com", mock.Anything).Return(nil)

		noteRepo.On("ListUnreadSince", ctx, today).Return([]domain.Notification{}, nil)
		noteRepo.On("CreateBatch", ctx, mock.MatchedBy(func(ns []domain.Notification) bool {
			if len(ns) != 2 {
				return false
			}
			// The due-tomorrow rule is email-only, so only 7-day and
			// overdue rows are inserted.
			return ns[0].Type == domain.NotificationRentalDue && ns[0].ReferenceID == 100 &&
				ns[1].Type == domain.NotificationRentalOverdue && ns[1].ReferenceID == 102
		})).Return(nil)

		svc := NewReminderService(deviceRepo, rentalRepo, customerRepo, noteRepo, emailSvc, clk)
		result, err := svc.RunSweep(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 2, result.Evaluated)
		assert.Equal(t, 2, result.Inserted)
		noteRepo.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("SameDayDedupIsIdempotent", func(t *testing.T) {
		deviceRepo, rentalRepo, customerRepo, noteRepo, emailSvc := newMocks()

		customerRepo.On("AdminEmails", ctx).Return([]string{}, nil)
		deviceRepo.On("ListWithTypes", ctx).Return([]domain.Device{}, nil)
		rentalRepo.On("ListUnreturned", ctx).Return([]domain.Rental{}, nil)
		rentalRepo.On("ListPendingShipments", ctx).Return([]domain.Rental{
			{ID: 300, DeliveryMethod: domain.DeliveryMethodShipping},
		}, nil)
		// An earlier sweep today already produced this row.
		noteRepo.On("ListUnreadSince", ctx, today).Return([]domain.Notification{
			{ID: 1, Type: domain.NotificationRentalPendingShipment, ReferenceID: 300, CreatedAt: now.Add(-time.Hour)},
		}, nil)

		svc := NewReminderService(deviceRepo, rentalRepo, customerRepo, noteRepo, emailSvc, clk)
		result, err := svc.RunSweep(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Evaluated)
		assert.Equal(t, 0, result.Inserted)
		noteRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})

	t.Run("OverdueRepeatsOnNextDay", func(t *testing.T) {
		deviceRepo, rentalRepo, customerRepo, noteRepo, emailSvc := newMocks()

		overdue := domain.Rental{ID: 102, CustomerID: 7, EndDate: now.AddDate(0, 0, -2)}
		customerRepo.On("AdminEmails", ctx).Return([]string{}, nil)
		deviceRepo.On("ListWithTypes", ctx).Return([]domain.Device{}, nil)
		rentalRepo.On("ListUnreturned", ctx).Return([]domain.Rental{overdue}, nil)
		rentalRepo.On("ListPendingShipments", ctx).Return([]domain.Rental{}, nil)
		full := overdue
		full.Customer = customer
		rentalRepo.On("GetWithRelations", ctx, int32(102)).Return(&full, nil)
		emailSvc.On("SendOverdueNotice", ctx, "dana@example.com", mock.Anything).Return(nil)

		// Yesterday's unread row does not suppress today's: dedup only sees
		// rows created since midnight.
		noteRepo.On("ListUnreadSince", ctx, today).Return([]domain.Notification{}, nil)
		noteRepo.On("CreateBatch", ctx, mock.MatchedBy(func(ns []domain.Notification) bool {
			return len(ns) == 1 && ns[0].Type == domain.NotificationRentalOverdue
		})).Return(nil)

		svc := NewReminderService(deviceRepo, rentalRepo, customerRepo, noteRepo, emailSvc, clk)
		result, err := svc.RunSweep(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Inserted)
	})

	t.Run("AdminLookupFailureDoesNotAbortSweep", func(t *testing.T) {
		deviceRepo, rentalRepo, customerRepo, noteRepo, emailSvc := newMocks()

		customerRepo.On("AdminEmails", ctx).Return(nil, assert.AnError)
		deviceRepo.On("ListWithTypes", ctx).Return([]domain.Device{}, nil)
		rentalRepo.On("ListUnreturned", ctx).Return([]domain.Rental{}, nil)
		rentalRepo.On("ListPendingShipments", ctx).Return([]domain.Rental{}, nil)
		noteRepo.On("ListUnreadSince", ctx, today).Return([]domain.Notification{}, nil)

		svc := NewReminderService(deviceRepo, rentalRepo, customerRepo, noteRepo, emailSvc, clk)
		result, err := svc.RunSweep(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 0, result.Evaluated)
	})
}

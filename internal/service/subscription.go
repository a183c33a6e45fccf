package service

import (
	"context"
	"time"

	"github.com/ezyy-cloud/rentals-sub000/internal/clock"
	"github.com/ezyy-cloud/rentals-sub000/internal/domain"
	"github.com/ezyy-cloud/rentals-sub000/internal/repository"
)

type subscriptionService struct {
	deviceRepo  repository.DeviceRepository
	paymentRepo repository.SubscriptionPaymentRepository
	clk         clock.Clock
}

func NewSubscriptionService(
	deviceRepo repository.DeviceRepository,
	paymentRepo repository.SubscriptionPaymentRepository,
	clk clock.Clock,
) SubscriptionService {
	return &subscriptionService{
		deviceRepo:  deviceRepo,
		paymentRepo: paymentRepo,
		clk:         clk,
	}
}

func (s *subscriptionService) RecordPayment(ctx context.Context, deviceID, amountCents int32, paidOn time.Time) (*domain.SubscriptionPayment, error) {
	device, err := s.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	payment := &domain.SubscriptionPayment{
		DeviceID:    deviceID,
		AmountCents: amountCents,
		PaidOn:      paidOn,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	// Advance the gating date one month past whichever is later: the current
	// renewal date or today. A lapsed subscription restarts from now rather
	// than accumulating missed months.
	base := clock.Day(s.clk.Now())
	if device.SubscriptionDate != nil && device.SubscriptionDate.After(base) {
		base = *device.SubscriptionDate
	}
	next := base.AddDate(0, 1, 0)
	if err := s.deviceRepo.UpdateSubscriptionDate(ctx, deviceID, next); err != nil {
		return nil, err
	}
	return payment, nil
}

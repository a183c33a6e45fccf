package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ezyy-cloud/rentals-sub000/internal/clock"
	"github.com/ezyy-cloud/rentals-sub000/internal/domain"
	"github.com/ezyy-cloud/rentals-sub000/internal/logger"
	"github.com/ezyy-cloud/rentals-sub000/internal/repository"
)

// allocationAttempts bounds the retry loop on serialization conflicts before
// the caller is told to resubmit.
const allocationAttempts = 3

type bookingService struct {
	allocRepo      repository.AllocationRepository
	deviceTypeRepo repository.DeviceTypeRepository
	rentalRepo     repository.RentalRepository
	noteRepo       repository.NotificationRepository
	emailSvc       EmailSender
	clk            clock.Clock
}

func NewBookingService(
	allocRepo repository.AllocationRepository,
	deviceTypeRepo repository.DeviceTypeRepository,
	rentalRepo repository.RentalRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailSender,
	clk clock.Clock,
) BookingService {
	return &bookingService{
		allocRepo:      allocRepo,
		deviceTypeRepo: deviceTypeRepo,
		rentalRepo:     rentalRepo,
		noteRepo:       noteRepo,
		emailSvc:       emailSvc,
		clk:            clk,
	}
}

func (s *bookingService) Submit(ctx context.Context, req *domain.BookingRequest) (*domain.BookingResult, error) {
	for _, line := range req.Lines {
		if !line.EndDate.After(line.StartDate) {
			return nil, domain.ErrInvalidDateRange
		}
	}

	// Price snapshots are taken once, before allocation; every rental of a
	// line carries the same snapshot regardless of later catalog edits.
	snapshots := make(map[int32]*domain.DeviceType)
	for _, line := range req.Lines {
		if _, ok := snapshots[line.DeviceTypeID]; ok {
			continue
		}
		dt, err := s.deviceTypeRepo.GetByID(ctx, line.DeviceTypeID)
		if err != nil {
			return nil, fmt.Errorf("loading device type %d: %w", line.DeviceTypeID, err)
		}
		snapshots[line.DeviceTypeID] = dt
	}

	now := s.clk.Now()
	var created []domain.Rental
	var err error
	for attempt := 1; attempt <= allocationAttempts; attempt++ {
		created, err = s.allocRepo.AllocateCart(ctx, req, snapshots, now)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrSerialization) {
			return nil, err
		}
		logger.Warn("allocation lost a race, retrying", "attempt", attempt, "customer_id", req.CustomerID)
	}
	if err != nil {
		return nil, &domain.AllocationConflictError{Attempts: allocationAttempts}
	}

	s.emitBookingSideEffects(ctx, created)

	result := &domain.BookingResult{RentalIDs: make([]int32, len(created))}
	for i, rt := range created {
		result.RentalIDs[i] = rt.ID
	}
	return result, nil
}

// emitBookingSideEffects raises pending-shipment notifications and sends the
// confirmation email. Both are side channels: failures are logged and never
// unwind the committed booking.
func (s *bookingService) emitBookingSideEffects(ctx context.Context, created []domain.Rental) {
	var candidates []domain.Notification
	now := s.clk.Now()
	for _, rt := range created {
		if rt.PendingShipment() {
			candidates = append(candidates, domain.Notification{
				Type:        domain.NotificationRentalPendingShipment,
				ReferenceID: rt.ID,
				Message:     fmt.Sprintf("Rental #%d awaits shipment", rt.ID),
				CreatedAt:   now,
			})
		}
	}
	if len(candidates) > 0 {
		if _, err := insertDeduped(ctx, s.noteRepo, now, candidates); err != nil {
			logger.Error("failed to record pending shipment notifications", "error", err)
		}
	}

	for _, rt := range created {
		full, err := s.rentalRepo.GetWithRelations(ctx, rt.ID)
		if err != nil {
			logger.Error("failed to load rental for confirmation email", "rental_id", rt.ID, "error", err)
			continue
		}
		err = s.emailSvc.SendBookingConfirmation(ctx, full)
		logger.EmailResult("booking_confirmation", err, "rental_id", rt.ID)
	}
}

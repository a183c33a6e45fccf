package service

import (
	"context"
	"time"

	"github.com/ezyy-cloud/rentals-sub000/internal/clock"
	"github.com/ezyy-cloud/rentals-sub000/internal/domain"
	"github.com/ezyy-cloud/rentals-sub000/internal/logger"
	"github.com/ezyy-cloud/rentals-sub000/internal/repository"
)

type lifecycleService struct {
	rentalRepo repository.RentalRepository
	noteRepo   repository.NotificationRepository
	clk        clock.Clock
}

func NewLifecycleService(
	rentalRepo repository.RentalRepository,
	noteRepo repository.NotificationRepository,
	clk clock.Clock,
) LifecycleService {
	return &lifecycleService{
		rentalRepo: rentalRepo,
		noteRepo:   noteRepo,
		clk:        clk,
	}
}

func (s *lifecycleService) MarkShipped(ctx context.Context, rentalID int32, date *time.Time) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rt.DeliveryMethod != domain.DeliveryMethodShipping {
		return nil, &domain.InvalidTransitionError{RentalID: rentalID, Op: "ship", Reason: "delivery method is not shipping"}
	}
	if rt.ReturnedDate != nil {
		return nil, &domain.InvalidTransitionError{RentalID: rentalID, Op: "ship", Reason: "rental already returned"}
	}
	if rt.ShippedDate != nil {
		return nil, &domain.InvalidTransitionError{RentalID: rentalID, Op: "ship", Reason: "rental already shipped"}
	}

	shipped := s.clk.Now()
	if date != nil {
		shipped = *date
	}
	if err := s.rentalRepo.MarkShipped(ctx, rentalID, shipped); err != nil {
		return nil, err
	}
	rt.ShippedDate = &shipped

	// Shipping resolves any open pending-shipment reminder. Side channel:
	// a failure here does not undo the shipment.
	if _, err := s.noteRepo.MarkReadByReference(ctx, domain.NotificationRentalPendingShipment, rentalID); err != nil {
		logger.Error("failed to mark pending shipment notifications read", "rental_id", rentalID, "error", err)
	}
	return rt, nil
}

func (s *lifecycleService) MarkReturned(ctx context.Context, rentalID int32, date *time.Time) (*domain.Rental, error) {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rt.ReturnedDate != nil {
		return nil, &domain.InvalidTransitionError{RentalID: rentalID, Op: "return", Reason: "rental already returned"}
	}

	returned := s.clk.Now()
	if date != nil {
		returned = *date
	}
	if err := s.rentalRepo.MarkReturned(ctx, rentalID, returned); err != nil {
		return nil, err
	}
	rt.ReturnedDate = &returned
	return rt, nil
}

func (s *lifecycleService) Delete(ctx context.Context, rentalID int32) error {
	rt, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}
	// Returned rentals are history, not clutter. They stay.
	if rt.ReturnedDate != nil {
		return &domain.InvalidTransitionError{RentalID: rentalID, Op: "delete", Reason: "returned rentals cannot be deleted"}
	}
	return s.rentalRepo.Delete(ctx, rentalID)
}

package service

import (
	"context"
	"time"

	"github.com/ezyy-cloud/rentals-sub000/internal/domain"
	"github.com/ezyy-cloud/rentals-sub000/internal/repository"
)

type availabilityService struct {
	deviceTypeRepo repository.DeviceTypeRepository
	deviceRepo     repository.DeviceRepository
	rentalRepo     repository.RentalRepository
}

func NewAvailabilityService(
	deviceTypeRepo repository.DeviceTypeRepository,
	deviceRepo repository.DeviceRepository,
	rentalRepo repository.RentalRepository,
) AvailabilityService {
	return &availabilityService{
		deviceTypeRepo: deviceTypeRepo,
		deviceRepo:     deviceRepo,
		rentalRepo:     rentalRepo,
	}
}

func (s *availabilityService) Snapshot(ctx context.Context, at time.Time, deviceTypeID *int32) ([]domain.TypeAvailability, error) {
	var types []domain.DeviceType
	var devices []domain.Device
	var err error

	if deviceTypeID != nil {
		dt, err := s.deviceTypeRepo.GetByID(ctx, *deviceTypeID)
		if err != nil {
			return nil, err
		}
		types = []domain.DeviceType{*dt}
		devices, err = s.deviceRepo.ListByType(ctx, *deviceTypeID)
		if err != nil {
			return nil, err
		}
	} else {
		types, err = s.deviceTypeRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		devices, err = s.deviceRepo.ListWithTypes(ctx)
		if err != nil {
			return nil, err
		}
	}

	// Occupancy at an instant: a unit is busy while some rental on it is
	// neither returned nor ended.
	active, err := s.rentalRepo.ListActive(ctx, at)
	if err != nil {
		return nil, err
	}
	busy := make(map[int32]bool, len(active))
	for _, rt := range active {
		busy[rt.DeviceID] = true
	}

	// Keyed partitions so types with zero units still appear.
	byType := make(map[int32]*domain.TypeAvailability, len(types))
	result := make([]domain.TypeAvailability, len(types))
	for i, dt := range types {
		result[i] = domain.TypeAvailability{DeviceType: dt}
		byType[dt.ID] = &result[i]
	}

	for _, d := range devices {
		ta, ok := byType[d.DeviceTypeID]
		if !ok {
			continue
		}
		if s.unitAvailable(&d, ta.DeviceType.HasSubscription, busy, at) {
			ta.Available = append(ta.Available, d)
		} else {
			ta.Unavailable = append(ta.Unavailable, d)
		}
	}
	return result, nil
}

func (s *availabilityService) unitAvailable(d *domain.Device, hasSubscription bool, busy map[int32]bool, at time.Time) bool {
	if d.WorkingState != domain.WorkingStateWorking {
		return false
	}
	if busy[d.ID] {
		return false
	}
	return d.SubscriptionCurrent(hasSubscription, at)
}

package postgres

import (
	"database/sql"

	"github.com/ezyy-cloud/rentals-sub000/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.DeviceTypeRepository
	repository.DeviceRepository
	repository.CustomerRepository
	repository.RentalRepository
	repository.AllocationRepository
	repository.NotificationRepository
	repository.SubscriptionPaymentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                            db,
		DeviceTypeRepository:          NewDeviceTypeRepository(db),
		DeviceRepository:              NewDeviceRepository(db),
		CustomerRepository:            NewCustomerRepository(db),
		RentalRepository:              NewRentalRepository(db),
		AllocationRepository:          NewAllocationRepository(db),
		NotificationRepository:        NewNotificationRepository(db),
		SubscriptionPaymentRepository: NewSubscriptionPaymentRepository(db),
	}
}

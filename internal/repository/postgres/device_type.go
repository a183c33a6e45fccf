package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ezyy-cloud/rentals-sub000/internal/domain"
	"github.com/ezyy-cloud/rentals-sub000/internal/repository"
)

type deviceTypeRepository struct {
	db *sql.DB
}

func NewDeviceTypeRepository(db *sql.DB) repository.DeviceTypeRepository {
	return &deviceTypeRepository{db: db}
}

func (r *deviceTypeRepository) Create(ctx context.Context, dt *domain.DeviceType) error {
	query := `INSERT INTO device_types (name, daily_rate_cents, deposit_cents, has_subscription, subscription_fee_cents, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		dt.Name, dt.DailyRateCents, dt.DepositCents, dt.HasSubscription, dt.SubscriptionFeeCents, time.Now()).Scan(&dt.ID)
}

func (r *deviceTypeRepository) GetByID(ctx context.Context, id int32) (*domain.DeviceType, error) {
	dt := &domain.DeviceType{}
	query := `SELECT id, name, daily_rate_cents, deposit_cents, has_subscription, subscription_fee_cents, created_on
	          FROM device_types WHERE id = $1`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&dt.ID, &dt.Name, &dt.DailyRateCents, &dt.DepositCents, &dt.HasSubscription, &dt.SubscriptionFeeCents, &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	dt.CreatedOn = createdOn.Format("2006-01-02")
	return dt, nil
}

func (r *deviceTypeRepository) List(ctx context.Context) ([]domain.DeviceType, error) {
	query := `SELECT id, name, daily_rate_cents, deposit_cents, has_subscription, subscription_fee_cents, created_on
	          FROM device_types ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []domain.DeviceType
	for rows.Next() {
		var dt domain.DeviceType
		var createdOn time.Time
		if err := rows.Scan(&dt.ID, &dt.Name, &dt.DailyRateCents, &dt.DepositCents, &dt.HasSubscription, &dt.SubscriptionFeeCents, &createdOn); err != nil {
			return nil, err
		}
		dt.CreatedOn = createdOn.Format("2006-01-02")
		types = append(types, dt)
	}
	return types, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ezyy-cloud/rentals-sub000/internal/domain"
	"github.com/ezyy-cloud/rentals-sub000/internal/repository"
)

type deviceRepository struct {
	db *sql.DB
}

func NewDeviceRepository(db *sql.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

func (r *deviceRepository) Create(ctx context.Context, d *domain.Device) error {
	query := `INSERT INTO devices (device_type_id, serial_number, working_state, subscription_date, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		d.DeviceTypeID, d.SerialNumber, d.WorkingState, d.SubscriptionDate, time.Now()).Scan(&d.ID)
}

func (r *deviceRepository) GetByID(ctx context.Context, id int32) (*domain.Device, error) {
	d := &domain.Device{}
	query := `SELECT id, device_type_id, serial_number, working_state, subscription_date, created_on
	          FROM devices WHERE id = $1`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.DeviceTypeID, &d.SerialNumber, &d.WorkingState, &d.SubscriptionDate, &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	d.CreatedOn = createdOn.Format("2006-01-02")
	return d, nil
}

func (r *deviceRepository) ListWithTypes(ctx context.Context) ([]domain.Device, error) {
	query := `SELECT d.id, d.device_type_id, d.serial_number, d.working_state, d.subscription_date, d.created_on,
	                 t.id, t.name, t.daily_rate_cents, t.deposit_cents, t.has_subscription, t.subscription_fee_cents
	          FROM devices d
	          JOIN device_types t ON d.device_type_id = t.id
	          ORDER BY d.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDevicesWithTypes(rows)
}

func (r *deviceRepository) ListByType(ctx context.Context, deviceTypeID int32) ([]domain.Device, error) {
	query := `SELECT d.id, d.device_type_id, d.serial_number, d.working_state, d.subscription_date, d.created_on,
	                 t.id, t.name, t.daily_rate_cents, t.deposit_cents, t.has_subscription, t.subscription_fee_cents
	          FROM devices d
	          JOIN device_types t ON d.device_type_id = t.id
	          WHERE d.device_type_id = $1
	          ORDER BY d.id`
	rows, err := r.db.QueryContext(ctx, query, deviceTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDevicesWithTypes(rows)
}

func (r *deviceRepository) UpdateSubscriptionDate(ctx context.Context, id int32, date time.Time) error {
	query := `UPDATE devices SET subscription_date = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, date, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanDevicesWithTypes(rows *sql.Rows) ([]domain.Device, error) {
	var devices []domain.Device
	for rows.Next() {
		var d domain.Device
		var t domain.DeviceType
		var createdOn time.Time
		if err := rows.Scan(&d.ID, &d.DeviceTypeID, &d.SerialNumber, &d.WorkingState, &d.SubscriptionDate, &createdOn,
			&t.ID, &t.Name, &t.DailyRateCents, &t.DepositCents, &t.HasSubscription, &t.SubscriptionFeeCents); err != nil {
			return nil, err
		}
		d.CreatedOn = createdOn.Format("2006-01-02")
		d.DeviceType = &t
		devices = append(devices, d)
	}
	return devices, rows.Err()
}

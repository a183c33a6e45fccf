package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ezyy-cloud/rentals-sub000/internal/domain"
	"github.com/ezyy-cloud/rentals-sub000/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, device_id, customer_id, start_date, end_date, daily_rate_cents, deposit_cents,
	total_paid_cents, delivery_method, shipping_address, shipped_date, returned_date, created_on`

func scanRental(scanner interface{ Scan(...any) error }) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var shippingAddress sql.NullString
	var createdOn time.Time
	err := scanner.Scan(&rt.ID, &rt.DeviceID, &rt.CustomerID, &rt.StartDate, &rt.EndDate,
		&rt.DailyRateCents, &rt.DepositCents, &rt.TotalPaidCents, &rt.DeliveryMethod,
		&shippingAddress, &rt.ShippedDate, &rt.ReturnedDate, &createdOn)
	if err != nil {
		return nil, err
	}
	rt.ShippingAddress = shippingAddress.String
	rt.CreatedOn = createdOn.Format("2006-01-02")
	return rt, nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rt, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return rt, err
}

func (r *rentalRepository) GetWithRelations(ctx context.Context, id int32) (*domain.Rental, error) {
	rt, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	deviceQuery := `SELECT d.id, d.device_type_id, d.serial_number, d.working_state, d.subscription_date, d.created_on,
	                       t.id, t.name, t.daily_rate_cents, t.deposit_cents, t.has_subscription, t.subscription_fee_cents
	                FROM devices d JOIN device_types t ON d.device_type_id = t.id WHERE d.id = $1`
	rows, err := r.db.QueryContext(ctx, deviceQuery, rt.DeviceID)
	if err != nil {
		return nil, err
	}
	devices, err := scanDevicesWithTypes(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}
	if len(devices) > 0 {
		rt.Device = &devices[0]
	}

	customer := &domain.Customer{}
	var customerCreated time.Time
	err = r.db.QueryRowContext(ctx,
		`SELECT id, name, email, phone, is_admin, created_on FROM customers WHERE id = $1`, rt.CustomerID).
		Scan(&customer.ID, &customer.Name, &customer.Email, &customer.Phone, &customer.IsAdmin, &customerCreated)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err == nil {
		customer.CreatedOn = customerCreated.Format("2006-01-02")
		rt.Customer = customer
	}

	accRows, err := r.db.QueryContext(ctx,
		`SELECT id, rental_id, accessory_id, quantity FROM rental_accessories WHERE rental_id = $1 ORDER BY id`, rt.ID)
	if err != nil {
		return nil, err
	}
	defer accRows.Close()
	for accRows.Next() {
		var a domain.RentalAccessory
		if err := accRows.Scan(&a.ID, &a.RentalID, &a.AccessoryID, &a.Quantity); err != nil {
			return nil, err
		}
		rt.Accessories = append(rt.Accessories, a)
	}
	return rt, accRows.Err()
}

func (r *rentalRepository) ListActive(ctx context.Context, now time.Time) ([]domain.Rental, error) {
	// Occupancy approximation for point-in-time availability: not returned
	// and not yet ended.
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE returned_date IS NULL AND end_date >= $1 ORDER BY id`
	return r.listRentals(ctx, query, now)
}

func (r *rentalRepository) ListUnreturned(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE returned_date IS NULL ORDER BY id`
	return r.listRentals(ctx, query)
}

func (r *rentalRepository) ListPendingShipments(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE delivery_method = 'shipping' AND shipped_date IS NULL ORDER BY id`
	return r.listRentals(ctx, query)
}

func (r *rentalRepository) listRentals(ctx context.Context, query string, args ...any) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) MarkShipped(ctx context.Context, id int32, date time.Time) error {
	// Guard repeated at the storage layer: a shipped date is never overwritten.
	query := `UPDATE rentals SET shipped_date = $1 WHERE id = $2 AND shipped_date IS NULL AND returned_date IS NULL`
	return r.execGuarded(ctx, query, date, id)
}

func (r *rentalRepository) MarkReturned(ctx context.Context, id int32, date time.Time) error {
	query := `UPDATE rentals SET returned_date = $1 WHERE id = $2 AND returned_date IS NULL`
	return r.execGuarded(ctx, query, date, id)
}

func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	// Accessory rows and the rental row go together or not at all.
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM rental_accessories WHERE rental_id = $1`, id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
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
	return tx.Commit()
}

func (r *rentalRepository) execGuarded(ctx context.Context, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
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

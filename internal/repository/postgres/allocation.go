package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"github.com/ezyy-cloud/rentals-sub000/internal/domain"
	"github.com/ezyy-cloud/rentals-sub000/internal/repository"
)

type allocationRepository struct {
	db *sql.DB
}

func NewAllocationRepository(db *sql.DB) repository.AllocationRepository {
	return &allocationRepository{db: db}
}

// selectCandidatesQuery picks every unit of a type that is working, has a
// current subscription (when required) and has no non-returned rental
// overlapping the requested half-open window. Candidate rows are locked so
// two concurrent checkouts cannot both claim them; ascending id keeps the
// selection deterministic and the lock order stable.
const selectCandidatesQuery = `
	SELECT d.id FROM devices d
	WHERE d.device_type_id = $1
	  AND d.working_state = 'WORKING'
	  AND ($2 = FALSE OR (d.subscription_date IS NOT NULL AND d.subscription_date >= $3))
	  AND NOT EXISTS (
	      SELECT 1 FROM rentals r
	      WHERE r.device_id = d.id
	        AND r.returned_date IS NULL
	        AND r.start_date < $4
	        AND r.end_date > $5)
	ORDER BY d.id
	FOR UPDATE OF d`

const insertRentalQuery = `
	INSERT INTO rentals (device_id, customer_id, start_date, end_date, daily_rate_cents, deposit_cents,
	                     total_paid_cents, delivery_method, shipping_address, created_on)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`

const insertAccessoryQuery = `
	INSERT INTO rental_accessories (rental_id, accessory_id, quantity) VALUES ($1, $2, $3)`

func (r *allocationRepository) AllocateCart(ctx context.Context, req *domain.BookingRequest, snapshots map[int32]*domain.DeviceType, now time.Time) ([]domain.Rental, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	today := dayOf(now)
	var created []domain.Rental

	for _, line := range req.Lines {
		dt, ok := snapshots[line.DeviceTypeID]
		if !ok {
			return nil, domain.ErrNotFound
		}

		candidates, err := selectCandidates(ctx, tx, &line, dt.HasSubscription, today)
		if err != nil {
			return nil, mapTxError(err)
		}
		if int32(len(candidates)) < line.Quantity {
			// Rollback via defer: no rental from any line survives.
			return nil, &domain.InsufficientInventoryError{
				DeviceTypeID: line.DeviceTypeID,
				Requested:    line.Quantity,
				Available:    int32(len(candidates)),
			}
		}

		days := rentalDays(line.StartDate, line.EndDate)
		total := dt.DailyRateCents*days + dt.DepositCents

		for _, deviceID := range candidates[:line.Quantity] {
			rt := domain.Rental{
				DeviceID:        deviceID,
				CustomerID:      req.CustomerID,
				StartDate:       line.StartDate,
				EndDate:         line.EndDate,
				DailyRateCents:  dt.DailyRateCents,
				DepositCents:    dt.DepositCents,
				TotalPaidCents:  total,
				DeliveryMethod:  req.DeliveryMethod,
				ShippingAddress: req.ShippingAddress,
			}
			err := tx.QueryRowContext(ctx, insertRentalQuery,
				rt.DeviceID, rt.CustomerID, rt.StartDate, rt.EndDate, rt.DailyRateCents, rt.DepositCents,
				rt.TotalPaidCents, rt.DeliveryMethod, nullString(rt.ShippingAddress), now).Scan(&rt.ID)
			if err != nil {
				return nil, mapTxError(err)
			}
			for _, acc := range line.Accessories {
				if _, err := tx.ExecContext(ctx, insertAccessoryQuery, rt.ID, acc.AccessoryID, acc.Quantity); err != nil {
					return nil, mapTxError(err)
				}
				rt.Accessories = append(rt.Accessories, domain.RentalAccessory{
					RentalID:    rt.ID,
					AccessoryID: acc.AccessoryID,
					Quantity:    acc.Quantity,
				})
			}
			created = append(created, rt)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, mapTxError(err)
	}
	return created, nil
}

func selectCandidates(ctx context.Context, tx *sql.Tx, line *domain.BookingLine, subRequired bool, today time.Time) ([]int32, error) {
	rows, err := tx.QueryContext(ctx, selectCandidatesQuery,
		line.DeviceTypeID, subRequired, today, line.EndDate, line.StartDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// mapTxError translates retryable postgres aborts into
// repository.ErrSerialization so the caller can re-run the allocation.
func mapTxError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return repository.ErrSerialization
		}
	}
	return err
}

func rentalDays(start, end time.Time) int32 {
	days := int32(dayOf(end).Sub(dayOf(start)) / (24 * time.Hour))
	if days < 1 {
		days = 1
	}
	return days
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/ezyy-cloud/rentals-sub000/internal/domain"
	"github.com/ezyy-cloud/rentals-sub000/internal/repository"
)

type subscriptionPaymentRepository struct {
	db *sql.DB
}

func NewSubscriptionPaymentRepository(db *sql.DB) repository.SubscriptionPaymentRepository {
	return &subscriptionPaymentRepository{db: db}
}

func (r *subscriptionPaymentRepository) Create(ctx context.Context, p *domain.SubscriptionPayment) error {
	query := `INSERT INTO subscription_payments (device_id, amount_cents, paid_on, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, p.DeviceID, p.AmountCents, p.PaidOn, time.Now()).Scan(&p.ID)
}

func (r *subscriptionPaymentRepository) ListByDevice(ctx context.Context, deviceID int32) ([]domain.SubscriptionPayment, error) {
	query := `SELECT id, device_id, amount_cents, paid_on, created_on
	          FROM subscription_payments WHERE device_id = $1 ORDER BY paid_on DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, deviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.SubscriptionPayment
	for rows.Next() {
		var p domain.SubscriptionPayment
		var createdOn time.Time
		if err := rows.Scan(&p.ID, &p.DeviceID, &p.AmountCents, &p.PaidOn, &createdOn); err != nil {
			return nil, err
		}
		p.CreatedOn = createdOn.Format("2006-01-02")
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

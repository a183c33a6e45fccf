package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/ezyy-cloud/rentals-sub000/internal/domain"
	"github.com/ezyy-cloud/rentals-sub000/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	query := `INSERT INTO notifications (type, reference_id, message, is_read, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, n.Type, n.ReferenceID, n.Message, n.IsRead, n.CreatedAt).Scan(&n.ID)
}

func (r *notificationRepository) CreateBatch(ctx context.Context, ns []domain.Notification) error {
	for i := range ns {
		if err := r.Create(ctx, &ns[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *notificationRepository) List(ctx context.Context, limit, offset int32) ([]domain.Notification, int32, error) {
	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM notifications`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, type, reference_id, message, is_read, created_at
	          FROM notifications ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	notes, err := scanNotifications(rows)
	return notes, count, err
}

func (r *notificationRepository) ListUnreadSince(ctx context.Context, since time.Time) ([]domain.Notification, error) {
	query := `SELECT id, type, reference_id, message, is_read, created_at
	          FROM notifications WHERE is_read = FALSE AND created_at >= $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNotifications(rows)
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id int32) error {
	result, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
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

func (r *notificationRepository) MarkReadByReference(ctx context.Context, typ domain.NotificationType, referenceID int32) (int64, error) {
	query := `UPDATE notifications SET is_read = TRUE WHERE type = $1 AND reference_id = $2 AND is_read = FALSE`
	result, err := r.db.ExecContext(ctx, query, typ, referenceID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanNotifications(rows *sql.Rows) ([]domain.Notification, error) {
	var notes []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.Type, &n.ReferenceID, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

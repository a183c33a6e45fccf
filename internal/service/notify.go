package service

import (
	"context"
	"time"

	"github.com/ezyy-cloud/rentals-sub000/internal/clock"
	"github.com/ezyy-cloud/rentals-sub000/internal/domain"
	"github.com/ezyy-cloud/rentals-sub000/internal/repository"
)

// insertDeduped inserts the candidate notifications that do not already have
// an unread sibling with the same (type, reference) created today. Best-effort
// dedup: a condition that stays true produces at most one new row per calendar
// day, never zero rows on the first day.
func insertDeduped(ctx context.Context, repo repository.NotificationRepository, now time.Time, candidates []domain.Notification) (int, error) {
	existing, err := repo.ListUnreadSince(ctx, clock.Day(now))
	if err != nil {
		return 0, err
	}
	seen := make(map[domain.NotificationKey]bool, len(existing))
	for i := range existing {
		seen[existing[i].Key()] = true
	}

	var fresh []domain.Notification
	for _, c := range candidates {
		if seen[c.Key()] {
			continue
		}
		seen[c.Key()] = true
		fresh = append(fresh, c)
	}
	if len(fresh) == 0 {
		return 0, nil
	}
	if err := repo.CreateBatch(ctx, fresh); err != nil {
		return 0, err
	}
	return len(fresh), nil
}

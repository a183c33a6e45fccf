package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ezyy-cloud/rentals-sub000/internal/clock"
	"github.com/ezyy-cloud/rentals-sub000/internal/domain"
	"github.com/ezyy-cloud/rentals-sub000/internal/logger"
	"github.com/ezyy-cloud/rentals-sub000/internal/repository"
)

// Reminder lead times, in calendar days before the due date.
const (
	subscriptionDueLeadDays = 7
	returnDueLeadDays       = 7
	returnFinalLeadDays     = 1
)

type reminderService struct {
	deviceRepo   repository.DeviceRepository
	rentalRepo   repository.RentalRepository
	customerRepo repository.CustomerRepository
	noteRepo     repository.NotificationRepository
	emailSvc     EmailSender
	clk          clock.Clock
}

func NewReminderService(
	deviceRepo repository.DeviceRepository,
	rentalRepo repository.RentalRepository,
	customerRepo repository.CustomerRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailSender,
	clk clock.Clock,
) ReminderService {
	return &reminderService{
		deviceRepo:   deviceRepo,
		rentalRepo:   rentalRepo,
		customerRepo: customerRepo,
		noteRepo:     noteRepo,
		emailSvc:     emailSvc,
		clk:          clk,
	}
}

// RunSweep evaluates every reminder rule once, at calendar-day granularity
// against the sweep instant, then inserts the candidates that survive
// same-day dedup. Emails are fired as candidates are evaluated; a failed or
// skipped email never blocks the sweep.
func (s *reminderService) RunSweep(ctx context.Context) (*SweepResult, error) {
	now := s.clk.Now()

	adminEmails, err := s.customerRepo.AdminEmails(ctx)
	if err != nil {
		logger.Error("failed to load admin contacts, admin emails skipped", "error", err)
		adminEmails = nil
	}

	var candidates []domain.Notification

	subs, err := s.subscriptionCandidates(ctx, now, adminEmails)
	if err != nil {
		return nil, err
	}
	candidates = append(candidates, subs...)

	dues, err := s.returnCandidates(ctx, now, adminEmails)
	if err != nil {
		return nil, err
	}
	candidates = append(candidates, dues...)

	pendings, err := s.pendingShipmentCandidates(ctx, now)
	if err != nil {
		return nil, err
	}
	candidates = append(candidates, pendings...)

	inserted, err := insertDeduped(ctx, s.noteRepo, now, candidates)
	if err != nil {
		return nil, fmt.Errorf("inserting notifications: %w", err)
	}
	return &SweepResult{Evaluated: len(candidates), Inserted: inserted}, nil
}

// subscriptionCandidates flags units whose subscription renews in exactly
// seven days.
func (s *reminderService) subscriptionCandidates(ctx context.Context, now time.Time, adminEmails []string) ([]domain.Notification, error) {
	devices, err := s.deviceRepo.ListWithTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}

	var candidates []domain.Notification
	for i := range devices {
		d := &devices[i]
		if d.DeviceType == nil || !d.DeviceType.HasSubscription || d.SubscriptionDate == nil {
			continue
		}
		if clock.DaysUntil(now, *d.SubscriptionDate) != subscriptionDueLeadDays {
			continue
		}
		candidates = append(candidates, domain.Notification{
			Type:        domain.NotificationSubscriptionDue,
			ReferenceID: d.ID,
			Message: fmt.Sprintf("Subscription for %s (unit #%d) renews on %s",
				d.DeviceType.Name, d.ID, d.SubscriptionDate.Format("2006-01-02")),
			CreatedAt: now,
		})
		for _, admin := range adminEmails {
			err := s.emailSvc.SendSubscriptionDueReminder(ctx, admin, d.DeviceType.Name,
				*d.SubscriptionDate, d.DeviceType.SubscriptionFeeCents)
			logger.EmailResult("subscription_due", err, "device_id", d.ID)
		}
	}
	return candidates, nil
}

// returnCandidates covers the due-in-7-days, due-tomorrow and overdue rules.
// The 1-day case is email-only: no notification row.
func (s *reminderService) returnCandidates(ctx context.Context, now time.Time, adminEmails []string) ([]domain.Notification, error) {
	rentals, err := s.rentalRepo.ListUnreturned(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing unreturned rentals: %w", err)
	}

	var candidates []domain.Notification
	for i := range rentals {
		rt := &rentals[i]
		daysLeft := clock.DaysUntil(now, rt.EndDate)

		switch {
		case rt.Overdue(now):
			candidates = append(candidates, domain.Notification{
				Type:        domain.NotificationRentalOverdue,
				ReferenceID: rt.ID,
				Message: fmt.Sprintf("Rental #%d was due back on %s and is overdue",
					rt.ID, rt.EndDate.Format("2006-01-02")),
				CreatedAt: now,
			})
			full := s.loadForEmail(ctx, rt.ID)
			if full != nil && full.Customer != nil {
				err := s.emailSvc.SendOverdueNotice(ctx, full.Customer.Email, full)
				logger.EmailResult("rental_overdue", err, "rental_id", rt.ID)
				for _, admin := range adminEmails {
					err := s.emailSvc.SendOverdueNotice(ctx, admin, full)
					logger.EmailResult("rental_overdue_admin", err, "rental_id", rt.ID)
				}
			}

		case daysLeft == returnDueLeadDays:
			candidates = append(candidates, domain.Notification{
				Type:        domain.NotificationRentalDue,
				ReferenceID: rt.ID,
				Message: fmt.Sprintf("Rental #%d is due back on %s",
					rt.ID, rt.EndDate.Format("2006-01-02")),
				CreatedAt: now,
			})
			s.sendDueReminder(ctx, rt.ID, returnDueLeadDays)

		case daysLeft == returnFinalLeadDays:
			s.sendDueReminder(ctx, rt.ID, returnFinalLeadDays)
		}
	}
	return candidates, nil
}

func (s *reminderService) pendingShipmentCandidates(ctx context.Context, now time.Time) ([]domain.Notification, error) {
	rentals, err := s.rentalRepo.ListPendingShipments(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pending shipments: %w", err)
	}

	var candidates []domain.Notification
	for _, rt := range rentals {
		candidates = append(candidates, domain.Notification{
			Type:        domain.NotificationRentalPendingShipment,
			ReferenceID: rt.ID,
			Message:     fmt.Sprintf("Rental #%d awaits shipment", rt.ID),
			CreatedAt:   now,
		})
	}
	return candidates, nil
}

func (s *reminderService) sendDueReminder(ctx context.Context, rentalID int32, daysLeft int) {
	full := s.loadForEmail(ctx, rentalID)
	if full == nil || full.Customer == nil {
		return
	}
	err := s.emailSvc.SendReturnDueReminder(ctx, full, daysLeft)
	logger.EmailResult("rental_due", err, "rental_id", rentalID, "days_left", daysLeft)
}

func (s *reminderService) loadForEmail(ctx context.Context, rentalID int32) *domain.Rental {
	full, err := s.rentalRepo.GetWithRelations(ctx, rentalID)
	if err != nil {
		logger.Error("failed to load rental for reminder email", "rental_id", rentalID, "error", err)
		return nil
	}
	return full
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/ezyy-cloud/rentals-sub000/internal/domain"
)

type sendgridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailSender {
	return &sendgridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendgridEmailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendgridEmailService) SendBookingConfirmation(ctx context.Context, rental *domain.Rental) error {
	if rental.Customer == nil {
		return fmt.Errorf("rental %d has no customer loaded", rental.ID)
	}
	deviceName := fmt.Sprintf("unit #%d", rental.DeviceID)
	if rental.Device != nil && rental.Device.DeviceType != nil {
		deviceName = rental.Device.DeviceType.Name
	}

	subject := fmt.Sprintf("Booking confirmed: %s", deviceName)
	body := fmt.Sprintf(`Dear %s,

Your rental of %s is confirmed from %s to %s.

Total paid: $%.2f (including a $%.2f deposit).
Delivery: %s.`,
		rental.Customer.Name, deviceName,
		rental.StartDate.Format("2006-01-02"), rental.EndDate.Format("2006-01-02"),
		float64(rental.TotalPaidCents)/100, float64(rental.DepositCents)/100,
		rental.DeliveryMethod)
	if rental.DeliveryMethod == domain.DeliveryMethodShipping {
		body += fmt.Sprintf("\nShipping to: %s", rental.ShippingAddress)
	}
	body += "\n\nThank you for renting with us."

	return s.send(rental.Customer.Email, rental.Customer.Name, subject, body)
}

func (s *sendgridEmailService) SendSubscriptionDueReminder(ctx context.Context, adminEmail, deviceName string, dueDate time.Time, feeCents int32) error {
	subject := fmt.Sprintf("Subscription renewal due: %s", deviceName)
	body := fmt.Sprintf(`The subscription for %s renews on %s.

Monthly cost: $%.2f.

Renew it before the date to keep the unit rentable.`,
		deviceName, dueDate.Format("2006-01-02"), float64(feeCents)/100)
	return s.send(adminEmail, "Admin", subject, body)
}

func (s *sendgridEmailService) SendReturnDueReminder(ctx context.Context, rental *domain.Rental, daysLeft int) error {
	if rental.Customer == nil {
		return fmt.Errorf("rental %d has no customer loaded", rental.ID)
	}
	deviceName := fmt.Sprintf("unit #%d", rental.DeviceID)
	if rental.Device != nil && rental.Device.DeviceType != nil {
		deviceName = rental.Device.DeviceType.Name
	}

	when := fmt.Sprintf("in %d days", daysLeft)
	if daysLeft == 1 {
		when = "tomorrow"
	}
	subject := fmt.Sprintf("Reminder: %s is due back %s", deviceName, when)
	body := fmt.Sprintf(`Dear %s,

This is a reminder that your rental of %s (rental #%d) is due back on %s.

Please arrange the return in time to avoid overdue charges.`,
		rental.Customer.Name, deviceName, rental.ID, rental.EndDate.Format("2006-01-02"))
	return s.send(rental.Customer.Email, rental.Customer.Name, subject, body)
}

func (s *sendgridEmailService) SendOverdueNotice(ctx context.Context, recipientEmail string, rental *domain.Rental) error {
	deviceName := fmt.Sprintf("unit #%d", rental.DeviceID)
	if rental.Device != nil && rental.Device.DeviceType != nil {
		deviceName = rental.Device.DeviceType.Name
	}
	customerName := ""
	if rental.Customer != nil {
		customerName = rental.Customer.Name
	}

	subject := fmt.Sprintf("Overdue rental: %s", deviceName)
	body := fmt.Sprintf(`Rental #%d of %s (customer: %s) was due back on %s and has not been returned.

Please return the equipment as soon as possible to avoid additional charges.`,
		rental.ID, deviceName, customerName, rental.EndDate.Format("2006-01-02"))
	return s.send(recipientEmail, customerName, subject, body)
}

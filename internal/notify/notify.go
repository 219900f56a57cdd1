// Package notify delivers booking confirmations over email and SMS,
// honoring the customer's channel preferences.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/maison-lumiere/storefront/internal/booking"
	"github.com/maison-lumiere/storefront/internal/catalog"
	"github.com/maison-lumiere/storefront/internal/showroom"
)

type EmailSender interface {
	Send(to string, subject string, body string) error
}

type SMSSender interface {
	Send(ctx context.Context, to string, body string) error
}

// Notifier fans a confirmed booking out to the opted-in channels. Delivery is
// best-effort: failures are logged, never surfaced to the customer.
type Notifier struct {
	email  EmailSender
	sms    SMSSender
	logger *slog.Logger
}

func New(email EmailSender, sms SMSSender, logger *slog.Logger) *Notifier {
	return &Notifier{email: email, sms: sms, logger: logger}
}

func (n *Notifier) BookingConfirmed(ctx context.Context, b booking.Booking, loc showroom.Location, ct catalog.ConsultationType) {
	if b.Form.Notifications.Email && n.email != nil {
		subject := fmt.Sprintf("Your appointment at %s is confirmed", loc.Name)
		body := fmt.Sprintf(
			"Dear %s %s,\n\nYour %s appointment is confirmed.\n\nShowroom: %s, %s\nDate: %s\nTime: %s\nTotal: %.2f\nConfirmation number: %s\n\nWe look forward to welcoming you.\nMaison Lumière",
			b.Form.FirstName, b.Form.LastName, ct.Name,
			loc.Name, loc.Address,
			b.Form.Date, b.Form.TimeSlot,
			b.TotalPrice, b.ConfirmationNumber,
		)
		if err := n.email.Send(b.Form.Email, subject, body); err != nil {
			n.logger.Error("confirmation email failed", "err", err, "confirmation", b.ConfirmationNumber)
		}
	}

	if b.Form.Notifications.SMS && n.sms != nil {
		msg := fmt.Sprintf("Maison Lumière: %s confirmed for %s at %s. Ref %s.",
			ct.Name, b.Form.Date, loc.Name, b.ConfirmationNumber)
		if err := n.sms.Send(ctx, b.Form.Phone, msg); err != nil {
			n.logger.Error("confirmation sms failed", "err", err, "confirmation", b.ConfirmationNumber)
		}
	}
}

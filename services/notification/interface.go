package notification

import (
	"context"

	"amberhall/models"
)

// Mailer sends transactional email. Every send is best-effort: callers log
// failures and never fail the triggering operation on a mail error.
type Mailer interface {
	SendBookingReceived(ctx context.Context, booking *models.Booking) error
	SendPaymentLink(ctx context.Context, booking *models.Booking, link string) error
	SendRejection(ctx context.Context, to, name, date string) error
	SendAdminDigest(ctx context.Context, bookings []models.Booking) error
}

// Broadcaster pushes live-update events to listeners. Delivery is
// fire-and-forget; implementations swallow and log their own failures.
type Broadcaster interface {
	Publish(ctx context.Context, event models.BroadcastEvent)
}

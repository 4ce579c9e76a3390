package payment

import (
	"context"

	"amberhall/models"
)

// PaymentGateway mints payable links for approved bookings. The booking id is
// embedded in the link's notes and echoed back by the provider's webhook,
// which is how asynchronous confirmations are correlated.
type PaymentGateway interface {
	CreateLink(ctx context.Context, booking *models.Booking, amount int64) (url string, linkID string, err error)
}

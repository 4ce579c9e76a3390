package booking

import (
	bookingRepo "amberhall/database/repository/booking"
	"amberhall/services/notification"
	"amberhall/services/payment"

	"go.uber.org/zap"
)

// DefaultBookingService is the production BookingService. All booking
// mutation in the system flows through this service; nothing else writes to
// the booking store.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Gateway   payment.PaymentGateway
	Mailer    notification.Mailer
	Broadcast notification.Broadcaster
	Logger    *zap.Logger
}

// NewDefaultBookingService wires the booking engine.
func NewDefaultBookingService(
	repo bookingRepo.BookingRepository,
	gateway payment.PaymentGateway,
	mailer notification.Mailer,
	broadcast notification.Broadcaster,
	logger *zap.Logger,
) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:      repo,
		Gateway:   gateway,
		Mailer:    mailer,
		Broadcast: broadcast,
		Logger:    logger,
	}
}

package booking

import (
	"context"

	"amberhall/models"
)

// BookingService owns the booking admission and lifecycle engine.
type BookingService interface {
	// SubmitBooking admits a public booking request. On success it returns the
	// created booking plus the refreshed sorted list of booked canonical days.
	SubmitBooking(ctx context.Context, input models.BookingInput) (*models.Booking, []string, error)

	// BookedDates returns every booked canonical day, sorted ascending.
	BookedDates(ctx context.Context) ([]string, error)

	// ListBookings sweeps expired bookings, then returns the current list.
	ListBookings(ctx context.Context) ([]models.Booking, error)

	// Approve transitions a pending booking to approved with the quoted amount
	// and returns the updated booking plus the minted payment link.
	Approve(ctx context.Context, id string, amount int64) (*models.Booking, string, error)

	// Reject deletes the booking outright after capturing fields for the
	// rejection email.
	Reject(ctx context.Context, id string) error

	// Delete removes a booking without the rejection side effects.
	Delete(ctx context.Context, id string) error

	// ConfirmPayment applies a verified payment-captured webhook event. An
	// absent or unknown booking id is acknowledged without any state change.
	ConfirmPayment(ctx context.Context, bookingID, paymentID string) error

	// MarkPaymentFailed records a verified payment-failed webhook event. The
	// booking stays payable; a failure arriving after capture is ignored.
	MarkPaymentFailed(ctx context.Context, bookingID, paymentID string) error

	// SweepExpired deletes bookings whose event date has passed and returns
	// how many were removed.
	SweepExpired(ctx context.Context) (int64, error)

	// ListBetween returns bookings whose event date falls inside the inclusive
	// day range.
	ListBetween(ctx context.Context, fromDay, toDay string) ([]models.Booking, error)
}

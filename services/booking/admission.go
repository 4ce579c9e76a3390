package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "amberhall/database/repository/booking"
	"amberhall/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmitBooking admits a public booking request. The per-day exclusivity rule
// is enforced twice: a friendly pre-check against the store, and the unique
// date index as the final arbiter when two submissions race past the
// pre-check. Both paths surface the same ErrDateBooked.
func (s *DefaultBookingService) SubmitBooking(ctx context.Context, input models.BookingInput) (*models.Booking, []string, error) {
	day, err := NormalizeDay(input.Date)
	if err != nil {
		return nil, nil, err
	}

	if err := validateInput(&input); err != nil {
		return nil, nil, err
	}

	existing, err := s.Repo.GetByDate(day)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check date availability: %w", err)
	}
	if existing != nil {
		return nil, nil, ErrDateBooked
	}

	b := &models.Booking{
		ID:              uuid.New().String(),
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Package:         input.Package,
		Guests:          input.Guests,
		Date:            day,
		EventTime:       input.Time,
		SpecialRequests: strings.TrimSpace(input.SpecialRequests),
		Status:          models.BookingStatusPending,
		PaymentStatus:   models.PaymentStatusUnpaid,
	}

	if err := s.Repo.Create(b); err != nil {
		if bookingRepo.IsDuplicateKey(err) {
			// A concurrent submission won the date; report the same conflict
			// the pre-check would have produced.
			return nil, nil, ErrDateBooked
		}
		return nil, nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.notifyAsync(func(ctx context.Context) error {
		return s.Mailer.SendBookingReceived(ctx, b)
	}, "booking received email")

	s.Broadcast.Publish(ctx, models.BroadcastEvent{
		Type:      models.EventBookingCreated,
		BookingID: b.ID,
		Date:      b.Date,
	})

	dates, err := s.Repo.ListDates()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to refresh booked dates: %w", err)
	}
	return b, dates, nil
}

// BookedDates returns every booked canonical day, sorted ascending.
func (s *DefaultBookingService) BookedDates(ctx context.Context) ([]string, error) {
	return s.Repo.ListDates()
}

// validateInput checks the required fields per the booking contract. Contact
// fields are trimmed and required; format is not validated beyond presence.
func validateInput(input *models.BookingInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Package = strings.TrimSpace(input.Package)
	input.Time = strings.TrimSpace(input.Time)

	switch {
	case input.Name == "":
		return &ValidationError{Field: "name"}
	case input.Email == "":
		return &ValidationError{Field: "email"}
	case input.Phone == "":
		return &ValidationError{Field: "phone"}
	case input.Package == "":
		return &ValidationError{Field: "package"}
	case input.Guests < 1:
		return &ValidationError{Field: "guests"}
	case input.Time == "":
		return &ValidationError{Field: "time"}
	}
	return nil
}

// notifyAsync runs a notification send in the background with its own bounded
// context. Failures are logged and never surfaced to the caller.
func (s *DefaultBookingService) notifyAsync(send func(context.Context) error, what string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := send(ctx); err != nil {
			s.Logger.Warn("notification failed", zap.String("kind", what), zap.Error(err))
		}
	}()
}

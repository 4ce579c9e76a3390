package booking

import (
	"context"
	"fmt"
	"time"

	"amberhall/models"

	"go.uber.org/zap"
)

// Approve transitions a pending booking to approved, stamps approved-at, and
// requests a payment link keyed by the booking id. The status change is
// persisted before the gateway call: a gateway failure leaves the booking
// approved without a sent link, and the admin retries by approving again.
func (s *DefaultBookingService) Approve(ctx context.Context, id string, amount int64) (*models.Booking, string, error) {
	if amount <= 0 {
		return nil, "", ErrInvalidAmount
	}

	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, "", ErrNotFound
	}

	b, err = s.Repo.SetApproved(id, amount, time.Now())
	if err != nil {
		return nil, "", fmt.Errorf("failed to persist approval: %w", err)
	}
	if b == nil {
		return nil, "", ErrNotFound
	}

	link, linkID, err := s.Gateway.CreateLink(ctx, b, amount)
	if err != nil {
		return nil, "", &GatewayError{Err: err}
	}
	if err := s.Repo.SetPaymentLink(id, linkID); err != nil {
		s.Logger.Warn("failed to store payment link id", zap.String("bookingId", id), zap.Error(err))
	}
	b.RazorpayOrderID = linkID

	s.notifyAsync(func(ctx context.Context) error {
		return s.Mailer.SendPaymentLink(ctx, b, link)
	}, "payment link email")

	s.Broadcast.Publish(ctx, models.BroadcastEvent{
		Type:      models.EventBookingApproved,
		BookingID: b.ID,
		Date:      b.Date,
		Data:      map[string]any{"amount": amount},
	})

	return b, link, nil
}

// Reject deletes the booking outright. Rejection is destructive, not a status
// flag: the record is removed and the date becomes bookable again. The fields
// needed for the rejection email are captured before the delete.
func (s *DefaultBookingService) Reject(ctx context.Context, id string) error {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return ErrNotFound
	}

	deleted, err := s.Repo.DeleteByID(id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	to, name, date := b.Email, b.Name, b.Date
	s.notifyAsync(func(ctx context.Context) error {
		return s.Mailer.SendRejection(ctx, to, name, date)
	}, "rejection email")

	s.Broadcast.Publish(ctx, models.BroadcastEvent{
		Type:      models.EventBookingRejected,
		BookingID: id,
		Date:      date,
	})
	return nil
}

// Delete removes a booking without the rejection side effects.
func (s *DefaultBookingService) Delete(ctx context.Context, id string) error {
	deleted, err := s.Repo.DeleteByID(id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// ConfirmPayment applies a verified payment-captured event. Unknown or absent
// booking ids are acknowledged without error so the provider's retry logic is
// never tripped by confirmations for rejected or swept bookings. The paid
// stamp is idempotent: redelivered events change nothing.
func (s *DefaultBookingService) ConfirmPayment(ctx context.Context, bookingID, paymentID string) error {
	if bookingID == "" {
		s.Logger.Warn("payment confirmation without booking correlation", zap.String("paymentId", paymentID))
		return nil
	}

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		s.Logger.Info("payment confirmation for unknown booking",
			zap.String("bookingId", bookingID), zap.String("paymentId", paymentID))
		return nil
	}

	stamped, err := s.Repo.SetPaid(bookingID, paymentID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark booking paid: %w", err)
	}
	if !stamped {
		// Already paid; redelivery is a no-op.
		return nil
	}

	s.Broadcast.Publish(ctx, models.BroadcastEvent{
		Type:      models.EventBookingPaid,
		BookingID: bookingID,
		Date:      b.Date,
		Data:      map[string]any{"paymentId": paymentID},
	})
	return nil
}

// MarkPaymentFailed records a failed capture attempt reported by the gateway.
// The booking stays approved and payable with the original link; an already
// paid booking, or an unknown id, is acknowledged without any change.
func (s *DefaultBookingService) MarkPaymentFailed(ctx context.Context, bookingID, paymentID string) error {
	if bookingID == "" {
		s.Logger.Warn("payment failure without booking correlation", zap.String("paymentId", paymentID))
		return nil
	}

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		s.Logger.Info("payment failure for unknown booking",
			zap.String("bookingId", bookingID), zap.String("paymentId", paymentID))
		return nil
	}

	stamped, err := s.Repo.SetPaymentFailed(bookingID, paymentID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to record payment failure: %w", err)
	}
	if !stamped {
		return nil
	}

	s.Logger.Warn("payment attempt failed",
		zap.String("bookingId", bookingID), zap.String("paymentId", paymentID))
	s.Broadcast.Publish(ctx, models.BroadcastEvent{
		Type:      models.EventPaymentFailed,
		BookingID: bookingID,
		Date:      b.Date,
		Data:      map[string]any{"paymentId": paymentID},
	})
	return nil
}

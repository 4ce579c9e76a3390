package booking

import (
	"context"
	"fmt"

	"amberhall/models"

	"go.uber.org/zap"
)

// SweepExpired deletes every booking whose canonical date is strictly before
// today and, when anything was removed, emits a single broadcast. The sweep
// is best-effort cleanup: expired bookings are inert, so a deferred sweep
// costs nothing but storage.
func (s *DefaultBookingService) SweepExpired(ctx context.Context) (int64, error) {
	today := Today()
	n, err := s.Repo.DeleteBefore(today)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired bookings: %w", err)
	}
	if n > 0 {
		s.Logger.Info("swept expired bookings", zap.Int64("count", n))
		s.Broadcast.Publish(ctx, models.BroadcastEvent{
			Type: models.EventBookingsSwept,
			Data: map[string]any{"count": n},
		})
	}
	return n, nil
}

// ListBookings sweeps expired bookings, then returns the current list sorted
// by event date.
func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	if _, err := s.SweepExpired(ctx); err != nil {
		// A failed sweep should not block the admin from seeing bookings.
		s.Logger.Warn("retention sweep failed", zap.Error(err))
	}
	return s.Repo.ListAll()
}

// ListBetween returns bookings whose event date falls inside the inclusive
// day range. Used by the admin digest.
func (s *DefaultBookingService) ListBetween(ctx context.Context, fromDay, toDay string) ([]models.Booking, error) {
	return s.Repo.ListBetween(fromDay, toDay)
}

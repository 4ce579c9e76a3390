package models

import "time"

// Broadcast event types emitted on the live-update channel.
const (
	EventBookingCreated  = "booking.created"
	EventBookingApproved = "booking.approved"
	EventBookingRejected = "booking.rejected"
	EventBookingPaid     = "booking.paid"
	EventPaymentFailed   = "booking.payment_failed"
	EventBookingsSwept   = "bookings.swept"
)

// BroadcastEvent describes a state change pushed to live listeners.
type BroadcastEvent struct {
	Type      string         `json:"type"`
	BookingID string         `json:"bookingId,omitempty"`
	Date      string         `json:"date,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	At        time.Time      `json:"at"`
}

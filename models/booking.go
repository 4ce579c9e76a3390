package models

import "time"

// Booking status values. A rejected booking is deleted outright rather than
// flagged, so no "rejected" status exists.
const (
	BookingStatusPending  = "pending"
	BookingStatusApproved = "approved"
)

// Payment sub-status values. "failed" records an unsuccessful capture attempt
// reported by the gateway; the booking stays payable.
const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
	PaymentStatusFailed = "failed"
)

// Booking represents a venue booking record.
type Booking struct {
	ID              string `bson:"id" json:"id"`
	Name            string `bson:"name" json:"name"`
	Email           string `bson:"email" json:"email"`
	Phone           string `bson:"phone" json:"phone"`
	Package         string `bson:"package" json:"package"`
	Guests          int    `bson:"guests" json:"guests"`
	Date            string `bson:"date" json:"date"` // Canonical "YYYY-MM-DD" calendar day
	EventTime       string `bson:"event_time" json:"eventTime"`
	SpecialRequests string `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`

	Status string `bson:"status" json:"status"`

	// Payment fields. Amount is in the smallest currency unit (paise).
	IsPaid            bool   `bson:"is_paid" json:"isPaid"`
	PaymentStatus     string `bson:"payment_status" json:"paymentStatus"`
	RazorpayPaymentID string `bson:"razorpay_payment_id,omitempty" json:"razorpayPaymentId,omitempty"`
	RazorpayOrderID   string `bson:"razorpay_order_id,omitempty" json:"razorpayOrderId,omitempty"`
	Amount            int64  `bson:"amount,omitempty" json:"amount,omitempty"`

	CreatedAt  time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time  `bson:"updated_at" json:"updatedAt"`
	ApprovedAt *time.Time `bson:"approved_at,omitempty" json:"approvedAt,omitempty"`
	PaidAt     *time.Time `bson:"paid_at,omitempty" json:"paidAt,omitempty"`
}

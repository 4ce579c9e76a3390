package bookingRepo

import (
	"time"

	"amberhall/models"
)

// BookingRepository defines data access for venue bookings. All mutation of
// booking records in the system goes through this interface.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByDate(day string) (*models.Booking, error)
	ListAll() ([]models.Booking, error)
	ListDates() ([]string, error)
	ListBetween(fromDay, toDay string) ([]models.Booking, error)
	SetApproved(id string, amount int64, at time.Time) (*models.Booking, error)
	SetPaymentLink(id, linkID string) error
	SetPaid(id, paymentID string, at time.Time) (bool, error)
	SetPaymentFailed(id, paymentID string, at time.Time) (bool, error)
	DeleteByID(id string) (bool, error)
	DeleteBefore(day string) (int64, error)
}

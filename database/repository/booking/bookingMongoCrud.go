package bookingRepo

import (
	"errors"
	"fmt"
	"time"

	"amberhall/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new booking document. A uniqueness violation from either
// booking index is returned raw so callers can detect it via IsDuplicateKey.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		if IsDuplicateKey(err) {
			return err
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID. Returns (nil, nil) when no
// booking exists with that ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// SetApproved transitions a booking to approved, recording the quoted amount
// and the approval timestamp, and returns the updated document.
func (r *MongoBookingRepo) SetApproved(id string, amount int64, at time.Time) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"status":      models.BookingStatusApproved,
		"amount":      amount,
		"approved_at": at,
		"updated_at":  at,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to approve booking %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return r.GetByID(id)
}

// SetPaymentLink records the provider's payment-link identifier on a booking.
func (r *MongoBookingRepo) SetPaymentLink(id, linkID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"razorpay_order_id": linkID,
		"updated_at":        time.Now(),
	}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to store payment link for booking %s: %w", id, err)
	}
	return nil
}

// SetPaid marks a booking paid exactly once. The filter on is_paid makes the
// operation idempotent under webhook redelivery: the first confirmation stamps
// paid_at, repeats match nothing and report false.
func (r *MongoBookingRepo) SetPaid(id, paymentID string, at time.Time) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "is_paid": false}
	update := bson.M{"$set": bson.M{
		"is_paid":             true,
		"payment_status":      models.PaymentStatusPaid,
		"razorpay_payment_id": paymentID,
		"paid_at":             at,
		"updated_at":          at,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to mark booking %s paid: %w", id, err)
	}
	return res.ModifiedCount > 0, nil
}

// SetPaymentFailed records an unsuccessful capture attempt. A booking that is
// already paid is left untouched; a late failure event for it matches nothing.
func (r *MongoBookingRepo) SetPaymentFailed(id, paymentID string, at time.Time) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "is_paid": false}
	update := bson.M{"$set": bson.M{
		"payment_status":      models.PaymentStatusFailed,
		"razorpay_payment_id": paymentID,
		"updated_at":          at,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to record failed payment for booking %s: %w", id, err)
	}
	return res.ModifiedCount > 0, nil
}

// DeleteByID removes a booking document. Returns false when nothing matched.
func (r *MongoBookingRepo) DeleteByID(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete booking with id %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

// DeleteBefore removes every booking whose canonical date sorts strictly
// before the given day. Canonical "YYYY-MM-DD" strings order lexically, so a
// plain string comparison is the date comparison.
func (r *MongoBookingRepo) DeleteBefore(day string) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"date": bson.M{"$lt": day}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete bookings before %s: %w", day, err)
	}
	return res.DeletedCount, nil
}

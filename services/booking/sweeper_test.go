package booking

import (
	"context"
	"testing"
	"time"

	"amberhall/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayOffset(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestSweepExpired(t *testing.T) {
	repo := newFakeBookingRepo()
	bc := &fakeBroadcaster{}
	svc := newTestService(repo, &fakeGateway{}, &fakeMailer{}, bc)

	past := submitTestBooking(t, svc, dayOffset(-3))
	today := submitTestBooking(t, svc, dayOffset(0))
	future := submitTestBooking(t, svc, dayOffset(5))

	removed, err := svc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	gone, err := repo.GetByID(past.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// Today's booking survives the sweep; only strictly past days age out.
	for _, id := range []string{today.ID, future.ID} {
		stored, err := repo.GetByID(id)
		require.NoError(t, err)
		assert.NotNil(t, stored)
	}

	assert.Contains(t, bc.types(), models.EventBookingsSwept)
}

func TestSweepExpiredNothingToRemove(t *testing.T) {
	repo := newFakeBookingRepo()
	bc := &fakeBroadcaster{}
	svc := newTestService(repo, &fakeGateway{}, &fakeMailer{}, bc)

	submitTestBooking(t, svc, dayOffset(2))

	removed, err := svc.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.NotContains(t, bc.types(), models.EventBookingsSwept)
}

func TestListBookingsSweepsFirst(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, &fakeGateway{}, &fakeMailer{}, &fakeBroadcaster{})

	submitTestBooking(t, svc, dayOffset(-1))
	keep := submitTestBooking(t, svc, dayOffset(3))

	bookings, err := svc.ListBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, keep.ID, bookings[0].ID)
}

func TestListBetween(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, &fakeGateway{}, &fakeMailer{}, &fakeBroadcaster{})

	submitTestBooking(t, svc, "2026-10-01")
	inRange := submitTestBooking(t, svc, "2026-10-10")
	submitTestBooking(t, svc, "2026-10-20")

	bookings, err := svc.ListBetween(context.Background(), "2026-10-05", "2026-10-15")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, inRange.ID, bookings[0].ID)
}

package booking

import (
	"context"
	"testing"

	"amberhall/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	bc := &fakeBroadcaster{}
	svc := newTestService(repo, &fakeGateway{}, &fakeMailer{}, bc)

	created, dates, err := svc.SubmitBooking(context.Background(), validInput("2026-10-15T18:30:00"))
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.BookingStatusPending, created.Status)
	assert.Equal(t, models.PaymentStatusUnpaid, created.PaymentStatus)
	assert.False(t, created.IsPaid)
	assert.Equal(t, "2026-10-15", created.Date)
	assert.Equal(t, []string{"2026-10-15"}, dates)

	stored, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "2026-10-15", stored.Date)

	assert.Contains(t, bc.types(), models.EventBookingCreated)
}

func TestSubmitBookingRejectsInvalidDate(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), &fakeGateway{}, &fakeMailer{}, &fakeBroadcaster{})

	_, _, err := svc.SubmitBooking(context.Background(), validInput("not a date"))
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, _, err = svc.SubmitBooking(context.Background(), validInput(""))
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestSubmitBookingValidatesRequiredFields(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), &fakeGateway{}, &fakeMailer{}, &fakeBroadcaster{})

	cases := []struct {
		field  string
		mutate func(*models.BookingInput)
	}{
		{"name", func(in *models.BookingInput) { in.Name = "  " }},
		{"email", func(in *models.BookingInput) { in.Email = "" }},
		{"phone", func(in *models.BookingInput) { in.Phone = "" }},
		{"package", func(in *models.BookingInput) { in.Package = "" }},
		{"guests", func(in *models.BookingInput) { in.Guests = 0 }},
		{"time", func(in *models.BookingInput) { in.Time = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			input := validInput("2026-10-15")
			tc.mutate(&input)

			_, _, err := svc.SubmitBooking(context.Background(), input)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)
		})
	}
}

func TestSubmitBookingConflictOnBookedDate(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, &fakeGateway{}, &fakeMailer{}, &fakeBroadcaster{})

	_, _, err := svc.SubmitBooking(context.Background(), validInput("2026-10-15"))
	require.NoError(t, err)

	// Same calendar day in a different representation must still collide.
	second := validInput("2026-10-15T09:00:00")
	second.Email = "someone.else@example.com"
	_, _, err = svc.SubmitBooking(context.Background(), second)
	assert.ErrorIs(t, err, ErrDateBooked)
}

func TestSubmitBookingConflictOnUniqueIndexRace(t *testing.T) {
	// A concurrent submission can pass the availability pre-check and lose
	// the insert to the unique date index. That storage error must surface
	// as the same conflict the pre-check produces.
	repo := newFakeBookingRepo()
	repo.failWith = duplicateKeyErr()
	svc := newTestService(repo, &fakeGateway{}, &fakeMailer{}, &fakeBroadcaster{})

	_, _, err := svc.SubmitBooking(context.Background(), validInput("2026-10-15"))
	assert.ErrorIs(t, err, ErrDateBooked)
}

func TestBookedDatesSorted(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo, &fakeGateway{}, &fakeMailer{}, &fakeBroadcaster{})

	for _, day := range []string{"2026-12-01", "2026-10-15", "2026-11-20"} {
		_, _, err := svc.SubmitBooking(context.Background(), validInput(day))
		require.NoError(t, err)
	}

	dates, err := svc.BookedDates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-15", "2026-11-20", "2026-12-01"}, dates)
}

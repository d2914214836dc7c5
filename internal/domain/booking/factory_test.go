//go:build unit

package booking_test

import (
	"errors"
	"testing"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/promocode"
	"stayhub/internal/pkg/clock"
	"stayhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking(t *testing.T) {
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	factory := booking.NewFactory(clock.NewMockClock(now))
	guestID := uuid.New()

	service, err := builder.NewServiceBuilder().WithBasePrice(50000).BuildDomain()
	require.NoError(t, err)

	t.Run("prices from the service base price", func(t *testing.T) {
		b, err := factory.CreateBooking(service, guestID, now.AddDate(0, 0, 2), nil, booking.Note{})
		require.NoError(t, err)

		assert.Equal(t, int64(50000), b.SubtotalCents())
		assert.Equal(t, int64(0), b.DiscountCents())
		assert.Equal(t, int64(50000), b.TotalCents())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Nil(t, b.PromoCodeID())
	})

	t.Run("booking for today is allowed", func(t *testing.T) {
		_, err := factory.CreateBooking(service, guestID, now, nil, booking.Note{})
		assert.NoError(t, err)
	})

	t.Run("past date rejected", func(t *testing.T) {
		_, err := factory.CreateBooking(service, guestID, now.AddDate(0, 0, -1), nil, booking.Note{})
		assert.ErrorIs(t, err, booking.ErrPastDate)
	})

	t.Run("valid promo applies its discount", func(t *testing.T) {
		promo, err := builder.NewPromoCodeBuilder().
			WithDateWindow(now.AddDate(0, 0, -7), now.AddDate(0, 0, 7)).
			BuildSnapshot().ToDomain()
		require.NoError(t, err)

		b, err := factory.CreateBooking(service, guestID, now.AddDate(0, 0, 2), promo, booking.Note{})
		require.NoError(t, err)

		assert.Equal(t, int64(5000), b.DiscountCents())
		assert.Equal(t, int64(45000), b.TotalCents())
		require.NotNil(t, b.PromoCodeID())
		assert.Equal(t, promo.ID(), *b.PromoCodeID())
	})

	t.Run("rejected promo surfaces the engine reason", func(t *testing.T) {
		promo, err := builder.NewPromoCodeBuilder().
			WithDateWindow(now.AddDate(0, 0, -7), now.AddDate(0, 0, 7)).
			WithApplicableServices("spa").
			BuildSnapshot().ToDomain()
		require.NoError(t, err)

		_, err = factory.CreateBooking(service, guestID, now.AddDate(0, 0, 2), promo, booking.Note{})

		var rejected *booking.PromoRejectedError
		require.True(t, errors.As(err, &rejected))
		assert.Equal(t, promocode.ReasonWrongService, rejected.Reason)
	})

	t.Run("promo validity is judged at booking time, not stay date", func(t *testing.T) {
		promo, err := builder.NewPromoCodeBuilder().
			WithDateWindow(now.AddDate(0, 0, -1), now.AddDate(0, 0, 1)).
			BuildSnapshot().ToDomain()
		require.NoError(t, err)

		// Stay date is far outside the promo window; the code is valid now,
		// so the discount still applies.
		b, err := factory.CreateBooking(service, guestID, now.AddDate(0, 1, 0), promo, booking.Note{})
		require.NoError(t, err)
		assert.Equal(t, int64(5000), b.DiscountCents())
	})
}

func TestBookingCancel(t *testing.T) {
	snap := builder.NewBookingBuilder().BuildSnapshot()
	b, err := snap.ToDomain()
	require.NoError(t, err)

	require.NoError(t, b.Cancel())
	assert.Equal(t, booking.StatusCanceled, b.Status())
	assert.False(t, b.IsActive())

	assert.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCanceled)
}

func TestNewBooking(t *testing.T) {
	serviceID, guestID := uuid.New(), uuid.New()
	date := time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)

	t.Run("discount above subtotal rejected", func(t *testing.T) {
		_, err := booking.NewBooking("room", serviceID, guestID, date, 1000, 2000, nil, booking.Note{})
		assert.ErrorIs(t, err, booking.ErrNegativePrice)
	})

	t.Run("negative amounts rejected", func(t *testing.T) {
		_, err := booking.NewBooking("room", serviceID, guestID, date, -1, 0, nil, booking.Note{})
		assert.ErrorIs(t, err, booking.ErrNegativePrice)
	})
}

//go:build unit

package booking_test

import (
	"testing"
	"time"

	"mine-dine/internal/domain/booking"
	"mine-dine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	now := time.Now()
	quote := booking.Quote{BasePriceCents: 10000, TotalPriceCents: 10000}

	b := booking.NewBooking(uuid.New(), uuid.New(), 2, quote, nil, nil, nil, now)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, booking.StatusPending, b.Status())
	assert.Nil(t, b.PaymentIntentID())
	assert.Equal(t, now, b.CreatedAt())
	assert.Equal(t, now, b.UpdatedAt())
}

func TestBookingConfirm(t *testing.T) {
	now := time.Now()

	t.Run("pending becomes confirmed", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusPending).BuildDomain()

		changed, err := b.Confirm(now)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("replayed confirmation is a no-op", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()

		changed, err := b.Confirm(now)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("cancelled booking cannot be confirmed", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildDomain()

		changed, err := b.Confirm(now)
		assert.ErrorIs(t, err, booking.ErrAlreadyFinal)
		assert.False(t, changed)
	})

	t.Run("completed booking cannot be confirmed", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCompleted).BuildDomain()

		_, err := b.Confirm(now)
		assert.ErrorIs(t, err, booking.ErrAlreadyFinal)
	})
}

func TestBookingCancel(t *testing.T) {
	now := time.Now()

	t.Run("pending becomes cancelled", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusPending).BuildDomain()

		changed, err := b.Cancel(now)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("replayed cancellation is a no-op", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildDomain()

		changed, err := b.Cancel(now)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("confirmed booking cannot be cancelled by payment failure", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()

		_, err := b.Cancel(now)
		assert.ErrorIs(t, err, booking.ErrAlreadyFinal)
	})
}

func TestBookingComplete(t *testing.T) {
	now := time.Now()

	t.Run("confirmed becomes completed", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildDomain()

		require.NoError(t, b.Complete(now))
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	for _, status := range []booking.Status{
		booking.StatusPending,
		booking.StatusCancelled,
		booking.StatusCompleted,
	} {
		t.Run("cannot complete from "+string(status), func(t *testing.T) {
			b := builder.NewBookingBuilder().WithStatus(status).BuildDomain()

			assert.ErrorIs(t, b.Complete(now), booking.ErrNotConfirmed)
		})
	}
}

func TestAttachPaymentIntent(t *testing.T) {
	b := builder.NewBookingBuilder().BuildDomain()
	now := time.Now().Add(time.Minute)

	b.AttachPaymentIntent("pi_123", now)

	require.NotNil(t, b.PaymentIntentID())
	assert.Equal(t, "pi_123", *b.PaymentIntentID())
	assert.Equal(t, now, b.UpdatedAt())
}

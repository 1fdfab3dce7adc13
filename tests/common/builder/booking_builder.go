//go:build unit || e2e

package builder

import (
	"time"

	"mine-dine/internal/domain/booking"
	"mine-dine/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	id                  uuid.UUID
	userID              uuid.UUID
	dinnerID            uuid.UUID
	hostID              uuid.UUID
	numberOfGuests      int
	quote               booking.Quote
	selections          []booking.AddOnSelection
	referralCode        *string
	referralModeratorID *uuid.UUID
	status              booking.Status
	paymentIntentID     *string
	createdAt           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		id:             uuid.New(),
		userID:         uuid.New(),
		dinnerID:       uuid.New(),
		hostID:         uuid.New(),
		numberOfGuests: 2,
		quote: booking.Quote{
			BasePriceCents:  10000,
			TotalPriceCents: 10000,
		},
		status:    booking.StatusPending,
		createdAt: time.Now(),
	}
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder       { b.id = id; return b }
func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder   { b.userID = id; return b }
func (b *BookingBuilder) WithDinnerID(id uuid.UUID) *BookingBuilder { b.dinnerID = id; return b }
func (b *BookingBuilder) WithHostID(id uuid.UUID) *BookingBuilder   { b.hostID = id; return b }
func (b *BookingBuilder) WithGuests(n int) *BookingBuilder          { b.numberOfGuests = n; return b }

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder { b.status = s; return b }

func (b *BookingBuilder) WithTotal(cents int64) *BookingBuilder {
	b.quote = booking.Quote{BasePriceCents: cents, TotalPriceCents: cents}
	return b
}

func (b *BookingBuilder) WithReferralModerator(id uuid.UUID, code string) *BookingBuilder {
	b.referralModeratorID = &id
	b.referralCode = &code
	return b
}

func (b *BookingBuilder) WithPaymentIntent(intentID string) *BookingBuilder {
	b.paymentIntentID = &intentID
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(
		b.id, b.userID, b.dinnerID,
		b.numberOfGuests,
		b.quote,
		b.selections,
		b.referralCode,
		b.referralModeratorID,
		b.status,
		b.paymentIntentID,
		b.createdAt, b.createdAt,
	)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:                  b.id,
		UserID:              b.userID,
		DinnerID:            b.dinnerID,
		HostID:              b.hostID,
		NumberOfGuests:      b.numberOfGuests,
		TotalPriceCents:     b.quote.TotalPriceCents,
		ReferralModeratorID: b.referralModeratorID,
		Status:              b.status,
		PaymentIntentID:     b.paymentIntentID,
	}
}

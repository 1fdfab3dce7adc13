package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotPending    = errors.New("booking is not pending")
	ErrNotConfirmed  = errors.New("booking is not confirmed")
	ErrAlreadyFinal  = errors.New("booking is already in a final state")
	ErrIntentMissing = errors.New("booking has no payment intent")
)

type Booking struct {
	id                    uuid.UUID
	userID                uuid.UUID
	dinnerID              uuid.UUID
	numberOfGuests        int
	quote                 Quote
	selectedAddOns        []AddOnSelection
	referralCodeUsed      *string
	referralModeratorID   *uuid.UUID
	status                Status
	stripePaymentIntentID *string
	createdAt             time.Time
	updatedAt             time.Time
}

func NewBooking(
	userID, dinnerID uuid.UUID,
	numberOfGuests int,
	quote Quote,
	selections []AddOnSelection,
	referralCode *string,
	referralModeratorID *uuid.UUID,
	now time.Time,
) *Booking {
	return &Booking{
		id:                  uuid.New(),
		userID:              userID,
		dinnerID:            dinnerID,
		numberOfGuests:      numberOfGuests,
		quote:               quote,
		selectedAddOns:      selections,
		referralCodeUsed:    referralCode,
		referralModeratorID: referralModeratorID,
		status:              StatusPending,
		createdAt:           now,
		updatedAt:           now,
	}
}

func ReconstructBooking(
	id, userID, dinnerID uuid.UUID,
	numberOfGuests int,
	quote Quote,
	selections []AddOnSelection,
	referralCode *string,
	referralModeratorID *uuid.UUID,
	status Status,
	stripePaymentIntentID *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                    id,
		userID:                userID,
		dinnerID:              dinnerID,
		numberOfGuests:        numberOfGuests,
		quote:                 quote,
		selectedAddOns:        selections,
		referralCodeUsed:      referralCode,
		referralModeratorID:   referralModeratorID,
		status:                status,
		stripePaymentIntentID: stripePaymentIntentID,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                    { return b.id }
func (b *Booking) UserID() uuid.UUID                { return b.userID }
func (b *Booking) DinnerID() uuid.UUID              { return b.dinnerID }
func (b *Booking) NumberOfGuests() int              { return b.numberOfGuests }
func (b *Booking) Quote() Quote                     { return b.quote }
func (b *Booking) SelectedAddOns() []AddOnSelection { return b.selectedAddOns }
func (b *Booking) ReferralCodeUsed() *string        { return b.referralCodeUsed }
func (b *Booking) ReferralModeratorID() *uuid.UUID  { return b.referralModeratorID }
func (b *Booking) Status() Status                   { return b.status }
func (b *Booking) PaymentIntentID() *string         { return b.stripePaymentIntentID }
func (b *Booking) CreatedAt() time.Time             { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time             { return b.updatedAt }

func (b *Booking) AttachPaymentIntent(intentID string, now time.Time) {
	b.stripePaymentIntentID = &intentID
	b.updatedAt = now
}

// Confirm moves a PENDING booking to CONFIRMED. A second delivery of the same
// webhook finds the booking already CONFIRMED and is a no-op; the caller uses
// the return value to skip side effects on replay.
func (b *Booking) Confirm(now time.Time) (changed bool, err error) {
	switch b.status {
	case StatusConfirmed:
		return false, nil
	case StatusPending:
		b.status = StatusConfirmed
		b.updatedAt = now
		return true, nil
	default:
		return false, ErrAlreadyFinal
	}
}

// Cancel handles payment failure for PENDING bookings and the expiry sweep.
func (b *Booking) Cancel(now time.Time) (changed bool, err error) {
	switch b.status {
	case StatusCancelled:
		return false, nil
	case StatusPending:
		b.status = StatusCancelled
		b.updatedAt = now
		return true, nil
	default:
		return false, ErrAlreadyFinal
	}
}

// Complete is staff-driven; only CONFIRMED bookings complete.
func (b *Booking) Complete(now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	b.status = StatusCompleted
	b.updatedAt = now
	return nil
}

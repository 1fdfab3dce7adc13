package review

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxCommentLength = 1000

var (
	ErrTipIntentRequired = errors.New("tip payment intent required when tip stars are purchased")
	ErrCommentTooLong    = errors.New("comment exceeds maximum length")
)

// Review is the guest's one-shot rating of a completed booking's host.
// Immutable after creation.
type Review struct {
	id                 uuid.UUID
	bookingID          uuid.UUID
	userID             uuid.UUID
	hostID             uuid.UUID
	stars              StarAllocation
	tipAmountCents     int64
	tipPaymentIntentID *string
	comment            string
	createdAt          time.Time
}

func NewReview(
	bookingID, userID, hostID uuid.UUID,
	stars StarAllocation,
	bookingTotalCents int64,
	tipPaymentIntentID *string,
	comment string,
	now time.Time,
) (*Review, error) {
	if err := stars.Validate(); err != nil {
		return nil, err
	}
	if stars.Tip > 0 && (tipPaymentIntentID == nil || *tipPaymentIntentID == "") {
		return nil, ErrTipIntentRequired
	}

	comment = strings.TrimSpace(comment)
	if len(comment) > MaxCommentLength {
		return nil, ErrCommentTooLong
	}

	return &Review{
		id:                 uuid.New(),
		bookingID:          bookingID,
		userID:             userID,
		hostID:             hostID,
		stars:              stars,
		tipAmountCents:     TipAmountCents(bookingTotalCents, stars.Tip),
		tipPaymentIntentID: tipPaymentIntentID,
		comment:            comment,
		createdAt:          now,
	}, nil
}

func (r *Review) ID() uuid.UUID               { return r.id }
func (r *Review) BookingID() uuid.UUID        { return r.bookingID }
func (r *Review) UserID() uuid.UUID           { return r.userID }
func (r *Review) HostID() uuid.UUID           { return r.hostID }
func (r *Review) Stars() StarAllocation       { return r.stars }
func (r *Review) TipAmountCents() int64       { return r.tipAmountCents }
func (r *Review) TipPaymentIntentID() *string { return r.tipPaymentIntentID }
func (r *Review) Comment() string             { return r.comment }
func (r *Review) CreatedAt() time.Time        { return r.createdAt }

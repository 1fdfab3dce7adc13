package revenue

import (
	"time"

	"github.com/google/uuid"
)

type ShareType string

const (
	ShareOnboarding ShareType = "onboarding"
	ShareReferral   ShareType = "referral"
)

func (t ShareType) String() string {
	return string(t)
}

type ShareStatus string

const (
	SharePending   ShareStatus = "pending"
	SharePaid      ShareStatus = "paid"
	ShareCancelled ShareStatus = "cancelled"
)

func (s ShareStatus) String() string {
	return string(s)
}

// Share is a payout owed to a moderator for a confirmed booking.
// Status moves to paid/cancelled only through a staff update, out of scope
// for this service's write surface.
type Share struct {
	id          uuid.UUID
	moderatorID uuid.UUID
	bookingID   uuid.UUID
	amountCents int64
	shareType   ShareType
	status      ShareStatus
	createdAt   time.Time
}

func NewShare(moderatorID, bookingID uuid.UUID, amountCents int64, shareType ShareType, now time.Time) *Share {
	return &Share{
		id:          uuid.New(),
		moderatorID: moderatorID,
		bookingID:   bookingID,
		amountCents: amountCents,
		shareType:   shareType,
		status:      SharePending,
		createdAt:   now,
	}
}

func (s *Share) ID() uuid.UUID          { return s.id }
func (s *Share) ModeratorID() uuid.UUID { return s.moderatorID }
func (s *Share) BookingID() uuid.UUID   { return s.bookingID }
func (s *Share) AmountCents() int64     { return s.amountCents }
func (s *Share) ShareType() ShareType   { return s.shareType }
func (s *Share) Status() ShareStatus    { return s.status }
func (s *Share) CreatedAt() time.Time   { return s.createdAt }

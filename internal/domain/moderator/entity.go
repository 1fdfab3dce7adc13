package moderator

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInactive = errors.New("moderator is not active")

// Moderator owns a unique referral code guests attach to bookings for revenue
// attribution. Codes match case-sensitively and only while the moderator is
// active.
type Moderator struct {
	id           uuid.UUID
	userID       uuid.UUID
	referralCode string
	active       bool
}

func Reconstruct(id, userID uuid.UUID, referralCode string, active bool) *Moderator {
	return &Moderator{
		id:           id,
		userID:       userID,
		referralCode: referralCode,
		active:       active,
	}
}

func (m *Moderator) ID() uuid.UUID        { return m.id }
func (m *Moderator) UserID() uuid.UUID    { return m.userID }
func (m *Moderator) ReferralCode() string { return m.referralCode }
func (m *Moderator) IsActive() bool       { return m.active }

func (m *Moderator) ValidateActive() error {
	if !m.active {
		return ErrInactive
	}
	return nil
}

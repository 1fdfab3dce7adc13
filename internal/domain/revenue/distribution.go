package revenue

import "github.com/google/uuid"

// Moderator share rate in basis points of the booking total, per share type.
const shareRateBps = 1000

// Attribution carries the two independent payout triggers for a confirmed
// booking: the moderator who onboarded the dinner's host, and the moderator
// whose referral code the booking used. Both may be set for one booking.
type Attribution struct {
	OnboardedByID       *uuid.UUID
	ReferralModeratorID *uuid.UUID
}

// ShareSpec is a payout the distributor should persist.
type ShareSpec struct {
	ModeratorID uuid.UUID
	ShareType   ShareType
	AmountCents int64
}

// ComputeShares derives at most one ONBOARDING and one REFERRAL spec for a
// booking total. Pure; persistence and per-type idempotency live with the
// caller.
func ComputeShares(totalPriceCents int64, attr Attribution) []ShareSpec {
	amount := totalPriceCents * shareRateBps / 10000

	var specs []ShareSpec
	if attr.OnboardedByID != nil {
		specs = append(specs, ShareSpec{
			ModeratorID: *attr.OnboardedByID,
			ShareType:   ShareOnboarding,
			AmountCents: amount,
		})
	}
	if attr.ReferralModeratorID != nil {
		specs = append(specs, ShareSpec{
			ModeratorID: *attr.ReferralModeratorID,
			ShareType:   ShareReferral,
			AmountCents: amount,
		})
	}
	return specs
}

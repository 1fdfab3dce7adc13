package review

import "errors"

var (
	ErrInvalidStarDistribution = errors.New("invalid star distribution")
	ErrCategoryStarsOutOfRange = errors.New("category stars must be between 0 and 5")
	ErrTipStarsOutOfRange      = errors.New("tip stars must be between 0 and 10")
)

const (
	BaseStars   = 5
	MaxTipStars = 10
)

// StarAllocation is the guest's spend of their star budget: 5 base stars plus
// any purchased tip stars, split across the three rating categories.
type StarAllocation struct {
	Hospitality int
	Cleanliness int
	Taste       int
	Tip         int
}

// Validate enforces the star-budget invariant:
// hospitality + cleanliness + taste == 5 + tip, with each category in [0,5]
// and tip in [0,10]. Under- and over-allocation both fail.
func (a StarAllocation) Validate() error {
	for _, v := range []int{a.Hospitality, a.Cleanliness, a.Taste} {
		if v < 0 || v > BaseStars {
			return ErrCategoryStarsOutOfRange
		}
	}
	if a.Tip < 0 || a.Tip > MaxTipStars {
		return ErrTipStarsOutOfRange
	}
	if a.Hospitality+a.Cleanliness+a.Taste != BaseStars+a.Tip {
		return ErrInvalidStarDistribution
	}
	return nil
}

func (a StarAllocation) Total() int {
	return a.Hospitality + a.Cleanliness + a.Taste
}

// TipAmountCents prices tip stars at 1% of the booking total per star.
// Shared by the review-creation path and the tip-payment-intent path so both
// always agree on the amount.
func TipAmountCents(totalPriceCents int64, tipStars int) int64 {
	if tipStars <= 0 {
		return 0
	}
	return totalPriceCents * int64(tipStars) / 100
}

//go:build unit

package review_test

import (
	"testing"

	"mine-dine/internal/domain/review"

	"github.com/stretchr/testify/assert"
)

type allocationCase struct {
	name  string
	alloc review.StarAllocation
	errIs error
}

func TestStarAllocationValidate(t *testing.T) {
	runAllocationCases(t, []allocationCase{
		{
			name:  "base budget fully allocated",
			alloc: review.StarAllocation{Hospitality: 2, Cleanliness: 2, Taste: 1},
		},
		{
			name:  "tip stars extend the budget",
			alloc: review.StarAllocation{Hospitality: 5, Cleanliness: 4, Taste: 3, Tip: 7},
		},
		{
			name:  "maximum tip",
			alloc: review.StarAllocation{Hospitality: 5, Cleanliness: 5, Taste: 5, Tip: 10},
		},
		{
			name:  "zero in one category is allowed",
			alloc: review.StarAllocation{Hospitality: 0, Cleanliness: 5, Taste: 0},
		},
		{
			name:  "under-allocation",
			alloc: review.StarAllocation{Hospitality: 1, Cleanliness: 1, Taste: 1},
			errIs: review.ErrInvalidStarDistribution,
		},
		{
			name:  "over-allocation without tip",
			alloc: review.StarAllocation{Hospitality: 3, Cleanliness: 3, Taste: 3},
			errIs: review.ErrInvalidStarDistribution,
		},
		{
			name:  "tip purchased but not spent",
			alloc: review.StarAllocation{Hospitality: 2, Cleanliness: 2, Taste: 1, Tip: 3},
			errIs: review.ErrInvalidStarDistribution,
		},
		{
			name:  "category above five",
			alloc: review.StarAllocation{Hospitality: 6, Cleanliness: 0, Taste: 0, Tip: 1},
			errIs: review.ErrCategoryStarsOutOfRange,
		},
		{
			name:  "negative category",
			alloc: review.StarAllocation{Hospitality: -1, Cleanliness: 3, Taste: 3},
			errIs: review.ErrCategoryStarsOutOfRange,
		},
		{
			name:  "tip above ten",
			alloc: review.StarAllocation{Hospitality: 5, Cleanliness: 5, Taste: 5, Tip: 11},
			errIs: review.ErrTipStarsOutOfRange,
		},
		{
			name:  "negative tip",
			alloc: review.StarAllocation{Hospitality: 2, Cleanliness: 2, Taste: 1, Tip: -1},
			errIs: review.ErrTipStarsOutOfRange,
		},
	})
}

func runAllocationCases(t *testing.T, cases []allocationCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.alloc.Validate()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTipAmountCents(t *testing.T) {
	t.Run("one percent of total per star", func(t *testing.T) {
		assert.Equal(t, int64(300), review.TipAmountCents(10000, 3))
		assert.Equal(t, int64(1000), review.TipAmountCents(10000, 10))
	})

	t.Run("zero stars means no tip", func(t *testing.T) {
		assert.Equal(t, int64(0), review.TipAmountCents(10000, 0))
	})

	t.Run("truncates fractional cents", func(t *testing.T) {
		assert.Equal(t, int64(1), review.TipAmountCents(99, 2))
	})
}
